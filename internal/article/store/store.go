package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrJamesThe3rd/wikiguessr/internal/article"
)

const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, title, summary, image_url, links, infobox, created_at, updated_at, deleted_at
const selectArticleColumns = `id, title, summary, image_url, links, infobox, created_at, updated_at, deleted_at`

func scanArticle(s scanner) (*article.Article, error) {
	var a article.Article

	var links, infobox []byte

	if err := s.Scan(
		&a.ID, &a.Title, &a.Summary, &a.ImageURL, &links, &infobox,
		&a.CreatedAt, &a.UpdatedAt, &a.DeletedAt,
	); err != nil {
		return nil, err
	}

	if len(links) > 0 {
		if err := json.Unmarshal(links, &a.Links); err != nil {
			return nil, fmt.Errorf("decoding links: %w", err)
		}
	}

	if len(infobox) > 0 {
		if err := json.Unmarshal(infobox, &a.Infobox); err != nil {
			return nil, fmt.Errorf("decoding infobox: %w", err)
		}
	}

	return &a, nil
}

func encodeHints(a *article.Article) ([]byte, []byte, error) {
	links := a.Links
	if links == nil {
		links = []string{}
	}

	infobox := a.Infobox
	if infobox == nil {
		infobox = []article.InfoboxField{}
	}

	l, err := json.Marshal(links)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding links: %w", err)
	}

	i, err := json.Marshal(infobox)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding infobox: %w", err)
	}

	return l, i, nil
}

func (s *Store) CreateArticle(ctx context.Context, a *article.Article) error {
	links, infobox, err := encodeHints(a)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO articles (title, summary, image_url, links, infobox, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err = s.db.QueryRowContext(ctx, query,
		a.Title, a.Summary, a.ImageURL, links, infobox,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return article.ErrDuplicateTitle
		}

		return fmt.Errorf("creating article: %w", err)
	}

	return nil
}

// CreateArticles inserts all articles in one transaction. Titles that already
// exist are skipped; their ID stays uuid.Nil.
func (s *Store) CreateArticles(ctx context.Context, as []*article.Article) (int, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO articles (title, summary, image_url, links, infobox, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (title) WHERE deleted_at IS NULL DO NOTHING
		RETURNING id, created_at
	`

	created := 0

	for _, a := range as {
		links, infobox, err := encodeHints(a)
		if err != nil {
			return 0, err
		}

		err = dbTx.QueryRowContext(ctx, query,
			a.Title, a.Summary, a.ImageURL, links, infobox,
		).Scan(&a.ID, &a.CreatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}

		if err != nil {
			return 0, fmt.Errorf("creating article %q: %w", a.Title, err)
		}

		created++
	}

	if err := dbTx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}

	return created, nil
}

func (s *Store) GetArticle(ctx context.Context, id uuid.UUID) (*article.Article, error) {
	query := `SELECT ` + selectArticleColumns + `
		FROM articles
		WHERE id = $1 AND deleted_at IS NULL`

	a, err := scanArticle(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, article.ErrNotFound
		}

		return nil, fmt.Errorf("getting article: %w", err)
	}

	return a, nil
}

func (s *Store) GetArticleIncludingDeleted(ctx context.Context, id uuid.UUID) (*article.Article, error) {
	query := `SELECT ` + selectArticleColumns + `
		FROM articles
		WHERE id = $1`

	a, err := scanArticle(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, article.ErrNotFound
		}

		return nil, fmt.Errorf("getting article: %w", err)
	}

	return a, nil
}

func (s *Store) ListArticles(ctx context.Context) ([]*article.Article, error) {
	query := `SELECT ` + selectArticleColumns + `
		FROM articles
		WHERE deleted_at IS NULL
		ORDER BY title ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing articles: %w", err)
	}
	defer rows.Close()

	var articles []*article.Article

	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning article: %w", err)
		}

		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating article rows: %w", err)
	}

	return articles, nil
}

func (s *Store) RandomArticle(ctx context.Context, exclude []uuid.UUID) (*article.Article, error) {
	query := `SELECT ` + selectArticleColumns + `
		FROM articles
		WHERE deleted_at IS NULL`

	var args []any

	for i, id := range exclude {
		if i == 0 {
			query += " AND id NOT IN ("
		} else {
			query += ", "
		}

		query += fmt.Sprintf("$%d", i+1)

		args = append(args, id)
	}

	if len(exclude) > 0 {
		query += ")"
	}

	query += " ORDER BY RANDOM() LIMIT 1"

	a, err := scanArticle(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, article.ErrNotFound
		}

		return nil, fmt.Errorf("picking random article: %w", err)
	}

	return a, nil
}

func (s *Store) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE articles
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting article: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting article: %w", err)
	}

	if n == 0 {
		return article.ErrNotFound
	}

	return nil
}
