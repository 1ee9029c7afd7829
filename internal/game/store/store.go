package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/wikiguessr/internal/game"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, article_id, player_id, status, hints_revealed, guesses, score, started_at, finished_at, version
const selectRoundColumns = `id, article_id, player_id, status, hints_revealed, guesses, score, started_at, finished_at, version`

func scanRound(s scanner) (*game.Round, error) {
	var (
		r        game.Round
		playerID sql.NullString
		guesses  []byte
	)

	if err := s.Scan(
		&r.ID, &r.ArticleID, &playerID, &r.Status, &r.HintsRevealed,
		&guesses, &r.Score, &r.StartedAt, &r.FinishedAt, &r.Version,
	); err != nil {
		return nil, err
	}

	r.PlayerID = playerID.String

	if len(guesses) > 0 {
		if err := json.Unmarshal(guesses, &r.Guesses); err != nil {
			return nil, fmt.Errorf("decoding guesses: %w", err)
		}
	}

	return &r, nil
}

func encodeGuesses(gs []game.Guess) ([]byte, error) {
	if gs == nil {
		gs = []game.Guess{}
	}

	b, err := json.Marshal(gs)
	if err != nil {
		return nil, fmt.Errorf("encoding guesses: %w", err)
	}

	return b, nil
}

func nullablePlayer(id string) sql.NullString {
	return sql.NullString{String: id, Valid: id != ""}
}

func (s *Store) CreateRound(ctx context.Context, r *game.Round) error {
	guesses, err := encodeGuesses(r.Guesses)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO rounds (article_id, player_id, status, hints_revealed, guesses, score, started_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err = s.db.QueryRowContext(ctx, query,
		r.ArticleID, nullablePlayer(r.PlayerID), r.Status, r.HintsRevealed, guesses, r.Score, r.StartedAt,
	).Scan(&r.ID)
	if err != nil {
		return fmt.Errorf("creating round: %w", err)
	}

	return nil
}

func (s *Store) GetRound(ctx context.Context, id uuid.UUID) (*game.Round, error) {
	query := `SELECT ` + selectRoundColumns + `
		FROM rounds
		WHERE id = $1`

	r, err := scanRound(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, game.ErrNotFound
		}

		return nil, fmt.Errorf("getting round: %w", err)
	}

	return r, nil
}

// UpdateRound writes r over the stored round only while that round is still in
// progress at the version r was read with. A lost race is reported as
// game.ErrRoundFinished or game.ErrConflict.
func (s *Store) UpdateRound(ctx context.Context, r *game.Round) error {
	guesses, err := encodeGuesses(r.Guesses)
	if err != nil {
		return err
	}

	query := `
		UPDATE rounds
		SET status = $1, hints_revealed = $2, guesses = $3, score = $4, finished_at = $5, version = version + 1
		WHERE id = $6 AND status = 'in_progress' AND version = $7
	`

	res, err := s.db.ExecContext(ctx, query,
		r.Status, r.HintsRevealed, guesses, r.Score, r.FinishedAt, r.ID, r.Version,
	)
	if err != nil {
		return fmt.Errorf("updating round: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating round: %w", err)
	}

	if n == 0 {
		return s.staleUpdateError(ctx, r.ID)
	}

	r.Version++

	return nil
}

// staleUpdateError explains why a guarded update touched no row.
func (s *Store) staleUpdateError(ctx context.Context, id uuid.UUID) error {
	var status game.Status

	err := s.db.QueryRowContext(ctx, `SELECT status FROM rounds WHERE id = $1`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return game.ErrNotFound
	}

	if err != nil {
		return fmt.Errorf("checking round status: %w", err)
	}

	if status != game.StatusInProgress {
		return game.ErrRoundFinished
	}

	return game.ErrConflict
}

// ListRounds returns the newest rounds of a player first. limit <= 0 means no limit.
func (s *Store) ListRounds(ctx context.Context, playerID string, limit int) ([]*game.Round, error) {
	query := `SELECT ` + selectRoundColumns + `
		FROM rounds
		WHERE player_id = $1
		ORDER BY started_at DESC`

	args := []any{playerID}

	if limit > 0 {
		query += " LIMIT $2"

		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing rounds: %w", err)
	}
	defer rows.Close()

	var rounds []*game.Round

	for rows.Next() {
		r, err := scanRound(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning round: %w", err)
		}

		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating round rows: %w", err)
	}

	return rounds, nil
}

func (s *Store) FinishedArticleIDs(ctx context.Context, playerID string) ([]uuid.UUID, error) {
	query := `
		SELECT DISTINCT article_id
		FROM rounds
		WHERE player_id = $1 AND status <> $2
	`

	rows, err := s.db.QueryContext(ctx, query, playerID, game.StatusInProgress)
	if err != nil {
		return nil, fmt.Errorf("listing finished articles: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning article id: %w", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating article ids: %w", err)
	}

	return ids, nil
}

// AwardBadges inserts the badges in one transaction. Badges the player already
// holds are left alone and not returned.
func (s *Store) AwardBadges(ctx context.Context, playerID string, roundID uuid.UUID, badges []game.Badge) ([]game.Badge, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO player_badges (player_id, badge, round_id, awarded_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (player_id, badge) DO NOTHING
		RETURNING badge
	`

	var awarded []game.Badge

	for _, b := range badges {
		var got game.Badge

		err := dbTx.QueryRowContext(ctx, query, playerID, b, roundID).Scan(&got)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("awarding badge %s: %w", b, err)
		}

		awarded = append(awarded, got)
	}

	if err := dbTx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return awarded, nil
}
