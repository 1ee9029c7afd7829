package article

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=article
type Repository interface {
	CreateArticle(ctx context.Context, a *Article) error
	CreateArticles(ctx context.Context, as []*Article) (int, error)
	GetArticle(ctx context.Context, id uuid.UUID) (*Article, error)
	GetArticleIncludingDeleted(ctx context.Context, id uuid.UUID) (*Article, error)
	ListArticles(ctx context.Context) ([]*Article, error)
	RandomArticle(ctx context.Context, exclude []uuid.UUID) (*Article, error)
	DeleteArticle(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Title    string
	Summary  string
	ImageURL string
	Links    []string
	Infobox  []InfoboxField
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Article, error) {
	a, err := paramsToArticle(params)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateArticle(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

// ImportBatch stores every valid article in params and returns how many were new.
// Params without a title are skipped, titles that already exist are left untouched.
func (s *Service) ImportBatch(ctx context.Context, params []CreateParams) (int, error) {
	articles := make([]*Article, 0, len(params))

	for _, p := range params {
		a, err := paramsToArticle(p)
		if err != nil {
			continue
		}

		articles = append(articles, a)
	}

	if len(articles) == 0 {
		return 0, nil
	}

	n, err := s.repo.CreateArticles(ctx, articles)
	if err != nil {
		return 0, fmt.Errorf("import articles: %w", err)
	}

	return n, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Article, error) {
	return s.repo.GetArticle(ctx, id)
}

// Lookup is Get for records that outlive the article, such as played rounds:
// soft-deleted articles are still returned, with DeletedAt set.
func (s *Service) Lookup(ctx context.Context, id uuid.UUID) (*Article, error) {
	return s.repo.GetArticleIncludingDeleted(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Article, error) {
	return s.repo.ListArticles(ctx)
}

// Random picks an article that is not in exclude. Returns ErrNotFound when none is left.
func (s *Service) Random(ctx context.Context, exclude []uuid.UUID) (*Article, error) {
	return s.repo.RandomArticle(ctx, exclude)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteArticle(ctx, id)
}

// Search ranks articles by how well their title fuzzy-matches query, best first.
// An empty query returns the full list. limit <= 0 means no limit.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]*Article, error) {
	articles, err := s.repo.ListArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return truncate(articles, limit), nil
	}

	matches := fuzzy.FindFrom(query, titles(articles))

	found := make([]*Article, len(matches))
	for i, m := range matches {
		found[i] = articles[m.Index]
	}

	return truncate(found, limit), nil
}

// titles adapts a slice of articles to fuzzy.Source.
type titles []*Article

func (t titles) String(i int) string { return t[i].Title }
func (t titles) Len() int            { return len(t) }

func truncate(articles []*Article, limit int) []*Article {
	if limit > 0 && len(articles) > limit {
		return articles[:limit]
	}

	return articles
}

func paramsToArticle(p CreateParams) (*Article, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	return &Article{
		Title:    title,
		Summary:  strings.TrimSpace(p.Summary),
		ImageURL: strings.TrimSpace(p.ImageURL),
		Links:    p.Links,
		Infobox:  p.Infobox,
	}, nil
}
