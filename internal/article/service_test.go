package article_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/wikiguessr/internal/article"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    article.CreateParams
		setupMock func(m *article.MockRepository)
		wantErr   error
		wantTitle string
	}

	tests := []testCase{
		{
			name:   "Success",
			params: article.CreateParams{Title: "  Mercury (planet) ", Summary: "Smallest planet."},
			setupMock: func(m *article.MockRepository) {
				m.EXPECT().
					CreateArticle(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *article.Article) error {
						a.ID = uuid.New()
						return nil
					})
			},
			wantTitle: "Mercury (planet)",
		},
		{
			name:    "EmptyTitle",
			params:  article.CreateParams{Title: "   "},
			wantErr: article.ErrEmptyTitle,
		},
		{
			name:   "Duplicate",
			params: article.CreateParams{Title: "Paris"},
			setupMock: func(m *article.MockRepository) {
				m.EXPECT().
					CreateArticle(gomock.Any(), gomock.Any()).
					Return(article.ErrDuplicateTitle)
			},
			wantErr: article.ErrDuplicateTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := article.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := article.NewService(repo).Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.NotEqual(t, uuid.Nil, got.ID)
		})
	}
}

func TestService_ImportBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := article.NewMockRepository(ctrl)

	repo.EXPECT().
		CreateArticles(gomock.Any(), gomock.Len(2)).
		Return(1, nil)

	n, err := article.NewService(repo).ImportBatch(context.Background(), []article.CreateParams{
		{Title: "Paris"},
		{Title: ""},
		{Title: "London"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestService_ImportBatch_NothingValid(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := article.NewMockRepository(ctrl)

	n, err := article.NewService(repo).ImportBatch(context.Background(), []article.CreateParams{{Title: " "}})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestService_LookupReturnsDeleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := article.NewMockRepository(ctrl)
	id := uuid.New()
	deleted := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().GetArticleIncludingDeleted(gomock.Any(), id).
		Return(&article.Article{ID: id, Title: "Paris", DeletedAt: &deleted}, nil)

	got, err := article.NewService(repo).Lookup(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Paris", got.Title)
	assert.Equal(t, &deleted, got.DeletedAt)
}

func TestService_ImportBatch_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := article.NewMockRepository(ctrl)

	repo.EXPECT().CreateArticles(gomock.Any(), gomock.Any()).Return(0, errors.New("db error"))

	_, err := article.NewService(repo).ImportBatch(context.Background(), []article.CreateParams{{Title: "Paris"}})
	assert.Error(t, err)
}

func TestService_Search(t *testing.T) {
	stored := []*article.Article{
		{ID: uuid.New(), Title: "Albert Einstein"},
		{ID: uuid.New(), Title: "Mercury (planet)"},
		{ID: uuid.New(), Title: "Freddie Mercury"},
		{ID: uuid.New(), Title: "Paris"},
	}

	tests := []struct {
		name       string
		query      string
		limit      int
		wantTitles []string
	}{
		{name: "EmptyQueryReturnsAll", query: "", wantTitles: []string{"Albert Einstein", "Mercury (planet)", "Freddie Mercury", "Paris"}},
		{name: "EmptyQueryLimited", query: " ", limit: 2, wantTitles: []string{"Albert Einstein", "Mercury (planet)"}},
		{name: "Subsequence", query: "einst", wantTitles: []string{"Albert Einstein"}},
		{name: "NoMatch", query: "zzz", wantTitles: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := article.NewMockRepository(ctrl)
			repo.EXPECT().ListArticles(gomock.Any()).Return(stored, nil)

			got, err := article.NewService(repo).Search(context.Background(), tt.query, tt.limit)
			require.NoError(t, err)

			titles := make([]string, len(got))
			for i, a := range got {
				titles[i] = a.Title
			}

			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestService_Search_RanksBothMercuries(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := article.NewMockRepository(ctrl)
	repo.EXPECT().ListArticles(gomock.Any()).Return([]*article.Article{
		{Title: "Paris"},
		{Title: "Mercury (planet)"},
		{Title: "Freddie Mercury"},
	}, nil)

	got, err := article.NewService(repo).Search(context.Background(), "mercury", 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.ElementsMatch(t, []string{"Mercury (planet)", "Freddie Mercury"}, []string{got[0].Title, got[1].Title})
}
