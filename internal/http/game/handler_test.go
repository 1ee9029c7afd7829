package game_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/wikiguessr/internal/article"
	"github.com/MrJamesThe3rd/wikiguessr/internal/game"
	"github.com/MrJamesThe3rd/wikiguessr/internal/http/auth"
	httpgame "github.com/MrJamesThe3rd/wikiguessr/internal/http/game"
)

var now = time.Date(2026, 6, 1, 9, 30, 0, 0, time.UTC)

type env struct {
	rounds   *game.MockRoundRepository
	articles *game.MockArticleSource
	router   http.Handler
}

// newEnv mounts the handler the way the API router does, with player as the
// authenticated caller ("" for anonymous).
func newEnv(t *testing.T, player string) *env {
	t.Helper()

	ctrl := gomock.NewController(t)
	e := &env{
		rounds:   game.NewMockRoundRepository(ctrl),
		articles: game.NewMockArticleSource(ctrl),
	}

	svc := game.NewService(e.rounds, e.articles, clockwork.NewFakeClockAt(now), game.Config{Threshold: 0.85, MaxGuesses: 6})
	h := httpgame.NewHandler(svc, nil)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if player != "" {
				req = req.WithContext(auth.WithPlayer(req.Context(), player))
			}

			next.ServeHTTP(w, req)
		})
	})
	r.Route("/rounds", h.Routes)
	r.Route("/players", h.PlayerRoutes)

	e.router = r

	return e
}

func (e *env) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	return w
}

func paris() *article.Article {
	return &article.Article{
		ID:      uuid.New(),
		Title:   "Paris",
		Summary: "Paris is the capital of France.",
		Links:   []string{"France", "Seine"},
	}
}

type roundBody struct {
	ID          uuid.UUID `json:"id"`
	Status      string    `json:"status"`
	GuessesLeft int       `json:"guesses_left"`
	Score       int       `json:"score"`
	Answer      string    `json:"answer"`
	Hints       []struct {
		Kind  string   `json:"kind"`
		Links []string `json:"links"`
		Text  string   `json:"text"`
	} `json:"hints"`
}

func TestHandler_Start(t *testing.T) {
	e := newEnv(t, "alice")
	a := paris()

	e.rounds.EXPECT().FinishedArticleIDs(gomock.Any(), "alice").Return(nil, nil)
	e.articles.EXPECT().Random(gomock.Any(), gomock.Nil()).Return(a, nil)
	e.rounds.EXPECT().CreateRound(gomock.Any(), gomock.Any()).
		Do(func(_ any, r *game.Round) { r.ID = uuid.New() }).
		Return(nil)

	w := e.do(http.MethodPost, "/rounds", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var got roundBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "in_progress", got.Status)
	assert.Equal(t, 6, got.GuessesLeft)
	assert.Empty(t, got.Answer)
	require.Len(t, got.Hints, 1)
	assert.Equal(t, "links", got.Hints[0].Kind)
	assert.Equal(t, []string{"France", "Seine"}, got.Hints[0].Links)
}

func TestHandler_Start_ExplicitArticle(t *testing.T) {
	e := newEnv(t, "")
	a := paris()

	e.articles.EXPECT().Get(gomock.Any(), a.ID).Return(a, nil)
	e.rounds.EXPECT().CreateRound(gomock.Any(), gomock.Any()).Return(nil)

	w := e.do(http.MethodPost, "/rounds", `{"article_id":"`+a.ID.String()+`"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_Start_NoArticles(t *testing.T) {
	e := newEnv(t, "")

	e.articles.EXPECT().Random(gomock.Any(), gomock.Nil()).Return(nil, article.ErrNotFound)

	w := e.do(http.MethodPost, "/rounds", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Guess(t *testing.T) {
	a := paris()
	roundID := uuid.New()

	tests := []struct {
		name       string
		player     string
		round      *game.Round
		body       string
		wantStatus int
		wantTier   string
		wantRound  string
	}{
		{
			name:       "Win",
			round:      &game.Round{ID: roundID, ArticleID: a.ID, Status: game.StatusInProgress, HintsRevealed: 1},
			body:       `{"guess":"paris"}`,
			wantStatus: http.StatusOK,
			wantTier:   "perfect",
			wantRound:  "won",
		},
		{
			name:       "Miss",
			round:      &game.Round{ID: roundID, ArticleID: a.ID, Status: game.StatusInProgress, HintsRevealed: 1},
			body:       `{"guess":"tokyo"}`,
			wantStatus: http.StatusOK,
			wantTier:   "try_again",
			wantRound:  "in_progress",
		},
		{
			name:       "OtherPlayer",
			player:     "bob",
			round:      &game.Round{ID: roundID, ArticleID: a.ID, PlayerID: "alice", Status: game.StatusInProgress},
			body:       `{"guess":"paris"}`,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "Finished",
			round:      &game.Round{ID: roundID, ArticleID: a.ID, Status: game.StatusWon},
			body:       `{"guess":"paris"}`,
			wantStatus: http.StatusConflict,
		},
		{name: "MissingGuess", body: `{}`, wantStatus: http.StatusBadRequest},
		{
			name:       "BlankGuess",
			body:       `{"guess":"   "}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t, tt.player)

			if tt.round != nil {
				e.rounds.EXPECT().GetRound(gomock.Any(), roundID).Return(tt.round, nil)
			}

			if tt.wantStatus == http.StatusOK {
				e.articles.EXPECT().Lookup(gomock.Any(), a.ID).Return(a, nil)
				e.rounds.EXPECT().UpdateRound(gomock.Any(), tt.round).Return(nil)
			}

			w := e.do(http.MethodPost, "/rounds/"+roundID.String()+"/guesses", tt.body)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus != http.StatusOK {
				return
			}

			var got struct {
				Tier   string    `json:"tier"`
				Badges []string  `json:"badges"`
				Round  roundBody `json:"round"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.wantTier, got.Tier)
			assert.Equal(t, tt.wantRound, got.Round.Status)
			assert.NotNil(t, got.Badges)
		})
	}
}

func TestHandler_Guess_LostRace(t *testing.T) {
	for _, storeErr := range []error{game.ErrRoundFinished, game.ErrConflict} {
		t.Run(storeErr.Error(), func(t *testing.T) {
			e := newEnv(t, "")
			a := paris()
			r := &game.Round{ID: uuid.New(), ArticleID: a.ID, Status: game.StatusInProgress, HintsRevealed: 1}

			e.rounds.EXPECT().GetRound(gomock.Any(), r.ID).Return(r, nil)
			e.articles.EXPECT().Lookup(gomock.Any(), a.ID).Return(a, nil)
			e.rounds.EXPECT().UpdateRound(gomock.Any(), r).Return(storeErr)

			w := e.do(http.MethodPost, "/rounds/"+r.ID.String()+"/guesses", `{"guess":"Paris"}`)
			assert.Equal(t, http.StatusConflict, w.Code)
		})
	}
}

func TestHandler_Guess_RevealsAnswerWhenFinished(t *testing.T) {
	e := newEnv(t, "")
	a := paris()
	r := &game.Round{ID: uuid.New(), ArticleID: a.ID, Status: game.StatusInProgress, HintsRevealed: 1}

	e.rounds.EXPECT().GetRound(gomock.Any(), r.ID).Return(r, nil)
	e.articles.EXPECT().Lookup(gomock.Any(), a.ID).Return(a, nil)
	e.rounds.EXPECT().UpdateRound(gomock.Any(), r).Return(nil)

	w := e.do(http.MethodPost, "/rounds/"+r.ID.String()+"/guesses", `{"guess":"Paris"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Round roundBody `json:"round"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Paris", got.Round.Answer)
	assert.Equal(t, 110, got.Round.Score)
	require.Len(t, got.Round.Hints, len(game.HintOrder))
	assert.Equal(t, "P____", got.Round.Hints[3].Text)
	assert.Equal(t, "_____ is the capital of France.", got.Round.Hints[4].Text)
}

func TestHandler_GiveUp(t *testing.T) {
	e := newEnv(t, "alice")
	a := paris()
	r := &game.Round{ID: uuid.New(), ArticleID: a.ID, PlayerID: "alice", Status: game.StatusInProgress, HintsRevealed: 2}

	e.rounds.EXPECT().GetRound(gomock.Any(), r.ID).Return(r, nil)
	e.rounds.EXPECT().UpdateRound(gomock.Any(), r).Return(nil)
	e.articles.EXPECT().Lookup(gomock.Any(), a.ID).Return(a, nil)

	w := e.do(http.MethodPost, "/rounds/"+r.ID.String()+"/give-up", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got roundBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "abandoned", got.Status)
	assert.Equal(t, "Paris", got.Answer)
}

func TestHandler_Get(t *testing.T) {
	e := newEnv(t, "")
	id := uuid.New()

	e.rounds.EXPECT().GetRound(gomock.Any(), id).Return(nil, game.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, e.do(http.MethodGet, "/rounds/"+id.String(), "").Code)
	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodGet, "/rounds/nope", "").Code)
}

func TestHandler_History(t *testing.T) {
	t.Run("Anonymous", func(t *testing.T) {
		e := newEnv(t, "")
		assert.Equal(t, http.StatusUnauthorized, e.do(http.MethodGet, "/players/me/rounds", "").Code)
	})

	t.Run("Player", func(t *testing.T) {
		e := newEnv(t, "alice")
		finished := now.Add(time.Minute)

		e.rounds.EXPECT().ListRounds(gomock.Any(), "alice", 5).Return([]*game.Round{{
			ID:         uuid.New(),
			ArticleID:  uuid.New(),
			PlayerID:   "alice",
			Status:     game.StatusWon,
			Score:      95,
			Guesses:    []game.Guess{{Text: "paris"}},
			StartedAt:  now,
			FinishedAt: &finished,
		}}, nil)

		w := e.do(http.MethodGet, "/players/me/rounds?limit=5", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got []struct {
			Status  string `json:"status"`
			Score   int    `json:"score"`
			Guesses int    `json:"guesses"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "won", got[0].Status)
		assert.Equal(t, 95, got[0].Score)
		assert.Equal(t, 1, got[0].Guesses)
	})

	t.Run("BadLimit", func(t *testing.T) {
		e := newEnv(t, "alice")
		assert.Equal(t, http.StatusBadRequest, e.do(http.MethodGet, "/players/me/rounds?limit=0", "").Code)
	})
}
