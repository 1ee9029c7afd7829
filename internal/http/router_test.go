package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/wikiguessr/internal/article"
	"github.com/MrJamesThe3rd/wikiguessr/internal/game"
	apihttp "github.com/MrJamesThe3rd/wikiguessr/internal/http"
	httparticle "github.com/MrJamesThe3rd/wikiguessr/internal/http/article"
	"github.com/MrJamesThe3rd/wikiguessr/internal/http/auth"
	httpgame "github.com/MrJamesThe3rd/wikiguessr/internal/http/game"
	"github.com/MrJamesThe3rd/wikiguessr/internal/http/match"
	"github.com/MrJamesThe3rd/wikiguessr/internal/importer"
	"github.com/MrJamesThe3rd/wikiguessr/internal/wikipedia"
)

const secret = "router-secret"

func newRouter(t *testing.T) (http.Handler, *game.MockRoundRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	rounds := game.NewMockRoundRepository(ctrl)
	articleSvc := article.NewService(article.NewMockRepository(ctrl))

	return apihttp.New(
		apihttp.Options{AllowedOrigins: []string{"https://play.example"}},
		auth.NewVerifier(secret, ""),
		match.NewHandler(0.85),
		httparticle.NewHandler(articleSvc, importer.NewService(), wikipedia.NewClient("http://127.0.0.1:0", "test", 0)),
		httpgame.NewHandler(game.NewService(rounds, game.NewMockArticleSource(ctrl), nil, game.Config{MaxGuesses: 6}), nil),
	), rounds
}

func TestRouter_Match(t *testing.T) {
	router, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", strings.NewReader(`{"guess":"paris","title":"Paris"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("Content-Type"))
}

func TestRouter_RejectsNonJSON(t *testing.T) {
	router, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/match", strings.NewReader(`guess=paris`))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestRouter_Auth(t *testing.T) {
	router, rounds := newRouter(t)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "alice"}).SignedString([]byte(secret))
	require.NoError(t, err)

	rounds.EXPECT().ListRounds(gomock.Any(), "alice", 20).Return(nil, nil)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "Anonymous", wantStatus: http.StatusUnauthorized},
		{name: "BadToken", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "Player", header: "Bearer " + token, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/players/me/rounds", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRouter_CORS(t *testing.T) {
	router, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/match", nil)
	req.Header.Set("Origin", "https://play.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "https://play.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_Health(t *testing.T) {
	router, _ := newRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
