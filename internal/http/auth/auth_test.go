package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/wikiguessr/internal/http/auth"
)

const secret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestVerifier_Middleware(t *testing.T) {
	valid := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.RegisteredClaims{Subject: "alice", Issuer: "idp"})
	expired := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.RegisteredClaims{
		Subject:   "alice",
		Issuer:    "idp",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	wrongKey := sign(t, jwt.SigningMethodHS256, []byte("other"), jwt.RegisteredClaims{Subject: "alice", Issuer: "idp"})
	wrongIssuer := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.RegisteredClaims{Subject: "alice", Issuer: "evil"})
	noSubject := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.RegisteredClaims{Issuer: "idp"})

	tests := []struct {
		name       string
		secret     string
		header     string
		wantStatus int
		wantPlayer string
	}{
		{name: "Anonymous", secret: secret, wantStatus: http.StatusOK},
		{name: "Valid", secret: secret, header: "Bearer " + valid, wantStatus: http.StatusOK, wantPlayer: "alice"},
		{name: "Expired", secret: secret, header: "Bearer " + expired, wantStatus: http.StatusUnauthorized},
		{name: "WrongKey", secret: secret, header: "Bearer " + wrongKey, wantStatus: http.StatusUnauthorized},
		{name: "WrongIssuer", secret: secret, header: "Bearer " + wrongIssuer, wantStatus: http.StatusUnauthorized},
		{name: "NoSubject", secret: secret, header: "Bearer " + noSubject, wantStatus: http.StatusUnauthorized},
		{name: "NotBearer", secret: secret, header: "Basic YWxpY2U6cHc=", wantStatus: http.StatusUnauthorized},
		{name: "Disabled", secret: "", header: "Bearer garbage", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPlayer string

			h := auth.NewVerifier(tt.secret, "idp").Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPlayer = auth.Player(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantPlayer, gotPlayer)
		})
	}
}

func TestVerifier_RejectsOtherAlgorithms(t *testing.T) {
	token := sign(t, jwt.SigningMethodHS512, []byte(secret), jwt.RegisteredClaims{Subject: "alice"})

	_, err := auth.NewVerifier(secret, "").PlayerID(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRequirePlayer(t *testing.T) {
	h := auth.RequirePlayer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(w, req.WithContext(auth.WithPlayer(req.Context(), "alice")))
	assert.Equal(t, http.StatusOK, w.Code)
}
