// Package auth verifies bearer tokens issued by an external identity provider
// and exposes the player they identify.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type contextKey struct{}

// Verifier checks HS256 tokens signed with a shared secret.
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier returns a Verifier. An empty secret disables verification and
// every request is treated as anonymous.
func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{secret: []byte(secret), issuer: issuer}
}

func (v *Verifier) Enabled() bool {
	return len(v.secret) > 0
}

// PlayerID returns the subject of a valid token.
func (v *Verifier) PlayerID(token string) (string, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return "", errors.Join(ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

// Middleware attaches the player of a valid bearer token to the request
// context. Requests without a token pass through anonymously; a token that
// does not verify is rejected with 401.
func (v *Verifier) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !v.Enabled() || header == "" {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			http.Error(w, "authorization header must be a bearer token", http.StatusUnauthorized)
			return
		}

		player, err := v.PlayerID(strings.TrimSpace(token))
		if err != nil {
			slog.Debug("rejected token", "path", r.URL.Path, "error", err)
			http.Error(w, "invalid token", http.StatusUnauthorized)

			return
		}

		next.ServeHTTP(w, r.WithContext(WithPlayer(r.Context(), player)))
	})
}

// RequirePlayer rejects anonymous requests with 401.
func RequirePlayer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Player(r.Context()) == "" {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func WithPlayer(ctx context.Context, playerID string) context.Context {
	return context.WithValue(ctx, contextKey{}, playerID)
}

// Player returns the authenticated player, or "" for anonymous requests.
func Player(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
