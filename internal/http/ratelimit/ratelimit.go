// Package ratelimit throttles requests per player, falling back to the client IP
// for anonymous callers.
package ratelimit

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"

	"github.com/MrJamesThe3rd/wikiguessr/internal/http/auth"
)

// staleAfter is how long an idle client keeps its limiter.
const staleAfter = 10 * time.Minute

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type Limiter struct {
	perSecond rate.Limit
	burst     int
	clock     clockwork.Clock

	mu      sync.Mutex
	clients map[string]*entry
}

func New(perSecond float64, burst int, clock clockwork.Clock) *Limiter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Limiter{
		perSecond: rate.Limit(perSecond),
		burst:     burst,
		clock:     clock,
		clients:   make(map[string]*entry),
	}
}

// Allow reports whether key may make another request now.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()

	e, ok := l.clients[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(l.perSecond, l.burst)}
		l.clients[key] = e
	}

	e.lastSeen = now

	return e.limiter.AllowN(now, 1)
}

// Cleanup forgets clients that have been idle for longer than staleAfter.
func (l *Limiter) Cleanup() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	removed := 0

	for key, e := range l.clients {
		if now.Sub(e.lastSeen) > staleAfter {
			delete(l.clients, key)
			removed++
		}
	}

	return removed
}

// Run calls Cleanup every interval until ctx is done.
func (l *Limiter) Run(ctx context.Context, interval time.Duration) {
	ticker := l.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Chan():
			if n := l.Cleanup(); n > 0 {
				slog.Debug("removed idle rate limiters", "count", n)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)

		if !l.Allow(key) {
			slog.Warn("rate limit exceeded", "client", key, "path", r.URL.Path)
			http.Error(w, "too many requests", http.StatusTooManyRequests)

			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	if player := auth.Player(r.Context()); player != "" {
		return "player:" + player
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	return "ip:" + host
}
