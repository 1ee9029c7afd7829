package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/wikiguessr/internal/http/article"
	"github.com/MrJamesThe3rd/wikiguessr/internal/http/auth"
	"github.com/MrJamesThe3rd/wikiguessr/internal/http/game"
	"github.com/MrJamesThe3rd/wikiguessr/internal/http/match"
)

type Options struct {
	AllowedOrigins []string
	Timeout        time.Duration
}

func New(
	opts Options,
	verifier *auth.Verifier,
	matchV1 *match.Handler,
	articlesV1 *article.Handler,
	roundsV1 *game.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	if opts.Timeout > 0 {
		router.Use(middleware.Timeout(opts.Timeout))
	}

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(verifier.Middleware)

		r.Route("/match", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			matchV1.Routes(r)
		})

		r.Route("/articles", articlesV1.Routes)

		r.Route("/rounds", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			roundsV1.Routes(r)
		})

		r.Route("/players", roundsV1.PlayerRoutes)
	})

	return router
}
