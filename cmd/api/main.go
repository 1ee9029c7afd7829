package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/wikiguessr/internal/article"
	articleStore "github.com/MrJamesThe3rd/wikiguessr/internal/article/store"
	"github.com/MrJamesThe3rd/wikiguessr/internal/config"
	"github.com/MrJamesThe3rd/wikiguessr/internal/database"
	"github.com/MrJamesThe3rd/wikiguessr/internal/game"
	gameStore "github.com/MrJamesThe3rd/wikiguessr/internal/game/store"
	wgHttp "github.com/MrJamesThe3rd/wikiguessr/internal/http"
	articleHandler "github.com/MrJamesThe3rd/wikiguessr/internal/http/article"
	"github.com/MrJamesThe3rd/wikiguessr/internal/http/auth"
	gameHandler "github.com/MrJamesThe3rd/wikiguessr/internal/http/game"
	matchHandler "github.com/MrJamesThe3rd/wikiguessr/internal/http/match"
	"github.com/MrJamesThe3rd/wikiguessr/internal/http/ratelimit"
	"github.com/MrJamesThe3rd/wikiguessr/internal/importer"
	"github.com/MrJamesThe3rd/wikiguessr/internal/logging"
	"github.com/MrJamesThe3rd/wikiguessr/internal/wikipedia"
)

const limiterCleanupInterval = 5 * time.Minute

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	_, logCloser, err := logging.Setup(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer logCloser.Close()

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	clock := clockwork.NewRealClock()

	var (
		articleService = article.NewService(articleStore.New(db))
		importService  = importer.NewService()
		gameService    = game.NewService(gameStore.New(db), articleService, clock, game.Config{
			Threshold:  cfg.Game.Threshold,
			MaxGuesses: cfg.Game.MaxGuesses,
		})
		wikiClient = wikipedia.NewClient(cfg.Wikipedia.BaseURL, cfg.Wikipedia.UserAgent, cfg.Wikipedia.Timeout)
		verifier   = auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
		limiter    = ratelimit.New(cfg.RateLimit.GuessesPerSecond, cfg.RateLimit.Burst, clock)
	)

	if !verifier.Enabled() {
		slog.Warn("AUTH_JWT_SECRET not set, all requests are anonymous")
	}

	var (
		matchH   = matchHandler.NewHandler(cfg.Game.Threshold)
		articleH = articleHandler.NewHandler(articleService, importService, wikiClient)
		gameH    = gameHandler.NewHandler(gameService, limiter.Middleware)
	)

	router := wgHttp.New(
		wgHttp.Options{AllowedOrigins: cfg.CORS.AllowedOrigins, Timeout: cfg.Server.Timeout},
		verifier, matchH, articleH, gameH,
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting server", "addr", srv.Addr, "app", cfg.App.Name)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		limiter.Run(ctx, limiterCleanupInterval)
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
