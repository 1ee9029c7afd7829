package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"WikiGuessr"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"wikiguessr"`
		SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	}

	Server struct {
		Timeout         time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	}

	Auth struct {
		// Empty disables token verification; every request is anonymous.
		JWTSecret string `envconfig:"AUTH_JWT_SECRET"`
		Issuer    string `envconfig:"AUTH_ISSUER"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	RateLimit struct {
		GuessesPerSecond float64 `envconfig:"RATE_LIMIT_GUESSES_PER_SECOND" default:"5"`
		Burst            int     `envconfig:"RATE_LIMIT_BURST" default:"10"`
	}

	Game struct {
		Threshold  float64 `envconfig:"GAME_MATCH_THRESHOLD" default:"0.85"`
		MaxGuesses int     `envconfig:"GAME_MAX_GUESSES" default:"6"`
	}

	Wikipedia struct {
		BaseURL   string        `envconfig:"WIKIPEDIA_BASE_URL" default:"https://en.wikipedia.org"`
		UserAgent string        `envconfig:"WIKIPEDIA_USER_AGENT" default:"WikiGuessr/1.0"`
		Timeout   time.Duration `envconfig:"WIKIPEDIA_TIMEOUT" default:"10s"`
	}

	Log struct {
		Level  string `envconfig:"LOG_LEVEL" default:"info"`
		Format string `envconfig:"LOG_FORMAT" default:"text"`
		// Optional; logs go to stderr as well when set.
		File string `envconfig:"LOG_FILE"`
	}

	TUI struct {
		PlayerID string `envconfig:"TUI_PLAYER_ID" default:"local"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name, c.DB.SSLMode)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.Game.Threshold < 0 || cfg.Game.Threshold > 1 {
		return nil, fmt.Errorf("GAME_MATCH_THRESHOLD must be within [0,1], got %v", cfg.Game.Threshold)
	}

	if cfg.Game.MaxGuesses < 1 {
		return nil, fmt.Errorf("GAME_MAX_GUESSES must be positive, got %d", cfg.Game.MaxGuesses)
	}

	return &cfg, nil
}
