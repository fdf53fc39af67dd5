package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port        int    `env:"PORT" envDefault:"3000"`
	Environment string `env:"APP_ENV" envDefault:"development"`

	JWTSecret string        `env:"SESSION_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	AdminUsername     string `env:"ADMIN_USERNAME"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	DataFile   string `env:"DATA_FILE" envDefault:"database/data.json"`
	UploadsDir string `env:"UPLOADS_DIR" envDefault:"uploads"`
	AssetsDir  string `env:"ASSETS_DIR" envDefault:"assets"`

	FrontendURL string `env:"FRONTEND_URL"`
}

// Load reads an optional .env file, parses the environment and validates
// required fields.
func Load() (Config, error) {
	// Missing .env is fine; deployments set real environment variables.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if c.AdminUsername == "" {
		return fmt.Errorf("ADMIN_USERNAME is required")
	}
	if c.AdminPasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	return nil
}

// Development reports whether the server runs in development mode, which
// relaxes the CORS origin check.
func (c Config) Development() bool {
	return c.Environment == "development"
}
