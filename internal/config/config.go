package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting for the API. It is loaded once in
// main and handed to constructors; nothing reads the environment after
// startup.
type Config struct {
	Addr        string `env:"ADDR" envDefault:":8000"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	// TokenSecret signs bearer tokens (HS256). TokenTTL is the fixed
	// lifetime of every issued token.
	TokenSecret string        `env:"TOKEN_SECRET,required"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"30m"`

	DBMaxOpenConns int           `env:"DB_MAX_OPEN" envDefault:"25"`
	DBMaxIdleConns int           `env:"DB_MAX_IDLE" envDefault:"25"`
	DBConnLifetime time.Duration `env:"DB_MAX_LIFETIME" envDefault:"5m"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
