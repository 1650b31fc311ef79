package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultSessionSecret is the development cookie key.
const DefaultSessionSecret = "change-me-in-production"

// ErrDefaultSessionSecret rejects the development cookie key when cookies are
// marked secure, which only happens in production deployments.
var ErrDefaultSessionSecret = errors.New("SESSION_SECRET must be set when SECURE_COOKIES is enabled")

// Config holds all configuration for the dashboard, CLI and worker.
type Config struct {
	APIURL        string        `env:"API_URL" envDefault:"http://localhost:3001"`
	HTTPAddr      string        `env:"HTTP_ADDR" envDefault:":8080"`
	HTTPTimeout   time.Duration `env:"HTTP_TIMEOUT" envDefault:"15s"`
	DatabaseURL   string        `env:"DATABASE_URL"`
	SessionSecret string        `env:"SESSION_SECRET" envDefault:"change-me-in-production"`
	SecureCookies bool          `env:"SECURE_COOKIES" envDefault:"false"`
	AMQPURL       string        `env:"AMQP_URL"`
	AMQPQueue     string        `env:"AMQP_QUEUE" envDefault:"campaign_status"`
	PollInterval  time.Duration `env:"POLL_INTERVAL" envDefault:"3s"`
	LogFormat     string        `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional .env file and then parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on OS environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SecureCookies && cfg.SessionSecret == DefaultSessionSecret {
		return nil, ErrDefaultSessionSecret
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 3 * time.Second
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 15 * time.Second
	}
	return cfg, nil
}
