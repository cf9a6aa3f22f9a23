// Package config carga la configuración del cliente y del backend de desarrollo
// desde variables de entorno (con .env opcional).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	SessionBackendFile     = "file"
	SessionBackendMemory   = "memory"
	SessionBackendRedis    = "redis"
	SessionBackendPostgres = "postgres"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config del cliente (CLI pawbuddy).
type Config struct {
	APIBaseURL  string        `env:"PAWBUDDY_API_BASE_URL" envDefault:"http://localhost:8080"`
	HTTPTimeout time.Duration `env:"PAWBUDDY_HTTP_TIMEOUT" envDefault:"10s"`

	// Requests por segundo hacia el backend. 0 = sin límite.
	RateLimit float64 `env:"PAWBUDDY_RATE_LIMIT" envDefault:"5"`
	RateBurst int     `env:"PAWBUDDY_RATE_BURST" envDefault:"5"`

	SessionBackend string `env:"PAWBUDDY_SESSION_BACKEND" envDefault:"file"`
	SessionFile    string `env:"PAWBUDDY_SESSION_FILE"`
	Namespace      string `env:"PAWBUDDY_NAMESPACE" envDefault:"pawbuddy"`
	RedisURL       string `env:"PAWBUDDY_REDIS_URL"`
	DatabaseURL    string `env:"PAWBUDDY_DATABASE_URL"`

	LogLevel  string `env:"PAWBUDDY_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"PAWBUDDY_LOG_FORMAT" envDefault:"text"`
}

// DevAPIConfig del backend local (cmd/devapi).
type DevAPIConfig struct {
	Port          string `env:"DEVAPI_PORT" envDefault:"8080"`
	AdminEmail    string `env:"DEVAPI_ADMIN_EMAIL" envDefault:"admin@pawbuddy.local"`
	AdminPassword string `env:"DEVAPI_ADMIN_PASSWORD" envDefault:"admin123"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load lee .env (si existe) y luego el entorno.
func Load() (*Config, error) {
	// Si no hay .env seguimos solo con el entorno.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if strings.TrimSpace(cfg.SessionFile) == "" {
		cfg.SessionFile = DefaultSessionFile()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return fmt.Errorf("%w: PAWBUDDY_API_BASE_URL is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Namespace) == "" {
		return fmt.Errorf("%w: PAWBUDDY_NAMESPACE is required", ErrInvalidConfig)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("%w: PAWBUDDY_RATE_LIMIT must be >= 0", ErrInvalidConfig)
	}

	switch c.SessionBackend {
	case SessionBackendFile:
		if strings.TrimSpace(c.SessionFile) == "" {
			return fmt.Errorf("%w: PAWBUDDY_SESSION_FILE is required for file backend", ErrInvalidConfig)
		}
	case SessionBackendMemory:
	case SessionBackendRedis:
		if strings.TrimSpace(c.RedisURL) == "" {
			return fmt.Errorf("%w: PAWBUDDY_REDIS_URL is required for redis backend", ErrInvalidConfig)
		}
	case SessionBackendPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("%w: PAWBUDDY_DATABASE_URL is required for postgres backend", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown session backend %q", ErrInvalidConfig, c.SessionBackend)
	}
	return nil
}

// LoadDevAPI carga la config del backend local.
func LoadDevAPI() (*DevAPIConfig, error) {
	_ = godotenv.Load()

	cfg := &DevAPIConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	if strings.TrimSpace(cfg.AdminEmail) == "" || strings.TrimSpace(cfg.AdminPassword) == "" {
		return nil, fmt.Errorf("%w: DEVAPI_ADMIN_EMAIL and DEVAPI_ADMIN_PASSWORD are required", ErrInvalidConfig)
	}
	return cfg, nil
}

// DefaultSessionFile: $HOME/.pawbuddy/session.yaml (o relativo si no hay HOME).
func DefaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".pawbuddy", "session.yaml")
	}
	return filepath.Join(home, ".pawbuddy", "session.yaml")
}
