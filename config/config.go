package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds application configuration loaded from environment variables.
// Everything except DATABASE_URL has a default suitable for local development.
type Config struct {
	AppName  string `env:"APP_NAME" env-default:"users-api"`
	Env      string `env:"APP_ENV" env-default:"development"` // development, staging, production
	HTTPAddr string `env:"HTTP_ADDR" env-default:"127.0.0.1:3000"`
	GinMode  string `env:"GIN_MODE" env-default:"release"`

	// Database
	DatabaseURL       string        `env:"DATABASE_URL" env-required:"true"`
	DBMaxConns        int32         `env:"DB_MAX_CONNS" env-default:"5"`
	DBAcquireTimeout  time.Duration `env:"DB_ACQUIRE_TIMEOUT" env-default:"30s"`
	DBMaxConnLife     time.Duration `env:"DB_MAX_CONN_LIFETIME" env-default:"1h"`
	MigrationsEnabled bool          `env:"MIGRATIONS_ENABLED" env-default:"true"`

	// Redis (rate limiting is disabled when RedisAddr is empty)
	RedisAddr          string `env:"REDIS_ADDR"`
	RedisPassword      string `env:"REDIS_PASSWORD"`
	RedisDB            int    `env:"REDIS_DB" env-default:"0"`
	RateLimitPerMinute int    `env:"RATE_LIMIT_PER_MINUTE" env-default:"60"`

	// CORS
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS"` // comma-separated

	// Debug metrics (/debug/vars)
	DebugMetricsEnabled bool `env:"DEBUG_METRICS_ENABLED" env-default:"false"`

	// HTTP access log toggle
	HTTPLogEnabled bool `env:"HTTP_LOG_ENABLED" env-default:"true"`
}

// Load reads configuration from the process environment.
// A missing DATABASE_URL is an error; callers treat it as fatal.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return errors.New("DATABASE_URL must be set")
	}
	if c.DBMaxConns <= 0 {
		return fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns)
	}
	if c.DBAcquireTimeout <= 0 {
		return fmt.Errorf("DB_ACQUIRE_TIMEOUT must be positive, got %s", c.DBAcquireTimeout)
	}
	return nil
}

// IsDevelopment reports whether the app runs in the development environment
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
