package config

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// DatabaseConfig holds PostgreSQL database connection settings.
// Keys are read with the DB_ prefix, e.g. DB_HOST or DB_MAX_OPEN_CONNS.
type DatabaseConfig struct {
	Host               string `validate:"required"`
	Port               string `default:"5432" validate:"required,numeric"`
	User               string `validate:"required"`
	Password           string
	Name               string `validate:"required"`
	SSLMode            string `default:"disable" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns       int    `split_words:"true" default:"10" validate:"min=0"`
	MaxIdleConns       int    `split_words:"true" default:"5" validate:"min=0"`
	ConnMaxLifetimeSec int    `split_words:"true" default:"300" validate:"min=0"`
	// AutoMigrate applies pending schema migrations when the server starts.
	AutoMigrate bool `split_words:"true" default:"true"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	// AppHost is the interface the server binds to. Empty means all interfaces.
	AppHost        string `envconfig:"APP_HOST" validate:"omitempty,ip|hostname"`
	Port           string `envconfig:"PORT" default:"8080" validate:"required,numeric"`
	Env            string `envconfig:"APP_ENV" default:"development" validate:"oneof=development test staging production"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Timezone       string `envconfig:"TIMEZONE" default:"UTC" validate:"timezone"`
	BodyLimitBytes int    `envconfig:"BODY_LIMIT_BYTES" default:"1048576" validate:"min=1"`
	SentryDSN      string `envconfig:"SENTRY_DSN" validate:"omitempty,url"`

	Database DatabaseConfig `envconfig:"DB"`
}

// Load reads configuration from environment variables and validates it.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() (*AppConfig, error) {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Location resolves Timezone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
