package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"agency-hub/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is only
	// attached to log records.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Storage selects the record store backend. Environment variables
	// prefixed with STORAGE_ will populate this struct.
	Storage configs.Storage `envPrefix:"STORAGE_"`

	// Psql configures the PostgreSQL connection used by the postgres
	// backend. Environment variables prefixed with PSQL_ will populate this
	// struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Metrics configures the Prometheus endpoint.
	Metrics configs.Metrics `envPrefix:"METRICS_"`

	// Dashboard tunes the derived dashboard figures.
	Dashboard configs.Dashboard `envPrefix:"DASHBOARD_"`
}

// Load reads configuration from environment variables into a Config. A
// .env file in the working directory is read first when present; variables
// already set in the environment win. If parsing or validation fails, an
// error is returned.
func Load() (Config, error) {
	var cfg Config
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Storage.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
