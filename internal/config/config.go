package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"stellar-fund/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Store selects the campaign store driver (STORE_DRIVER).
	Store configs.Store `envPrefix:"STORE_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// SQLite configures the embedded store (SQLITE_).
	SQLite configs.SQLite `envPrefix:"SQLITE_"`

	// Stellar configures the ledger gateway (STELLAR_).
	Stellar configs.Stellar `envPrefix:"STELLAR_"`

	// Reconcile configures the reconciliation sweep (RECONCILE_).
	Reconcile configs.Reconcile `envPrefix:"RECONCILE_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store.Normalized() {
	case "postgres", "sqlite", "memory":
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if !c.Stellar.StartingBalance.IsPositive() {
		return fmt.Errorf("stellar starting balance must be positive, got %s", c.Stellar.StartingBalance)
	}
	if c.Stellar.EnvelopeTTL <= 0 {
		return fmt.Errorf("stellar envelope ttl must be positive, got %s", c.Stellar.EnvelopeTTL)
	}
	if c.Reconcile.Enabled && c.Reconcile.Interval <= 0 {
		return fmt.Errorf("reconcile interval must be positive, got %s", c.Reconcile.Interval)
	}
	return nil
}
