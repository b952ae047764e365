package configs

import "time"

// Reconcile configures the ledger-history sweep and the conflict retry
// budget of the read-modify-write cycle.
type Reconcile struct {
	Enabled  bool          `env:"ENABLED" envDefault:"true"`
	Interval time.Duration `env:"INTERVAL" envDefault:"1m"`
	// MaxRetries bounds compare-and-swap retries per reconciliation.
	MaxRetries uint `env:"MAX_RETRIES" envDefault:"8"`
}
