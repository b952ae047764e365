package configs

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stellar configures the ledger gateway. The defaults target the public
// test network.
type Stellar struct {
	HorizonURL        string `env:"HORIZON_URL" envDefault:"https://horizon-testnet.stellar.org"`
	NetworkPassphrase string `env:"NETWORK_PASSPHRASE" envDefault:"Test SDF Network ; September 2015"`
	// StartingBalance funds a new campaign account. It must cover the
	// network's base reserve.
	StartingBalance decimal.Decimal `env:"STARTING_BALANCE" envDefault:"1"`
	// EnvelopeTTL is the validity window set on every built envelope. An
	// envelope not submitted within it is rejected by the network.
	EnvelopeTTL time.Duration `env:"ENVELOPE_TTL" envDefault:"5m"`
	// RequestTimeout bounds every Horizon round trip. A timeout surfaces
	// as a retryable network-unavailable error.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	// RateLimit and RateBurst throttle outbound Horizon calls.
	RateLimit float64 `env:"RATE_LIMIT" envDefault:"10"`
	RateBurst int     `env:"RATE_BURST" envDefault:"5"`
	// EnableFaucet exposes friendbot funding. Only meaningful on testnet.
	EnableFaucet bool `env:"ENABLE_FAUCET" envDefault:"false"`
}
