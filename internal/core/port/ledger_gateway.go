package port

import (
	"context"

	"github.com/shopspring/decimal"

	"stellar-fund/internal/core/domain"
)

// LedgerGateway is a thin adapter over the ledger network. It never signs
// anything: envelopes leave unsigned and come back signed by the client.
type LedgerGateway interface {
	// NewAccountID returns an address not yet known to the network.
	NewAccountID() (string, error)
	// LoadAccount returns domain.ErrAccountNotFound for unknown accounts.
	LoadAccount(ctx context.Context, accountID string) (domain.AccountSnapshot, error)
	// BuildCreationEnvelope builds an unsigned create-account transaction
	// funded by funderID.
	BuildCreationEnvelope(ctx context.Context, funderID, newAccountID string, startingBalance decimal.Decimal) (domain.Envelope, error)
	// BuildPaymentEnvelope builds an unsigned native payment.
	BuildPaymentEnvelope(ctx context.Context, sourceID, destinationID string, amount decimal.Decimal) (domain.Envelope, error)
	// DecodeEnvelope parses a base64 envelope without submitting it.
	DecodeEnvelope(encoded string) (domain.EnvelopeSummary, error)
	// Submit sends a signed envelope. Submission is not idempotent on the
	// network; an envelope the network already applied comes back with
	// AlreadyApplied set rather than as an error.
	Submit(ctx context.Context, signed string) (domain.SubmissionResult, error)
	// Payments returns the account's confirmed payment history, oldest first.
	Payments(ctx context.Context, accountID string) ([]domain.LedgerPayment, error)
	// RecentTransactions returns up to limit transactions, newest first.
	RecentTransactions(ctx context.Context, accountID string, limit int) ([]domain.LedgerTransaction, error)
	// Fund asks the test network faucet to fund accountID.
	Fund(ctx context.Context, accountID string) (domain.LedgerTransaction, error)
}
