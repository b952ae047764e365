package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Operation types the protocol inspects. Anything else decodes as OpOther.
const (
	OpCreateAccount = "create_account"
	OpPayment       = "payment"
	OpOther         = "other"
)

// Envelope is a base64 XDR transaction body handed to a client for signing.
type Envelope struct {
	XDR       string
	Hash      string
	ExpiresAt time.Time
}

// Operation is the part of a ledger operation the protocol checks.
// Source is already resolved to the transaction source when the operation
// does not override it.
type Operation struct {
	Type        string
	Source      string
	Destination string
	Amount      decimal.Decimal
	Native      bool
}

// EnvelopeSummary is a decoded envelope.
type EnvelopeSummary struct {
	Hash       string
	Source     string
	Signatures int
	Operations []Operation
}

// CreatedAccount returns the destination of the first create_account
// operation, or "" if there is none.
func (s EnvelopeSummary) CreatedAccount() string {
	for _, op := range s.Operations {
		if op.Type == OpCreateAccount {
			return op.Destination
		}
	}
	return ""
}

// SubmissionResult is returned by a successful submission. AlreadyApplied
// is set when the network had already applied the same envelope; callers
// treat it as success.
type SubmissionResult struct {
	LedgerTxID        string
	Ledger            int32
	AppliedOperations []Operation
	AlreadyApplied    bool
}

// CreatedAccount returns the account created by the submitted transaction.
func (r SubmissionResult) CreatedAccount() string {
	return EnvelopeSummary{Operations: r.AppliedOperations}.CreatedAccount()
}

// Balance is one asset balance of an account.
type Balance struct {
	Asset  string // "native" or CODE:ISSUER
	Amount decimal.Decimal
}

// AccountSnapshot is the loaded state of a ledger account.
type AccountSnapshot struct {
	AccountID string
	Sequence  int64
	Balances  []Balance
}

// LedgerPayment is one confirmed value transfer from an account's history.
type LedgerPayment struct {
	Type      string // OpCreateAccount or OpPayment
	TxHash    string
	OpIndex   int // zero-based position within the transaction
	From      string
	To        string
	Amount    decimal.Decimal
	Native    bool
	Succeeded bool
	ClosedAt  time.Time
}

// LedgerTransaction is a transaction as reported by the network.
type LedgerTransaction struct {
	Hash           string
	Ledger         int32
	CreatedAt      time.Time
	Successful     bool
	OperationCount int32
}
