package domain

import (
	"errors"
	"strings"
)

// Error categories. Every specific error below unwraps to exactly one of
// them, so callers can branch on the category with errors.Is without
// enumerating every failure.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrRejected   = errors.New("rejected by network")
	ErrTransient  = errors.New("transient infrastructure failure")
	ErrGateway    = errors.New("ledger gateway failure")
)

var (
	ErrInvalidAmount     = kind(ErrValidation, "amount must be a positive value with at most 7 decimal places")
	ErrInvalidGoal       = kind(ErrValidation, "goal must be a positive value with at most 7 decimal places")
	ErrInvalidAccount    = kind(ErrValidation, "invalid ledger account")
	ErrMissingDeadline   = kind(ErrValidation, "deadline is required")
	ErrDestinationUnset  = kind(ErrValidation, "destination account is not set")
	ErrMalformedEnvelope = kind(ErrValidation, "malformed transaction envelope")
	ErrEnvelopeMismatch  = kind(ErrValidation, "transaction envelope does not match the request")

	ErrCampaignNotFound     = kind(ErrNotFound, "campaign not found")
	ErrCampaignNotFinalized = kind(ErrNotFound, "campaign ledger account is not set, the campaign may not be finalized yet")
	ErrAccountNotFound      = kind(ErrNotFound, "ledger account not found")

	ErrAlreadyCreated   = kind(ErrConflict, "campaign ledger account already set")
	ErrVersionConflict  = kind(ErrConflict, "campaign was modified concurrently")
	ErrInvalidStateStep = kind(ErrConflict, "invalid exchange state transition")
	ErrRaisedDrift      = kind(ErrConflict, "raised total does not match contributions")

	ErrNetworkUnavailable    = kind(ErrTransient, "ledger network unavailable")
	ErrStoreUnavailable      = kind(ErrTransient, "campaign store unavailable")
	ErrReconciliationPending = kind(ErrTransient, "ledger settled but campaign record not updated, reconciliation pending")

	ErrSourceAccountUnavailable = kind(ErrGateway, "source account could not be loaded")
	ErrFaucetDisabled           = kind(ErrNotFound, "faucet is not enabled")

	// ErrRejectedByNetwork is matched by every *RejectionError.
	ErrRejectedByNetwork = ErrRejected
)

type kindError struct {
	kind error
	msg  string
}

func kind(k error, msg string) error { return &kindError{kind: k, msg: msg} }

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// RejectionError carries the network's result codes for a submission the
// ledger refused (bad signature, insufficient balance, sequence mismatch,
// expired time bounds).
type RejectionError struct {
	Code           string
	OperationCodes []string
}

func (e *RejectionError) Error() string {
	if len(e.OperationCodes) == 0 {
		return "rejected by network: " + e.Code
	}
	return "rejected by network: " + e.Code + " [" + strings.Join(e.OperationCodes, ",") + "]"
}

func (e *RejectionError) Unwrap() error { return ErrRejected }
