package domain

import "fmt"

// ExchangeKind identifies which protocol flow an Exchange belongs to.
type ExchangeKind string

const (
	ExchangeCreation     ExchangeKind = "creation"
	ExchangeContribution ExchangeKind = "contribution"
)

// ExchangeState is a step of the transaction-exchange protocol for one
// (campaign, operation) pair.
type ExchangeState string

const (
	ExchangeRequested      ExchangeState = "requested"
	ExchangeEnvelopeIssued ExchangeState = "envelope_issued"
	ExchangeSubmitted      ExchangeState = "submitted"
	ExchangeReconciled     ExchangeState = "reconciled"
	ExchangeFailed         ExchangeState = "failed"
)

var exchangeSteps = map[ExchangeState]ExchangeState{
	ExchangeRequested:      ExchangeEnvelopeIssued,
	ExchangeEnvelopeIssued: ExchangeSubmitted,
	ExchangeSubmitted:      ExchangeReconciled,
}

// Exchange tracks the progress of one envelope through the protocol. It is
// not persisted; the orchestrator drives it and logs its transitions.
type Exchange struct {
	CampaignID string
	Kind       ExchangeKind
	State      ExchangeState
	TxHash     string
	Reason     string
}

// NewExchange starts an exchange in the requested state.
func NewExchange(campaignID string, k ExchangeKind) Exchange {
	return Exchange{CampaignID: campaignID, Kind: k, State: ExchangeRequested}
}

// ResumeExchange starts an exchange for a client that already holds an
// envelope, i.e. at envelope_issued.
func ResumeExchange(campaignID string, k ExchangeKind, txHash string) Exchange {
	return Exchange{CampaignID: campaignID, Kind: k, State: ExchangeEnvelopeIssued, TxHash: txHash}
}

// Advance moves the exchange to the next state. Only the linear path is
// allowed; a failed or reconciled exchange cannot move.
func (e *Exchange) Advance(to ExchangeState) error {
	if exchangeSteps[e.State] != to {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStateStep, e.State, to)
	}
	e.State = to
	return nil
}

// Fail moves the exchange to failed from any non-terminal state.
func (e *Exchange) Fail(reason string) {
	if e.State == ExchangeReconciled {
		return
	}
	e.State = ExchangeFailed
	e.Reason = reason
}
