package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"stellar-fund/internal/core/domain"
)

// CampaignUseCase defines the transaction-exchange operations exposed by the
// service. This interface represents the primary port into the application
// domain; the HTTP adapter depends only on it.
type CampaignUseCase interface {
	// CreateCampaign persists a draft campaign and returns the unsigned
	// creation envelope the creator must sign.
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*CreationEnvelope, error)

	// ReissueCreationEnvelope builds a fresh creation envelope for a campaign
	// that is not created yet, e.g. after a rejected or expired submission.
	ReissueCreationEnvelope(ctx context.Context, campaignID string) (*CreationEnvelope, error)

	// FinalizeCreation submits the signed creation envelope and records the
	// created ledger account. Resubmitting the envelope that created the
	// campaign returns the original receipt.
	FinalizeCreation(ctx context.Context, campaignID, signedEnvelope string) (*CreationReceipt, error)

	// RequestContribution returns an unsigned payment envelope from the
	// contributor to the campaign. It does not change the campaign.
	RequestContribution(ctx context.Context, req ContributionReq) (*domain.Envelope, error)

	// FinalizeContribution submits the signed payment envelope and records the
	// contribution exactly once per settled transaction.
	FinalizeContribution(ctx context.Context, req FinalizeContributionReq) (*ContributionReceipt, error)

	// GetCampaign returns one campaign.
	GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error)

	// ListCampaigns returns all campaigns.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)

	// ReconcileCampaign replays confirmed ledger history into the campaign
	// record, repairing any settlement a failed store write dropped.
	ReconcileCampaign(ctx context.Context, campaignID string) (*ReconcileReport, error)

	// CampaignLedger returns the balances and recent transactions of the
	// campaign's ledger account.
	CampaignLedger(ctx context.Context, campaignID string) (*LedgerOverview, error)

	// FundAccount funds a test network account through the faucet.
	FundAccount(ctx context.Context, accountID string) (*domain.LedgerTransaction, error)
}

type CreateCampaignReq struct {
	Creator        string
	Goal           decimal.Decimal
	Deadline       time.Time
	CreatorAccount string
}

type CreationEnvelope struct {
	CampaignID string
	Envelope   domain.Envelope
}

type CreationReceipt struct {
	LedgerAccount string
	LedgerTxID    string
}

type ContributionReq struct {
	CampaignID         string
	ContributorAccount string
	Amount             decimal.Decimal
}

type FinalizeContributionReq struct {
	CampaignID         string
	SignedEnvelope     string
	ContributorAccount string
	Amount             decimal.Decimal
}

// ContributionReceipt is returned by FinalizeContribution. Raised is the
// campaign total after the contribution was recorded.
type ContributionReceipt struct {
	LedgerTxID string
	Raised     decimal.Decimal
}

// ReconcileReport describes what a reconciliation sweep changed.
type ReconcileReport struct {
	CampaignID    string
	Created       bool
	Applied       []domain.Settlement
	RepairedDrift bool
	Raised        decimal.Decimal
}

// Changed reports whether the sweep wrote anything.
func (r ReconcileReport) Changed() bool {
	return r.Created || len(r.Applied) > 0 || r.RepairedDrift
}

type LedgerOverview struct {
	Account      domain.AccountSnapshot
	Transactions []domain.LedgerTransaction
}
