package httpadapter

import (
	"time"

	"github.com/shopspring/decimal"

	"stellar-fund/internal/core/domain"
	"stellar-fund/internal/core/port"
)

type createCampaignRequest struct {
	Creator        string          `json:"creator"`
	Goal           decimal.Decimal `json:"goal"`
	Deadline       time.Time       `json:"deadline"`
	CreatorAccount string          `json:"creatorAccount"`
}

type envelopeResponse struct {
	CampaignID       string    `json:"campaignId,omitempty"`
	UnsignedEnvelope string    `json:"unsignedEnvelope"`
	EnvelopeHash     string    `json:"envelopeHash"`
	ExpiresAt        time.Time `json:"expiresAt"`
}

func newEnvelopeResponse(campaignID string, env domain.Envelope) envelopeResponse {
	return envelopeResponse{
		CampaignID:       campaignID,
		UnsignedEnvelope: env.XDR,
		EnvelopeHash:     env.Hash,
		ExpiresAt:        env.ExpiresAt,
	}
}

type finalizeCreationRequest struct {
	SignedEnvelope string `json:"signedEnvelope"`
}

type creationReceiptResponse struct {
	LedgerAccount string `json:"ledgerAccount"`
	LedgerTxID    string `json:"ledgerTxId"`
}

type contributionRequest struct {
	ContributorAccount string          `json:"contributorAccount"`
	Amount             decimal.Decimal `json:"amount"`
}

type finalizeContributionRequest struct {
	SignedEnvelope     string          `json:"signedEnvelope"`
	ContributorAccount string          `json:"contributorAccount"`
	Amount             decimal.Decimal `json:"amount"`
}

type contributionReceiptResponse struct {
	LedgerTxID string          `json:"ledgerTxId"`
	Raised     decimal.Decimal `json:"raised"`
}

type campaignResponse struct {
	ID             string                     `json:"id"`
	Creator        string                     `json:"creator"`
	CreatorAccount string                     `json:"creatorAccount"`
	Goal           decimal.Decimal            `json:"goal"`
	Deadline       time.Time                  `json:"deadline"`
	LedgerAccount  string                     `json:"ledgerAccount"`
	CreationTxID   string                     `json:"creationTxId,omitempty"`
	Raised         decimal.Decimal            `json:"raised"`
	Contributions  map[string]decimal.Decimal `json:"contributions"`
	State          domain.Lifecycle           `json:"state"`
	CreatedAt      time.Time                  `json:"createdAt"`
	UpdatedAt      time.Time                  `json:"updatedAt"`
}

func newCampaignResponse(c domain.Campaign) campaignResponse {
	contributions := c.Contributions
	if contributions == nil {
		contributions = map[string]decimal.Decimal{}
	}
	return campaignResponse{
		ID:             c.ID,
		Creator:        c.Creator,
		CreatorAccount: c.CreatorAccount,
		Goal:           c.Goal,
		Deadline:       c.Deadline,
		LedgerAccount:  c.LedgerAccount,
		CreationTxID:   c.CreationTxID,
		Raised:         c.Raised,
		Contributions:  contributions,
		State:          c.State,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

type settlementResponse struct {
	TxHash      string          `json:"txHash"`
	OpIndex     int             `json:"opIndex"`
	Contributor string          `json:"contributor"`
	Amount      decimal.Decimal `json:"amount"`
	SettledAt   time.Time       `json:"settledAt"`
}

type reconcileResponse struct {
	CampaignID    string               `json:"campaignId"`
	Created       bool                 `json:"created"`
	Applied       []settlementResponse `json:"applied"`
	RepairedDrift bool                 `json:"repairedDrift"`
	Raised        decimal.Decimal      `json:"raised"`
}

func newReconcileResponse(r *port.ReconcileReport) reconcileResponse {
	out := reconcileResponse{
		CampaignID:    r.CampaignID,
		Created:       r.Created,
		Applied:       make([]settlementResponse, 0, len(r.Applied)),
		RepairedDrift: r.RepairedDrift,
		Raised:        r.Raised,
	}
	for _, s := range r.Applied {
		out.Applied = append(out.Applied, settlementResponse{
			TxHash:      s.TxHash,
			OpIndex:     s.OpIndex,
			Contributor: s.Contributor,
			Amount:      s.Amount,
			SettledAt:   s.SettledAt,
		})
	}
	return out
}

type balanceResponse struct {
	Asset  string          `json:"asset"`
	Amount decimal.Decimal `json:"amount"`
}

type transactionResponse struct {
	Hash           string    `json:"hash"`
	Ledger         int32     `json:"ledger"`
	CreatedAt      time.Time `json:"createdAt"`
	Successful     bool      `json:"successful"`
	OperationCount int32     `json:"operationCount"`
}

func newTransactionResponse(tx domain.LedgerTransaction) transactionResponse {
	return transactionResponse{
		Hash:           tx.Hash,
		Ledger:         tx.Ledger,
		CreatedAt:      tx.CreatedAt,
		Successful:     tx.Successful,
		OperationCount: tx.OperationCount,
	}
}

type ledgerResponse struct {
	AccountID    string                `json:"accountId"`
	Sequence     int64                 `json:"sequence,string"`
	Balances     []balanceResponse     `json:"balances"`
	Transactions []transactionResponse `json:"transactions"`
}

func newLedgerResponse(o *port.LedgerOverview) ledgerResponse {
	out := ledgerResponse{
		AccountID:    o.Account.AccountID,
		Sequence:     o.Account.Sequence,
		Balances:     make([]balanceResponse, 0, len(o.Account.Balances)),
		Transactions: make([]transactionResponse, 0, len(o.Transactions)),
	}
	for _, b := range o.Account.Balances {
		out.Balances = append(out.Balances, balanceResponse{Asset: b.Asset, Amount: b.Amount})
	}
	for _, tx := range o.Transactions {
		out.Transactions = append(out.Transactions, newTransactionResponse(tx))
	}
	return out
}

type fundResponse struct {
	LedgerTxID string `json:"ledgerTxId"`
	Ledger     int32  `json:"ledger"`
}
