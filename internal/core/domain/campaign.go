package domain

import (
	"maps"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AnonymousCreator is stored when a campaign is created without a display name.
const AnonymousCreator = "Anonymous"

// AmountPrecision is the number of fractional digits the ledger can represent.
const AmountPrecision = 7

// Lifecycle is the persisted stage of a campaign.
type Lifecycle string

const (
	LifecycleDraft                     Lifecycle = "draft"
	LifecycleAwaitingCreationSignature Lifecycle = "awaiting_creation_signature"
	LifecycleCreated                   Lifecycle = "created"
	LifecycleAcceptingContributions    Lifecycle = "accepting_contributions"
)

// Campaign represents one fundraising effort.
// Raised is always the sum of Contributions; it is stored for listing
// convenience and checked with Audit.
type Campaign struct {
	ID             string
	Creator        string
	CreatorAccount string
	Goal           decimal.Decimal
	Deadline       time.Time
	PendingAccount string // destination of the last issued creation envelope
	LedgerAccount  string // set once, by a confirmed creation transaction
	CreationTxID   string
	Raised         decimal.Decimal
	Contributions  map[string]decimal.Decimal
	Settlements    map[string]Settlement // keyed by SettlementKey
	State          Lifecycle
	Version        int64 // compare-and-swap token owned by the store
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Settlement is one confirmed ledger payment applied to a campaign.
// OpIndex is the zero-based position of the payment operation within its
// transaction; a transaction may carry several payments.
type Settlement struct {
	TxHash      string          `json:"tx_hash"`
	OpIndex     int             `json:"op_index"`
	Contributor string          `json:"contributor"`
	Amount      decimal.Decimal `json:"amount"`
	SettledAt   time.Time       `json:"settled_at"`
}

// NewCampaign validates the creation request and returns a draft campaign.
func NewCampaign(id, creator, creatorAccount string, goal decimal.Decimal, deadline, now time.Time) (Campaign, error) {
	creatorAccount = strings.TrimSpace(creatorAccount)
	if creatorAccount == "" {
		return Campaign{}, ErrInvalidAccount
	}
	if !ValidAmount(goal) {
		return Campaign{}, ErrInvalidGoal
	}
	if deadline.IsZero() {
		return Campaign{}, ErrMissingDeadline
	}
	creator = strings.TrimSpace(creator)
	if creator == "" {
		creator = AnonymousCreator
	}
	now = now.UTC()
	return Campaign{
		ID:             id,
		Creator:        creator,
		CreatorAccount: creatorAccount,
		Goal:           goal,
		Deadline:       deadline.UTC(),
		Raised:         decimal.Zero,
		Contributions:  map[string]decimal.Decimal{},
		Settlements:    map[string]Settlement{},
		State:          LifecycleDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// ValidAmount reports whether v is positive and representable on the ledger.
func ValidAmount(v decimal.Decimal) bool {
	return v.IsPositive() && v.Equal(v.Truncate(AmountPrecision))
}

// IssueCreation records the destination of a freshly built creation
// envelope. It may be called again after a rejected submission.
func (c *Campaign) IssueCreation(pendingAccount string) error {
	if c.LedgerAccount != "" {
		return ErrAlreadyCreated
	}
	if pendingAccount == "" {
		return ErrDestinationUnset
	}
	c.PendingAccount = pendingAccount
	c.State = LifecycleAwaitingCreationSignature
	return nil
}

// MarkCreated sets the ledger account from a confirmed creation
// transaction and opens the campaign for contributions.
func (c *Campaign) MarkCreated(ledgerAccount, txID string) error {
	if c.LedgerAccount != "" {
		return ErrAlreadyCreated
	}
	if ledgerAccount == "" {
		return ErrDestinationUnset
	}
	c.LedgerAccount = ledgerAccount
	c.CreationTxID = txID
	// created and accepting_contributions are entered by the same event.
	c.State = LifecycleAcceptingContributions
	return nil
}

// AcceptsContributions reports whether contribution envelopes may be built.
func (c *Campaign) AcceptsContributions() bool {
	return c.LedgerAccount != ""
}

// RecordContribution adds amount to the contributor's total and to Raised.
// Callers must invoke it at most once per confirmed ledger payment; use
// ApplySettlement to get that guarantee.
func (c *Campaign) RecordContribution(contributor string, amount decimal.Decimal) error {
	if !ValidAmount(amount) {
		return ErrInvalidAmount
	}
	if contributor == "" {
		return ErrInvalidAccount
	}
	if c.Contributions == nil {
		c.Contributions = map[string]decimal.Decimal{}
	}
	c.Contributions[contributor] = c.Contributions[contributor].Add(amount)
	c.Raised = c.Raised.Add(amount)
	return nil
}

// SettlementKey identifies one payment operation on the ledger.
func SettlementKey(txHash string, opIndex int) string {
	return txHash + ":" + strconv.Itoa(opIndex)
}

// Key returns the settlement's SettlementKey.
func (s Settlement) Key() string { return SettlementKey(s.TxHash, s.OpIndex) }

// ApplySettlement records the contribution carried by s unless the same
// payment operation was already applied. It reports whether the campaign
// changed.
func (c *Campaign) ApplySettlement(s Settlement) (bool, error) {
	if s.TxHash == "" || s.OpIndex < 0 {
		return false, ErrMalformedEnvelope
	}
	if c.HasSettlement(s.Key()) {
		return false, nil
	}
	if err := c.RecordContribution(s.Contributor, s.Amount); err != nil {
		return false, err
	}
	if c.Settlements == nil {
		c.Settlements = map[string]Settlement{}
	}
	c.Settlements[s.Key()] = s
	return true, nil
}

// HasSettlement reports whether the payment identified by key (see
// SettlementKey) was already applied.
func (c *Campaign) HasSettlement(key string) bool {
	_, ok := c.Settlements[key]
	return ok
}

// RecomputeRaised returns the sum of all contributions.
func (c *Campaign) RecomputeRaised() decimal.Decimal {
	total := decimal.Zero
	for _, v := range c.Contributions {
		total = total.Add(v)
	}
	return total
}

// Audit returns ErrRaisedDrift when Raised disagrees with Contributions.
func (c *Campaign) Audit() error {
	if !c.Raised.Equal(c.RecomputeRaised()) {
		return ErrRaisedDrift
	}
	return nil
}

// Clone returns a deep copy.
func (c Campaign) Clone() Campaign {
	c.Contributions = maps.Clone(c.Contributions)
	c.Settlements = maps.Clone(c.Settlements)
	if c.Contributions == nil {
		c.Contributions = map[string]decimal.Decimal{}
	}
	if c.Settlements == nil {
		c.Settlements = map[string]Settlement{}
	}
	return c
}
