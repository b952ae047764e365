package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCampaign(t *testing.T) Campaign {
	t.Helper()
	c, err := NewCampaign("c1", "", "GCREATOR", decimal.NewFromInt(100), time.Now().Add(24*time.Hour), time.Now())
	require.NoError(t, err)
	return c
}

func TestNewCampaignDefaultsAndValidation(t *testing.T) {
	c := newTestCampaign(t)
	assert.Equal(t, AnonymousCreator, c.Creator)
	assert.Equal(t, LifecycleDraft, c.State)
	assert.True(t, c.Raised.IsZero())
	assert.Empty(t, c.LedgerAccount)

	deadline := time.Now().Add(time.Hour)
	cases := []struct {
		name    string
		account string
		goal    decimal.Decimal
		dl      time.Time
		want    error
	}{
		{"missing account", " ", decimal.NewFromInt(1), deadline, ErrInvalidAccount},
		{"zero goal", "G1", decimal.Zero, deadline, ErrInvalidGoal},
		{"negative goal", "G1", decimal.NewFromInt(-5), deadline, ErrInvalidGoal},
		{"too precise goal", "G1", decimal.RequireFromString("1.00000001"), deadline, ErrInvalidGoal},
		{"missing deadline", "G1", decimal.NewFromInt(1), time.Time{}, ErrMissingDeadline},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCampaign("x", "bob", tc.account, tc.goal, tc.dl, time.Now())
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestRaisedEqualsSumOfContributions(t *testing.T) {
	c := newTestCampaign(t)
	require.NoError(t, c.MarkCreated("GCAMPAIGN", "tx0"))

	amounts := []string{"40", "10", "0.5", "3.1415926", "7", "12.25"}
	contributors := []string{"D1", "D2", "D1", "D3", "D2", "D1"}
	want := decimal.Zero
	for i, a := range amounts {
		amt := decimal.RequireFromString(a)
		want = want.Add(amt)
		require.NoError(t, c.RecordContribution(contributors[i], amt))
		require.True(t, c.Raised.Equal(c.RecomputeRaised()), "after %d contributions", i+1)
	}
	assert.True(t, want.Equal(c.Raised), "raised %s want %s", c.Raised, want)
	assert.NoError(t, c.Audit())
	assert.True(t, c.Contributions["D1"].Equal(decimal.RequireFromString("52.75")))
}

func TestRecordContributionRejectsInvalidAmount(t *testing.T) {
	c := newTestCampaign(t)
	before := c.Clone()
	for _, a := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-1)} {
		err := c.RecordContribution("D1", a)
		require.ErrorIs(t, err, ErrInvalidAmount)
	}
	assert.Equal(t, before, c)
}

func TestMarkCreatedOnlyOnce(t *testing.T) {
	c := newTestCampaign(t)
	require.NoError(t, c.IssueCreation("GPENDING"))
	assert.Equal(t, LifecycleAwaitingCreationSignature, c.State)
	assert.False(t, c.AcceptsContributions())

	require.NoError(t, c.MarkCreated("GPENDING", "tx1"))
	assert.Equal(t, LifecycleAcceptingContributions, c.State)
	assert.True(t, c.AcceptsContributions())

	err := c.MarkCreated("GOTHER", "tx2")
	require.ErrorIs(t, err, ErrAlreadyCreated)
	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "GPENDING", c.LedgerAccount)
	assert.Equal(t, "tx1", c.CreationTxID)

	require.ErrorIs(t, c.IssueCreation("GNEW"), ErrAlreadyCreated)
}

func TestApplySettlementIsIdempotent(t *testing.T) {
	c := newTestCampaign(t)
	s := Settlement{TxHash: "h1", Contributor: "D1", Amount: decimal.NewFromInt(40)}

	changed, err := c.ApplySettlement(s)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = c.ApplySettlement(s)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.True(t, c.Raised.Equal(decimal.NewFromInt(40)))

	_, err = c.ApplySettlement(Settlement{Contributor: "D1", Amount: decimal.NewFromInt(1)})
	require.ErrorIs(t, err, ErrMalformedEnvelope)
}

func TestApplySettlementKeysByOperation(t *testing.T) {
	c := newTestCampaign(t)
	for i, amt := range []int64{3, 4} {
		changed, err := c.ApplySettlement(Settlement{TxHash: "hm", OpIndex: i, Contributor: "D1", Amount: decimal.NewFromInt(amt)})
		require.NoError(t, err)
		assert.True(t, changed)
	}
	assert.True(t, c.Raised.Equal(decimal.NewFromInt(7)))
	assert.True(t, c.HasSettlement(SettlementKey("hm", 1)))
	assert.False(t, c.HasSettlement("hm"))
}

func TestAuditDetectsDrift(t *testing.T) {
	c := newTestCampaign(t)
	require.NoError(t, c.RecordContribution("D1", decimal.NewFromInt(5)))
	c.Raised = decimal.NewFromInt(7)
	require.True(t, errors.Is(c.Audit(), ErrRaisedDrift))
}

func TestCloneIsDeep(t *testing.T) {
	c := newTestCampaign(t)
	require.NoError(t, c.RecordContribution("D1", decimal.NewFromInt(5)))
	cp := c.Clone()
	require.NoError(t, cp.RecordContribution("D1", decimal.NewFromInt(5)))
	assert.True(t, c.Contributions["D1"].Equal(decimal.NewFromInt(5)))
	assert.True(t, cp.Contributions["D1"].Equal(decimal.NewFromInt(10)))
}

func TestExchangeTransitions(t *testing.T) {
	e := NewExchange("c1", ExchangeContribution)
	require.NoError(t, e.Advance(ExchangeEnvelopeIssued))
	require.ErrorIs(t, e.Advance(ExchangeReconciled), ErrInvalidStateStep)
	require.NoError(t, e.Advance(ExchangeSubmitted))
	require.NoError(t, e.Advance(ExchangeReconciled))

	e.Fail("late")
	assert.Equal(t, ExchangeReconciled, e.State)

	r := ResumeExchange("c1", ExchangeCreation, "h")
	r.Fail("tx_bad_auth")
	assert.Equal(t, ExchangeFailed, r.State)
	assert.Equal(t, "tx_bad_auth", r.Reason)
	require.Error(t, r.Advance(ExchangeSubmitted))
}

func TestRejectionErrorMatchesCategory(t *testing.T) {
	var err error = &RejectionError{Code: "tx_failed", OperationCodes: []string{"op_underfunded"}}
	assert.ErrorIs(t, err, ErrRejectedByNetwork)
	assert.Equal(t, "rejected by network: tx_failed [op_underfunded]", err.Error())
}
