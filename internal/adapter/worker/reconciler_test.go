package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stellar-fund/internal/core/domain"
	"stellar-fund/internal/core/port"
)

type fakeCampaigns struct {
	mu         sync.Mutex
	campaigns  []domain.Campaign
	listErr    error
	failFor    map[string]bool
	changedFor map[string]bool
	reconciled []string
}

func (f *fakeCampaigns) ListCampaigns(context.Context) ([]domain.Campaign, error) {
	return f.campaigns, f.listErr
}

func (f *fakeCampaigns) ReconcileCampaign(_ context.Context, id string) (*port.ReconcileReport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reconciled = append(f.reconciled, id)
	if f.failFor[id] {
		return nil, domain.ErrNetworkUnavailable
	}
	report := &port.ReconcileReport{CampaignID: id, Raised: decimal.Zero}
	if f.changedFor[id] {
		report.Applied = []domain.Settlement{{TxHash: "h"}}
	}
	return report, nil
}

func (f *fakeCampaigns) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.reconciled...)
}

func TestRunOnce(t *testing.T) {
	fake := &fakeCampaigns{
		campaigns: []domain.Campaign{
			{ID: "draft"},
			{ID: "pending", PendingAccount: "GP"},
			{ID: "live", LedgerAccount: "GL"},
			{ID: "broken", LedgerAccount: "GB"},
		},
		failFor:    map[string]bool{"broken": true},
		changedFor: map[string]bool{"live": true},
	}

	res, err := Reconciler{Campaigns: fake}.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Result{Checked: 3, Repaired: 1, Failed: 1}, res)
	assert.Equal(t, []string{"pending", "live", "broken"}, fake.calls())
}

func TestRunOnceListFailure(t *testing.T) {
	fake := &fakeCampaigns{listErr: errors.New("store down")}
	_, err := Reconciler{Campaigns: fake}.RunOnce(context.Background())
	assert.Error(t, err)
}

func TestRunStopsOnCancel(t *testing.T) {
	fake := &fakeCampaigns{campaigns: []domain.Campaign{{ID: "live", LedgerAccount: "GL"}}}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- Reconciler{Campaigns: fake, Interval: time.Millisecond}.Run(ctx) }()

	require.Eventually(t, func() bool { return len(fake.calls()) >= 2 }, time.Second, time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("reconciler did not stop")
	}
}
