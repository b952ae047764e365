// Package worker runs background jobs against the campaign use case.
package worker

import (
	"context"
	"log/slog"
	"time"

	"stellar-fund/internal/core/domain"
	"stellar-fund/internal/core/port"
)

// Campaigns is the part of port.CampaignUseCase the reconciler needs.
type Campaigns interface {
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	ReconcileCampaign(ctx context.Context, campaignID string) (*port.ReconcileReport, error)
}

// Reconciler sweeps every campaign that has a ledger or pending account
// and replays its ledger history. It is the recovery path for settlements
// whose store write failed.
type Reconciler struct {
	Campaigns Campaigns
	Interval  time.Duration
	Logger    *slog.Logger
}

// Result counts the outcome of one sweep.
type Result struct {
	Checked  int
	Repaired int
	Failed   int
}

// RunOnce reconciles each eligible campaign. A failure on one campaign is
// logged and does not stop the sweep; only a failed listing is returned.
func (r Reconciler) RunOnce(ctx context.Context) (Result, error) {
	logger := r.logger()
	campaigns, err := r.Campaigns.ListCampaigns(ctx)
	if err != nil {
		logger.Error("reconcile sweep failed", slog.Any("error", err))
		return Result{}, err
	}

	var res Result
	for _, c := range campaigns {
		if c.LedgerAccount == "" && c.PendingAccount == "" {
			continue
		}
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		res.Checked++
		report, err := r.Campaigns.ReconcileCampaign(ctx, c.ID)
		if err != nil {
			res.Failed++
			logger.Warn("campaign reconciliation failed",
				slog.String("campaign_id", c.ID),
				slog.Any("error", err),
			)
			continue
		}
		if report.Changed() {
			res.Repaired++
		}
	}
	if res.Repaired > 0 || res.Failed > 0 {
		logger.Info("reconcile sweep completed",
			slog.Int("checked", res.Checked),
			slog.Int("repaired", res.Repaired),
			slog.Int("failed", res.Failed),
		)
	}
	return res, nil
}

// Run sweeps immediately and then on every tick until ctx is done.
func (r Reconciler) Run(ctx context.Context) error {
	interval := r.Interval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.logger().Info("reconciler started", slog.String("interval", interval.String()))
	for {
		// Listing failures are transient; the next tick tries again.
		_, _ = r.RunOnce(ctx)
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (r Reconciler) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}
