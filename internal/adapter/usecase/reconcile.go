package usecase

import (
	"context"
	"errors"
	"log/slog"

	"stellar-fund/internal/core/domain"
	"stellar-fund/internal/core/port"
)

// ReconcileCampaign replays confirmed ledger history into the campaign
// record. It completes a creation whose store write was lost, applies every
// settled payment into the campaign account that has no settlement yet, and
// repairs a drifted raised total. Running it twice changes nothing the
// second time.
func (u *CampaignUseCase) ReconcileCampaign(ctx context.Context, campaignID string) (*port.ReconcileReport, error) {
	c, err := u.store.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	var created *domain.LedgerPayment
	account := c.LedgerAccount
	if account == "" && c.PendingAccount != "" {
		created, err = u.findCreation(ctx, c.PendingAccount)
		if err != nil {
			return nil, err
		}
		if created != nil {
			account = created.To
		}
	}

	var settled []domain.Settlement
	if account != "" {
		history, err := u.ledger.Payments(ctx, account)
		if err != nil && !errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}
		settled = settlementsInto(account, history)
	}

	report := &port.ReconcileReport{CampaignID: campaignID}
	updated, err := u.update(context.WithoutCancel(ctx), campaignID, func(c *domain.Campaign) (bool, error) {
		*report = port.ReconcileReport{CampaignID: campaignID}
		if created != nil && c.LedgerAccount == "" {
			if err := c.MarkCreated(created.To, created.TxHash); err != nil {
				return false, err
			}
			report.Created = true
		}
		if c.LedgerAccount == account {
			for _, s := range settled {
				applied, err := c.ApplySettlement(s)
				if err != nil {
					u.logger.Warn("skipping ledger payment",
						slog.String("campaign_id", campaignID),
						slog.String("tx_hash", s.TxHash),
						slog.Any("error", err),
					)
					continue
				}
				if applied {
					report.Applied = append(report.Applied, s)
				}
			}
		}
		if c.Audit() != nil {
			c.Raised = c.RecomputeRaised()
			report.RepairedDrift = true
		}
		return report.Changed(), nil
	})
	if err != nil {
		return nil, err
	}
	report.Raised = updated.Raised

	if report.Changed() {
		u.logger.Info("campaign reconciled",
			slog.String("campaign_id", campaignID),
			slog.Bool("created", report.Created),
			slog.Int("applied", len(report.Applied)),
			slog.Bool("repaired_drift", report.RepairedDrift),
			slog.String("raised", report.Raised.String()),
		)
	}
	return report, nil
}

// findCreation looks for the create_account that funded pending. An
// account the network does not know yet simply was not created.
func (u *CampaignUseCase) findCreation(ctx context.Context, pending string) (*domain.LedgerPayment, error) {
	history, err := u.ledger.Payments(ctx, pending)
	if errors.Is(err, domain.ErrAccountNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	for _, p := range history {
		if p.Type == domain.OpCreateAccount && p.To == pending && p.Succeeded {
			return &p, nil
		}
	}
	return nil, nil
}

func settlementsInto(account string, history []domain.LedgerPayment) []domain.Settlement {
	var out []domain.Settlement
	for _, p := range history {
		if p.Type != domain.OpPayment || !p.Succeeded || !p.Native || p.To != account {
			continue
		}
		out = append(out, domain.Settlement{
			TxHash:      p.TxHash,
			OpIndex:     p.OpIndex,
			Contributor: p.From,
			Amount:      p.Amount,
			SettledAt:   p.ClosedAt,
		})
	}
	return out
}
