package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"stellar-fund/internal/core/domain"
	"stellar-fund/internal/core/port"
)

const recentTransactions = 10

// Options tune the orchestrator. Zero values fall back to defaults.
type Options struct {
	// StartingBalance funds every new campaign account.
	StartingBalance decimal.Decimal
	// MaxRetries bounds compare-and-swap attempts per update.
	MaxRetries    uint
	FaucetEnabled bool
	Now           func() time.Time
	NewID         func() string
}

// CampaignUseCase drives the transaction-exchange protocol. It holds no
// campaign state: every operation reloads the campaign from the store, and
// ledger submission always happens before the load, mutate, persist cycle.
type CampaignUseCase struct {
	store  port.CampaignStore
	ledger port.LedgerGateway
	logger *slog.Logger
	opts   Options
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

func NewCampaignUseCase(store port.CampaignStore, ledger port.LedgerGateway, logger *slog.Logger, opts Options) *CampaignUseCase {
	if opts.StartingBalance.IsZero() {
		opts.StartingBalance = decimal.NewFromInt(1)
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = 8
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CampaignUseCase{store: store, ledger: ledger, logger: logger, opts: opts}
}

// CreateCampaign validates the request, builds the creation envelope and
// persists the campaign with an empty ledger account.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*port.CreationEnvelope, error) {
	c, err := domain.NewCampaign(u.opts.NewID(), req.Creator, req.CreatorAccount, req.Goal, req.Deadline, u.now())
	if err != nil {
		return nil, err
	}
	ex := domain.NewExchange(c.ID, domain.ExchangeCreation)

	env, pending, err := u.buildCreation(ctx, c.CreatorAccount)
	if err != nil {
		return nil, err
	}
	if err = c.IssueCreation(pending); err != nil {
		return nil, err
	}
	if err = u.store.Put(ctx, &c); err != nil {
		return nil, fmt.Errorf("persist campaign: %w", err)
	}

	ex.TxHash = env.Hash
	u.advance(&ex, domain.ExchangeEnvelopeIssued)
	return &port.CreationEnvelope{CampaignID: c.ID, Envelope: env}, nil
}

// ReissueCreationEnvelope replaces the pending creation envelope. Envelopes
// built earlier may carry a consumed sequence number or expired bounds. If
// the pending account already exists on the ledger the campaign is marked
// created instead and ErrAlreadyCreated is returned.
func (u *CampaignUseCase) ReissueCreationEnvelope(ctx context.Context, campaignID string) (*port.CreationEnvelope, error) {
	c, err := u.store.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c.LedgerAccount != "" {
		return nil, domain.ErrAlreadyCreated
	}
	// A settled creation whose store write was lost must not be replaced
	// by a fresh pending account.
	if c.PendingAccount != "" {
		created, err := u.findCreation(ctx, c.PendingAccount)
		if err != nil {
			return nil, err
		}
		if created != nil {
			if err := u.completeCreation(ctx, campaignID, created); err != nil {
				return nil, err
			}
			return nil, domain.ErrAlreadyCreated
		}
	}
	env, pending, err := u.buildCreation(ctx, c.CreatorAccount)
	if err != nil {
		return nil, err
	}
	_, err = u.update(ctx, campaignID, func(c *domain.Campaign) (bool, error) {
		return true, c.IssueCreation(pending)
	})
	if err != nil {
		return nil, err
	}
	ex := domain.NewExchange(campaignID, domain.ExchangeCreation)
	ex.TxHash = env.Hash
	u.advance(&ex, domain.ExchangeEnvelopeIssued)
	return &port.CreationEnvelope{CampaignID: campaignID, Envelope: env}, nil
}

func (u *CampaignUseCase) completeCreation(ctx context.Context, campaignID string, created *domain.LedgerPayment) error {
	_, err := u.update(context.WithoutCancel(ctx), campaignID, func(c *domain.Campaign) (bool, error) {
		if c.LedgerAccount != "" {
			return false, nil
		}
		return true, c.MarkCreated(created.To, created.TxHash)
	})
	if err != nil {
		return err
	}
	u.logger.Info("settled creation recorded",
		slog.String("campaign_id", campaignID),
		slog.String("ledger_account", created.To),
		slog.String("tx_hash", created.TxHash),
	)
	return nil
}

func (u *CampaignUseCase) buildCreation(ctx context.Context, creatorAccount string) (domain.Envelope, string, error) {
	pending, err := u.ledger.NewAccountID()
	if err != nil {
		return domain.Envelope{}, "", err
	}
	env, err := u.ledger.BuildCreationEnvelope(ctx, creatorAccount, pending, u.opts.StartingBalance)
	if err != nil {
		return domain.Envelope{}, "", fmt.Errorf("build creation envelope: %w", err)
	}
	return env, pending, nil
}

// FinalizeCreation submits the signed creation envelope. The ledger
// account is taken from the submission result, never from the request.
func (u *CampaignUseCase) FinalizeCreation(ctx context.Context, campaignID, signedEnvelope string) (*port.CreationReceipt, error) {
	c, err := u.store.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	summary, err := u.ledger.DecodeEnvelope(signedEnvelope)
	if err != nil {
		return nil, err
	}
	if c.LedgerAccount != "" {
		if summary.Hash == c.CreationTxID {
			return &port.CreationReceipt{LedgerAccount: c.LedgerAccount, LedgerTxID: c.CreationTxID}, nil
		}
		return nil, domain.ErrAlreadyCreated
	}
	if err = verifyCreation(c, summary); err != nil {
		return nil, err
	}

	ex := domain.ResumeExchange(campaignID, domain.ExchangeCreation, summary.Hash)
	// A dispatched submission outlives the caller.
	ctx = context.WithoutCancel(ctx)
	res, err := u.ledger.Submit(ctx, signedEnvelope)
	if err != nil {
		u.fail(&ex, err)
		return nil, err
	}
	u.advance(&ex, domain.ExchangeSubmitted)

	account := res.CreatedAccount()
	if account == "" {
		err = fmt.Errorf("%w: transaction %s created no account", domain.ErrDestinationUnset, res.LedgerTxID)
		u.fail(&ex, err)
		return nil, err
	}
	updated, err := u.update(ctx, campaignID, func(c *domain.Campaign) (bool, error) {
		if c.LedgerAccount != "" {
			if c.CreationTxID == res.LedgerTxID {
				return false, nil
			}
			return false, domain.ErrAlreadyCreated
		}
		return true, c.MarkCreated(account, res.LedgerTxID)
	})
	if err != nil {
		return nil, u.settledButNotRecorded(&ex, err)
	}
	u.advance(&ex, domain.ExchangeReconciled)
	return &port.CreationReceipt{LedgerAccount: updated.LedgerAccount, LedgerTxID: updated.CreationTxID}, nil
}

// RequestContribution builds an unsigned payment into the campaign account.
func (u *CampaignUseCase) RequestContribution(ctx context.Context, req port.ContributionReq) (*domain.Envelope, error) {
	if err := validContribution(req.ContributorAccount, req.Amount); err != nil {
		return nil, err
	}
	c, err := u.store.Get(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}
	if !c.AcceptsContributions() {
		return nil, domain.ErrCampaignNotFinalized
	}
	env, err := u.ledger.BuildPaymentEnvelope(ctx, req.ContributorAccount, c.LedgerAccount, req.Amount)
	if err != nil {
		return nil, fmt.Errorf("build payment envelope: %w", err)
	}
	ex := domain.NewExchange(c.ID, domain.ExchangeContribution)
	ex.TxHash = env.Hash
	u.advance(&ex, domain.ExchangeEnvelopeIssued)
	return &env, nil
}

// FinalizeContribution submits a signed payment and records it as a
// settlement keyed by its transaction hash, so the same payment is never
// counted twice.
func (u *CampaignUseCase) FinalizeContribution(ctx context.Context, req port.FinalizeContributionReq) (*port.ContributionReceipt, error) {
	if err := validContribution(req.ContributorAccount, req.Amount); err != nil {
		return nil, err
	}
	c, err := u.store.Get(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}
	if !c.AcceptsContributions() {
		return nil, domain.ErrCampaignNotFinalized
	}
	summary, err := u.ledger.DecodeEnvelope(req.SignedEnvelope)
	if err != nil {
		return nil, err
	}
	if err = verifyPayment(c, summary, req.ContributorAccount, req.Amount); err != nil {
		return nil, err
	}
	if c.HasSettlement(domain.SettlementKey(summary.Hash, 0)) {
		return &port.ContributionReceipt{LedgerTxID: summary.Hash, Raised: c.Raised}, nil
	}

	ex := domain.ResumeExchange(c.ID, domain.ExchangeContribution, summary.Hash)
	ctx = context.WithoutCancel(ctx)
	res, err := u.ledger.Submit(ctx, req.SignedEnvelope)
	if err != nil {
		u.fail(&ex, err)
		return nil, err
	}
	u.advance(&ex, domain.ExchangeSubmitted)

	settlement := domain.Settlement{
		TxHash:      res.LedgerTxID,
		OpIndex:     0,
		Contributor: req.ContributorAccount,
		Amount:      req.Amount,
		SettledAt:   u.now(),
	}
	updated, err := u.update(ctx, c.ID, func(c *domain.Campaign) (bool, error) {
		return c.ApplySettlement(settlement)
	})
	if err != nil {
		return nil, u.settledButNotRecorded(&ex, err)
	}
	u.advance(&ex, domain.ExchangeReconciled)
	return &port.ContributionReceipt{LedgerTxID: res.LedgerTxID, Raised: updated.Raised}, nil
}

func (u *CampaignUseCase) GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	c, err := u.store.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (u *CampaignUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return u.store.List(ctx)
}

// CampaignLedger returns the live balances and latest transactions of the
// campaign account.
func (u *CampaignUseCase) CampaignLedger(ctx context.Context, campaignID string) (*port.LedgerOverview, error) {
	c, err := u.store.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c.LedgerAccount == "" {
		return nil, domain.ErrCampaignNotFinalized
	}
	snap, err := u.ledger.LoadAccount(ctx, c.LedgerAccount)
	if err != nil {
		return nil, err
	}
	txs, err := u.ledger.RecentTransactions(ctx, c.LedgerAccount, recentTransactions)
	if err != nil {
		return nil, err
	}
	return &port.LedgerOverview{Account: snap, Transactions: txs}, nil
}

func (u *CampaignUseCase) FundAccount(ctx context.Context, accountID string) (*domain.LedgerTransaction, error) {
	if !u.opts.FaucetEnabled {
		return nil, domain.ErrFaucetDisabled
	}
	tx, err := u.ledger.Fund(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// update loads the campaign, applies mutate and writes it back, retrying
// the whole cycle on version conflicts. When mutate reports no change the
// campaign is returned without a write.
func (u *CampaignUseCase) update(ctx context.Context, campaignID string, mutate func(*domain.Campaign) (bool, error)) (domain.Campaign, error) {
	op := func() (domain.Campaign, error) {
		c, err := u.store.Get(ctx, campaignID)
		if err != nil {
			return domain.Campaign{}, backoff.Permanent(err)
		}
		changed, err := mutate(&c)
		if err != nil {
			return domain.Campaign{}, backoff.Permanent(err)
		}
		if !changed {
			return c, nil
		}
		c.UpdatedAt = u.now()
		if err = u.store.Put(ctx, &c); err != nil {
			if errors.Is(err, domain.ErrVersionConflict) {
				return domain.Campaign{}, err
			}
			return domain.Campaign{}, backoff.Permanent(err)
		}
		return c, nil
	}
	return backoff.Retry(ctx, op,
		backoff.WithBackOff(newConflictBackOff()),
		backoff.WithMaxTries(u.opts.MaxRetries),
	)
}

func newConflictBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 5 * time.Millisecond
	b.MaxInterval = 250 * time.Millisecond
	b.Reset()
	return b
}

// settledButNotRecorded handles a store failure after the ledger accepted
// the transaction. The money moved, so the caller gets a reconciliation
// pending error and the sweep is left to repair the record.
func (u *CampaignUseCase) settledButNotRecorded(ex *domain.Exchange, err error) error {
	if errors.Is(err, domain.ErrAlreadyCreated) {
		u.fail(ex, err)
		return err
	}
	u.logger.Error("ledger settled but campaign not updated",
		slog.String("campaign_id", ex.CampaignID),
		slog.String("kind", string(ex.Kind)),
		slog.String("tx_hash", ex.TxHash),
		slog.Any("error", err),
	)
	u.fail(ex, err)
	return fmt.Errorf("%w: %v", domain.ErrReconciliationPending, err)
}

func (u *CampaignUseCase) advance(ex *domain.Exchange, to domain.ExchangeState) {
	if err := ex.Advance(to); err != nil {
		u.logger.Warn("exchange transition", slog.Any("error", err))
		return
	}
	u.logger.Debug("exchange",
		slog.String("campaign_id", ex.CampaignID),
		slog.String("kind", string(ex.Kind)),
		slog.String("state", string(ex.State)),
		slog.String("tx_hash", ex.TxHash),
	)
}

func (u *CampaignUseCase) fail(ex *domain.Exchange, err error) {
	ex.Fail(err.Error())
	u.logger.Warn("exchange failed",
		slog.String("campaign_id", ex.CampaignID),
		slog.String("kind", string(ex.Kind)),
		slog.String("tx_hash", ex.TxHash),
		slog.String("reason", ex.Reason),
	)
}

func (u *CampaignUseCase) now() time.Time {
	return u.opts.Now().UTC()
}

func validContribution(contributor string, amount decimal.Decimal) error {
	if contributor == "" {
		return domain.ErrInvalidAccount
	}
	if !domain.ValidAmount(amount) {
		return domain.ErrInvalidAmount
	}
	return nil
}

// verifyCreation requires a signed envelope creating the pending account,
// funded by the creator.
func verifyCreation(c domain.Campaign, s domain.EnvelopeSummary) error {
	if s.Signatures == 0 {
		return fmt.Errorf("%w: envelope is not signed", domain.ErrMalformedEnvelope)
	}
	if c.PendingAccount == "" {
		return fmt.Errorf("%w: no creation envelope was issued", domain.ErrEnvelopeMismatch)
	}
	for _, op := range s.Operations {
		if op.Type == domain.OpCreateAccount && op.Destination == c.PendingAccount && op.Source == c.CreatorAccount {
			return nil
		}
	}
	return fmt.Errorf("%w: envelope does not create %s from %s", domain.ErrEnvelopeMismatch, c.PendingAccount, c.CreatorAccount)
}

// verifyPayment requires exactly one native payment of the declared amount
// from the declared contributor into the campaign account.
func verifyPayment(c domain.Campaign, s domain.EnvelopeSummary, contributor string, amount decimal.Decimal) error {
	if s.Signatures == 0 {
		return fmt.Errorf("%w: envelope is not signed", domain.ErrMalformedEnvelope)
	}
	if len(s.Operations) != 1 {
		return fmt.Errorf("%w: expected one operation, got %d", domain.ErrEnvelopeMismatch, len(s.Operations))
	}
	op := s.Operations[0]
	switch {
	case op.Type != domain.OpPayment || !op.Native:
		return fmt.Errorf("%w: expected a native payment", domain.ErrEnvelopeMismatch)
	case op.Destination != c.LedgerAccount:
		return fmt.Errorf("%w: payment destination %s is not the campaign account", domain.ErrEnvelopeMismatch, op.Destination)
	case op.Source != contributor:
		return fmt.Errorf("%w: payment source %s is not the contributor", domain.ErrEnvelopeMismatch, op.Source)
	case !op.Amount.Equal(amount):
		return fmt.Errorf("%w: payment amount %s, declared %s", domain.ErrEnvelopeMismatch, op.Amount, amount)
	}
	return nil
}
