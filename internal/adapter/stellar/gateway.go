// Package stellar implements port.LedgerGateway against a Horizon server.
package stellar

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stellar/go/clients/horizonclient"
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/protocols/horizon"
	"github.com/stellar/go/txnbuild"
	"golang.org/x/time/rate"

	"stellar-fund/internal/config/configs"
	"stellar-fund/internal/core/domain"
)

const paymentsPageSize = 200

// Gateway builds, decodes and submits transaction envelopes and reads
// account history. It holds no keys; the only keypair it ever creates is
// discarded after its address is taken.
type Gateway struct {
	client     horizonclient.ClientInterface
	passphrase string
	ttl        time.Duration
	baseFee    int64
	limiter    *rate.Limiter
	now        func() time.Time
}

// NewClient returns a Horizon client whose every round trip is bounded by
// cfg.RequestTimeout.
func NewClient(cfg configs.Stellar) *horizonclient.Client {
	return &horizonclient.Client{
		HorizonURL: cfg.HorizonURL,
		HTTP:       &http.Client{Timeout: cfg.RequestTimeout},
		AppName:    "stellar-fund",
	}
}

// New wraps client. Outbound calls are throttled to cfg.RateLimit per
// second; a non-positive limit disables throttling.
func New(client horizonclient.ClientInterface, cfg configs.Stellar) *Gateway {
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 1
	}
	return &Gateway{
		client:     client,
		passphrase: cfg.NetworkPassphrase,
		ttl:        cfg.EnvelopeTTL,
		baseFee:    txnbuild.MinBaseFee,
		limiter:    rate.NewLimiter(limit, burst),
		now:        time.Now,
	}
}

// Ping checks that Horizon answers. main calls it once at startup.
func (g *Gateway) Ping(ctx context.Context) error {
	if err := g.wait(ctx); err != nil {
		return err
	}
	if _, err := g.client.Root(); err != nil {
		return networkError(err)
	}
	return nil
}

func (g *Gateway) NewAccountID() (string, error) {
	kp, err := keypair.Random()
	if err != nil {
		return "", fmt.Errorf("generate account: %w", err)
	}
	return kp.Address(), nil
}

func (g *Gateway) LoadAccount(ctx context.Context, accountID string) (domain.AccountSnapshot, error) {
	acc, err := g.account(ctx, accountID)
	if err != nil {
		return domain.AccountSnapshot{}, err
	}
	snap := domain.AccountSnapshot{AccountID: acc.AccountID, Sequence: acc.Sequence}
	for _, b := range acc.Balances {
		amt, err := decimal.NewFromString(b.Balance)
		if err != nil {
			return domain.AccountSnapshot{}, fmt.Errorf("decode balance %q: %w", b.Balance, err)
		}
		asset := "native"
		if b.Asset.Type != "native" {
			asset = b.Asset.Code + ":" + b.Asset.Issuer
		}
		snap.Balances = append(snap.Balances, domain.Balance{Asset: asset, Amount: amt})
	}
	return snap, nil
}

func (g *Gateway) BuildCreationEnvelope(ctx context.Context, funderID, newAccountID string, startingBalance decimal.Decimal) (domain.Envelope, error) {
	if newAccountID == "" {
		return domain.Envelope{}, domain.ErrDestinationUnset
	}
	if !validAddress(newAccountID) || !validAddress(funderID) {
		return domain.Envelope{}, domain.ErrInvalidAccount
	}
	if !domain.ValidAmount(startingBalance) {
		return domain.Envelope{}, domain.ErrInvalidAmount
	}
	acc, err := g.account(ctx, funderID)
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("%w: %s: %v", domain.ErrSourceAccountUnavailable, funderID, err)
	}
	return g.build(&acc, &txnbuild.CreateAccount{
		Destination: newAccountID,
		Amount:      startingBalance.String(),
	})
}

func (g *Gateway) BuildPaymentEnvelope(ctx context.Context, sourceID, destinationID string, amount decimal.Decimal) (domain.Envelope, error) {
	if !domain.ValidAmount(amount) {
		return domain.Envelope{}, domain.ErrInvalidAmount
	}
	if destinationID == "" {
		return domain.Envelope{}, domain.ErrDestinationUnset
	}
	if !validAddress(destinationID) || !validAddress(sourceID) {
		return domain.Envelope{}, domain.ErrInvalidAccount
	}
	acc, err := g.account(ctx, sourceID)
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("%w: %s: %v", domain.ErrSourceAccountUnavailable, sourceID, err)
	}
	return g.build(&acc, &txnbuild.Payment{
		Destination: destinationID,
		Amount:      amount.String(),
		Asset:       txnbuild.NativeAsset{},
	})
}

// build increments the source's sequence number and bounds the envelope's
// validity to now+ttl so an unsubmitted envelope cannot be replayed later.
func (g *Gateway) build(source txnbuild.Account, op txnbuild.Operation) (domain.Envelope, error) {
	expires := g.now().Add(g.ttl).UTC()
	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        source,
		IncrementSequenceNum: true,
		Operations:           []txnbuild.Operation{op},
		BaseFee:              g.baseFee,
		Preconditions: txnbuild.Preconditions{
			TimeBounds: txnbuild.NewTimebounds(0, expires.Unix()),
		},
	})
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("build transaction: %w", err)
	}
	xdr, err := tx.Base64()
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("encode transaction: %w", err)
	}
	hash, err := tx.HashHex(g.passphrase)
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("hash transaction: %w", err)
	}
	return domain.Envelope{XDR: xdr, Hash: hash, ExpiresAt: time.Unix(expires.Unix(), 0).UTC()}, nil
}

func (g *Gateway) DecodeEnvelope(encoded string) (domain.EnvelopeSummary, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return domain.EnvelopeSummary{}, fmt.Errorf("%w: envelope is empty", domain.ErrMalformedEnvelope)
	}
	gtx, err := txnbuild.TransactionFromXDR(encoded)
	if err != nil {
		return domain.EnvelopeSummary{}, fmt.Errorf("%w: %v", domain.ErrMalformedEnvelope, err)
	}

	var (
		tx   *txnbuild.Transaction
		hash string
	)
	if fb, ok := gtx.FeeBump(); ok {
		tx = fb.InnerTransaction()
		hash, err = fb.HashHex(g.passphrase)
	} else if plain, ok := gtx.Transaction(); ok {
		tx = plain
		hash, err = plain.HashHex(g.passphrase)
	} else {
		return domain.EnvelopeSummary{}, fmt.Errorf("%w: unsupported envelope type", domain.ErrMalformedEnvelope)
	}
	if err != nil {
		return domain.EnvelopeSummary{}, fmt.Errorf("%w: %v", domain.ErrMalformedEnvelope, err)
	}

	summary := domain.EnvelopeSummary{
		Hash:       hash,
		Source:     tx.SourceAccount().AccountID,
		Signatures: len(tx.Signatures()),
	}
	for _, op := range tx.Operations() {
		decoded, err := decodeOperation(op, summary.Source)
		if err != nil {
			return domain.EnvelopeSummary{}, fmt.Errorf("%w: %v", domain.ErrMalformedEnvelope, err)
		}
		summary.Operations = append(summary.Operations, decoded)
	}
	return summary, nil
}

func decodeOperation(op txnbuild.Operation, txSource string) (domain.Operation, error) {
	var (
		out = domain.Operation{Type: domain.OpOther, Source: txSource}
		amt string
	)
	switch o := op.(type) {
	case *txnbuild.CreateAccount:
		out.Type = domain.OpCreateAccount
		out.Destination = o.Destination
		out.Native = true
		out.Source = orDefault(o.SourceAccount, txSource)
		amt = o.Amount
	case *txnbuild.Payment:
		out.Type = domain.OpPayment
		out.Destination = o.Destination
		out.Native = o.Asset != nil && o.Asset.IsNative()
		out.Source = orDefault(o.SourceAccount, txSource)
		amt = o.Amount
	default:
		return out, nil
	}
	v, err := decimal.NewFromString(amt)
	if err != nil {
		return out, fmt.Errorf("decode amount %q: %w", amt, err)
	}
	out.Amount = v
	return out, nil
}

// Submit sends a signed envelope. A tx_bad_seq answer means the sequence
// number was consumed, possibly by this very envelope; the hash is looked
// up in history and a successful match is reported as already applied.
func (g *Gateway) Submit(ctx context.Context, signed string) (domain.SubmissionResult, error) {
	summary, err := g.DecodeEnvelope(signed)
	if err != nil {
		return domain.SubmissionResult{}, err
	}
	if err = g.wait(ctx); err != nil {
		return domain.SubmissionResult{}, err
	}
	tx, err := g.client.SubmitTransactionXDR(strings.TrimSpace(signed))
	if err == nil {
		return g.result(tx, summary, false), nil
	}

	rej, ok := rejection(err)
	if !ok {
		return domain.SubmissionResult{}, networkError(err)
	}
	if rej.Code == codeBadSeq {
		applied, found, lookupErr := g.lookup(ctx, summary.Hash)
		if lookupErr == nil && found {
			return g.result(applied, summary, true), nil
		}
	}
	return domain.SubmissionResult{}, rej
}

func (g *Gateway) lookup(ctx context.Context, hash string) (horizon.Transaction, bool, error) {
	if err := g.wait(ctx); err != nil {
		return horizon.Transaction{}, false, err
	}
	tx, err := g.client.TransactionDetail(hash)
	if err != nil {
		if isNotFound(err) {
			return horizon.Transaction{}, false, nil
		}
		return horizon.Transaction{}, false, networkError(err)
	}
	return tx, tx.Successful, nil
}

// result reads the applied operations from the envelope the network
// reports, falling back to the submitted one when Horizon omits it.
func (g *Gateway) result(tx horizon.Transaction, submitted domain.EnvelopeSummary, already bool) domain.SubmissionResult {
	ops := submitted.Operations
	if tx.EnvelopeXdr != "" {
		if applied, err := g.DecodeEnvelope(tx.EnvelopeXdr); err == nil {
			ops = applied.Operations
		}
	}
	id := tx.Hash
	if id == "" {
		id = submitted.Hash
	}
	return domain.SubmissionResult{
		LedgerTxID:        id,
		Ledger:            tx.Ledger,
		AppliedOperations: ops,
		AlreadyApplied:    already,
	}
}

func (g *Gateway) Payments(ctx context.Context, accountID string) ([]domain.LedgerPayment, error) {
	var (
		out    []domain.LedgerPayment
		cursor string
	)
	for {
		if err := g.wait(ctx); err != nil {
			return nil, err
		}
		page, err := g.client.Payments(horizonclient.OperationRequest{
			ForAccount: accountID,
			Order:      horizonclient.OrderAsc,
			Cursor:     cursor,
			Limit:      paymentsPageSize,
		})
		if err != nil {
			if isNotFound(err) {
				return nil, domain.ErrAccountNotFound
			}
			return nil, networkError(err)
		}
		records := page.Embedded.Records
		for _, rec := range records {
			p, ok, err := toPayment(rec)
			if err != nil {
				return nil, err
			}
			if ok {
				out = append(out, p)
			}
			cursor = rec.PagingToken()
		}
		if len(records) < paymentsPageSize {
			return out, nil
		}
	}
}

func (g *Gateway) RecentTransactions(ctx context.Context, accountID string, limit int) ([]domain.LedgerTransaction, error) {
	if limit <= 0 {
		limit = 10
	}
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	page, err := g.client.Transactions(horizonclient.TransactionRequest{
		ForAccount: accountID,
		Order:      horizonclient.OrderDesc,
		Limit:      uint(limit),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, networkError(err)
	}
	out := make([]domain.LedgerTransaction, 0, len(page.Embedded.Records))
	for _, tx := range page.Embedded.Records {
		out = append(out, toTransaction(tx))
	}
	return out, nil
}

func (g *Gateway) Fund(ctx context.Context, accountID string) (domain.LedgerTransaction, error) {
	if !validAddress(accountID) {
		return domain.LedgerTransaction{}, domain.ErrInvalidAccount
	}
	if err := g.wait(ctx); err != nil {
		return domain.LedgerTransaction{}, err
	}
	tx, err := g.client.Fund(accountID)
	if err != nil {
		if rej, ok := rejection(err); ok {
			return domain.LedgerTransaction{}, rej
		}
		return domain.LedgerTransaction{}, networkError(err)
	}
	return toTransaction(tx), nil
}

func (g *Gateway) account(ctx context.Context, accountID string) (horizon.Account, error) {
	if err := g.wait(ctx); err != nil {
		return horizon.Account{}, err
	}
	acc, err := g.client.AccountDetail(horizonclient.AccountRequest{AccountID: accountID})
	if err != nil {
		if isNotFound(err) {
			return horizon.Account{}, domain.ErrAccountNotFound
		}
		return horizon.Account{}, networkError(err)
	}
	return acc, nil
}

func (g *Gateway) wait(ctx context.Context) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNetworkUnavailable, err)
	}
	return nil
}

func toTransaction(tx horizon.Transaction) domain.LedgerTransaction {
	return domain.LedgerTransaction{
		Hash:           tx.Hash,
		Ledger:         tx.Ledger,
		CreatedAt:      tx.LedgerCloseTime.UTC(),
		Successful:     tx.Successful,
		OperationCount: tx.OperationCount,
	}
}

func validAddress(id string) bool {
	_, err := keypair.ParseAddress(id)
	return err == nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
