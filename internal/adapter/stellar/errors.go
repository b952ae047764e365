package stellar

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/stellar/go/clients/horizonclient"
	"github.com/stellar/go/protocols/horizon/operations"

	"stellar-fund/internal/core/domain"
)

const (
	codeBadSeq             = "tx_bad_seq"
	codeFeeBumpInnerFailed = "tx_fee_bump_inner_failed"
)

// rejection converts a Horizon problem response into a RejectionError.
// Gateway-side failures (timeouts, overload) are not rejections: the
// transaction may still apply, so they are reported as unavailable.
func rejection(err error) (*domain.RejectionError, bool) {
	var hErr *horizonclient.Error
	if !errors.As(err, &hErr) {
		return nil, false
	}
	switch hErr.Problem.Status {
	case http.StatusGatewayTimeout, http.StatusServiceUnavailable, http.StatusBadGateway,
		http.StatusTooManyRequests, http.StatusInternalServerError:
		return nil, false
	}
	codes, codesErr := hErr.ResultCodes()
	if codesErr != nil || codes == nil {
		code := hErr.Problem.Title
		if code == "" {
			code = fmt.Sprintf("http_%d", hErr.Problem.Status)
		}
		return &domain.RejectionError{Code: code}, true
	}
	code := codes.TransactionCode
	if code == codeFeeBumpInnerFailed && codes.InnerTransactionCode != "" {
		code = codes.InnerTransactionCode
	}
	return &domain.RejectionError{Code: code, OperationCodes: codes.OperationCodes}, true
}

func isNotFound(err error) bool {
	var hErr *horizonclient.Error
	return errors.As(err, &hErr) && hErr.Problem.Status == http.StatusNotFound
}

func networkError(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrNetworkUnavailable, err)
}

// opIndex recovers the zero-based operation position from a Horizon
// operation id. The low 12 bits of the id hold the one-based operation
// order within its transaction.
func opIndex(id string) (int, error) {
	v, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("decode operation id %q: %w", id, err)
	}
	order := int(v & 0xFFF)
	if order == 0 {
		return 0, fmt.Errorf("operation id %q has no operation order", id)
	}
	return order - 1, nil
}

// toPayment keeps value transfers. Other operation kinds that can appear
// in a payments listing (path payments, merges) are skipped.
func toPayment(rec operations.Operation) (domain.LedgerPayment, bool, error) {
	switch rec.(type) {
	case operations.Payment, operations.CreateAccount:
	default:
		return domain.LedgerPayment{}, false, nil
	}
	idx, err := opIndex(rec.GetID())
	if err != nil {
		return domain.LedgerPayment{}, false, err
	}
	switch op := rec.(type) {
	case operations.Payment:
		amt, err := decimal.NewFromString(op.Amount)
		if err != nil {
			return domain.LedgerPayment{}, false, fmt.Errorf("decode payment amount %q: %w", op.Amount, err)
		}
		return domain.LedgerPayment{
			Type:      domain.OpPayment,
			TxHash:    op.TransactionHash,
			OpIndex:   idx,
			From:      op.From,
			To:        op.To,
			Amount:    amt,
			Native:    op.Asset.Type == "native",
			Succeeded: op.TransactionSuccessful,
			ClosedAt:  op.LedgerCloseTime.UTC(),
		}, true, nil
	case operations.CreateAccount:
		amt, err := decimal.NewFromString(op.StartingBalance)
		if err != nil {
			return domain.LedgerPayment{}, false, fmt.Errorf("decode starting balance %q: %w", op.StartingBalance, err)
		}
		return domain.LedgerPayment{
			Type:      domain.OpCreateAccount,
			TxHash:    op.TransactionHash,
			OpIndex:   idx,
			From:      op.Funder,
			To:        op.Account,
			Amount:    amt,
			Native:    true,
			Succeeded: op.TransactionSuccessful,
			ClosedAt:  op.LedgerCloseTime.UTC(),
		}, true, nil
	}
	return domain.LedgerPayment{}, false, nil
}
