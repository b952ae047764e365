package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"stellar-fund/internal/core/port"
)

// handleRequestContribution returns an unsigned payment envelope. The
// campaign is not changed until the signed envelope comes back.
func (h *Handler) handleRequestContribution(w http.ResponseWriter, r *http.Request) {
	var req contributionRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	env, err := h.svc.RequestContribution(r.Context(), port.ContributionReq{
		CampaignID:         chi.URLParam(r, "id"),
		ContributorAccount: req.ContributorAccount,
		Amount:             req.Amount,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newEnvelopeResponse("", *env))
}

func (h *Handler) handleFinalizeContribution(w http.ResponseWriter, r *http.Request) {
	var req finalizeContributionRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	receipt, err := h.svc.FinalizeContribution(r.Context(), port.FinalizeContributionReq{
		CampaignID:         chi.URLParam(r, "id"),
		SignedEnvelope:     req.SignedEnvelope,
		ContributorAccount: req.ContributorAccount,
		Amount:             req.Amount,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, contributionReceiptResponse{
		LedgerTxID: receipt.LedgerTxID,
		Raised:     receipt.Raised,
	})
}
