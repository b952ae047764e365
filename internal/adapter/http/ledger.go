package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) handleCampaignLedger(w http.ResponseWriter, r *http.Request) {
	overview, err := h.svc.CampaignLedger(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newLedgerResponse(overview))
}

// handleFundAccount asks the test network faucet to fund an existing
// client-held address. It answers 404 unless the faucet is enabled.
func (h *Handler) handleFundAccount(w http.ResponseWriter, r *http.Request) {
	tx, err := h.svc.FundAccount(r.Context(), chi.URLParam(r, "account"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, fundResponse{LedgerTxID: tx.Hash, Ledger: tx.Ledger})
}
