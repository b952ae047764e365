package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"stellar-fund/internal/core/port"
)

// handleCreateCampaign persists a draft campaign and answers 201 with the
// unsigned creation envelope the creator must sign.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	out, err := h.svc.CreateCampaign(r.Context(), port.CreateCampaignReq{
		Creator:        req.Creator,
		Goal:           req.Goal,
		Deadline:       req.Deadline,
		CreatorAccount: req.CreatorAccount,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, newEnvelopeResponse(out.CampaignID, out.Envelope))
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]campaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, newCampaignResponse(c))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(*c))
}

// handleReissueEnvelope returns a fresh creation envelope for a campaign
// whose previous envelope was rejected or expired.
func (h *Handler) handleReissueEnvelope(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.ReissueCreationEnvelope(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newEnvelopeResponse(out.CampaignID, out.Envelope))
}

func (h *Handler) handleFinalizeCreation(w http.ResponseWriter, r *http.Request) {
	var req finalizeCreationRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	receipt, err := h.svc.FinalizeCreation(r.Context(), chi.URLParam(r, "id"), req.SignedEnvelope)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, creationReceiptResponse{
		LedgerAccount: receipt.LedgerAccount,
		LedgerTxID:    receipt.LedgerTxID,
	})
}

func (h *Handler) handleReconcile(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.ReconcileCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newReconcileResponse(report))
}
