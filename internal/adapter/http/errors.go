package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"stellar-fund/internal/core/domain"
)

type errorResponse struct {
	Error          string   `json:"error"`
	ResultCode     string   `json:"resultCode,omitempty"`
	OperationCodes []string `json:"operationCodes,omitempty"`
}

// publicFailures are the server-side errors whose message is safe and
// useful to show a client. Anything else is reported as "internal error".
var publicFailures = []error{
	domain.ErrReconciliationPending,
	domain.ErrNetworkUnavailable,
	domain.ErrStoreUnavailable,
	domain.ErrSourceAccountUnavailable,
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err onto a status code and JSON body. Network rejections
// carry the ledger's result codes verbatim.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	body := errorResponse{Error: err.Error()}

	var rej *domain.RejectionError
	switch {
	case errors.As(err, &rej):
		body.ResultCode = rej.Code
		body.OperationCodes = rej.OperationCodes
	case status == http.StatusInternalServerError:
		body.Error = "internal error"
		for _, public := range publicFailures {
			if errors.Is(err, public) {
				body.Error = public.Error()
				break
			}
		}
	}
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
	h.writeJSON(w, status, body)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into v, answering 400 on failure.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return false
	}
	return true
}
