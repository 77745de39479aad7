package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"medequip-backend/internal/domain"
	"medequip-backend/internal/logger"
	"medequip-backend/internal/service"
)

type errorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Remaining *int32 `json:"remaining,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps the domain taxonomy onto HTTP statuses. The caller-facing
// layer shows the code and detail; the core never formats prose for it.
func writeError(w http.ResponseWriter, err error) {
	var exceeds *domain.ExceedsRemainingError
	switch {
	case errors.As(err, &exceeds):
		writeJSON(w, http.StatusConflict, errorResponse{Error: errorBody{
			Code:      "exceeds_remaining",
			Message:   exceeds.Error(),
			Remaining: &exceeds.Remaining,
		}})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: errorBody{Code: "not_found", Message: err.Error()}})
	case errors.Is(err, domain.ErrDuplicateEquipment):
		writeJSON(w, http.StatusConflict, errorResponse{Error: errorBody{Code: "duplicate_id", Message: err.Error()}})
	case errors.Is(err, domain.ErrInvalidQuantity):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{Code: "invalid_quantity", Message: err.Error()}})
	case errors.Is(err, domain.ErrInsufficientStock):
		writeJSON(w, http.StatusConflict, errorResponse{Error: errorBody{Code: "insufficient_stock", Message: err.Error()}})
	case errors.Is(err, domain.ErrLoanClosed):
		writeJSON(w, http.StatusConflict, errorResponse{Error: errorBody{Code: "already_closed", Message: err.Error()}})
	case errors.Is(err, domain.ErrBusy):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: errorBody{Code: "busy", Message: err.Error()}})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: errorBody{Code: "invalid_credentials", Message: err.Error()}})
	default:
		logger.Error("Request failed with store error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errorBody{Code: "store_failure", Message: "internal error"}})
	}
}

func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{Code: "bad_request", Message: message}})
}
