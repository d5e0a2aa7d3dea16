package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"lendify-backend/internal/domain"
	"lendify-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeClientError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps domain sentinels onto the error taxonomy:
// missing entities 404, rule conflicts and bad input 400, bad
// credentials 401, everything else a terse 500 with the detail logged.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrToolNotFound),
		errors.Is(err, domain.ErrCheckoutNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		writeClientError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrToolNotAvailable),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrInvalidAction):
		writeClientError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeClientError(w, http.StatusUnauthorized, err.Error())
	default:
		logger.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeClientError(w, http.StatusInternalServerError, "Internal server error")
	}
}
