package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fakoredeDamilola/mongodb-eduhub-project/internal/storeerr"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// statusFor maps the store error kinds onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, storeerr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storeerr.ErrIndexConflict):
		return http.StatusConflict
	case errors.Is(err, storeerr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, storeerr.ErrConnectivity):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
