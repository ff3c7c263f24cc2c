package api

import (
	"encoding/json"
	"errors"
	"net/http"

	apperr "groomstation/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps the core error taxonomy onto HTTP statuses. Conflict
// outcomes are expected contention, not bugs, and are surfaced verbatim so
// the caller can re-fetch availability.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperr.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperr.ErrInvalidSelection), errors.Is(err, apperr.ErrNoDraft):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, apperr.ErrSlotUnavailable),
		errors.Is(err, apperr.ErrBookingConflict),
		errors.Is(err, apperr.ErrNotCancellable),
		errors.Is(err, apperr.ErrNotCompletable):
		status = http.StatusConflict
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperr.ErrForbidden):
		status = http.StatusForbidden
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}
	writeJSON(w, status, map[string]string{"error": message})
}
