package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"explorer/internal/domain"
	"explorer/internal/httputil"
)

const (
	msgValidation = "Validation error"
	msgNotFound   = "Resource not found"
)

// handleError maps a service error onto the response envelope. Validation
// messages are returned verbatim; anything else is logged and replaced by
// the route's generic message.
func handleError(w http.ResponseWriter, logger *slog.Logger, err error, fallback string) {
	var (
		validationErr *domain.ValidationError
		httpErr       domain.HTTPError
	)

	switch {
	case errors.As(err, &validationErr):
		httputil.RespondError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, msgValidation)
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, "Unauthorized")
	default:
		status := http.StatusInternalServerError
		if errors.As(err, &httpErr) {
			status = httpErr.StatusCode()
		}
		logger.Error(fallback, "status", status, "error", err)
		httputil.RespondError(w, status, fallback)
	}
}
