package feed

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"Chirper/internal/core/identity"
	"Chirper/internal/core/posts"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error:   errorType,
		Message: message,
	})
}

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	var valErr *posts.ValidationError

	switch {
	case errors.As(err, &valErr):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{
			Error:   "InvalidRequest",
			Message: valErr.Message,
			Field:   valErr.Field,
		})

	case posts.IsNotFound(err):
		writeError(w, http.StatusNotFound, "NotFound", "Author not found")

	case posts.IsUnavailable(err), identity.IsUnavailable(err):
		logger.Error().Err(err).Msg("backend unavailable")
		writeError(w, http.StatusServiceUnavailable, "ServiceUnavailable",
			"Service temporarily unavailable. Please try again later.")

	default:
		logger.Error().Err(err).Msg("unexpected error in feed handler")
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
