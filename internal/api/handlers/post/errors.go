package post

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
	writeFieldError(w, statusCode, errorType, message, "")
}

// writeFieldError writes a JSON error response carrying the offending field
func writeFieldError(w http.ResponseWriter, statusCode int, errorType, message, field string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error:   errorType,
		Message: message,
		Field:   field,
	})
}

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	var valErr *posts.ValidationError

	switch {
	case errors.As(err, &valErr):
		writeFieldError(w, http.StatusBadRequest, "InvalidRequest", valErr.Message, valErr.Field)

	case errors.Is(err, posts.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "AuthenticationRequired",
			"Authentication required")

	case posts.IsNotFound(err):
		writeError(w, http.StatusNotFound, "NotFound", "Post not found")

	case errors.Is(err, posts.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, "RateLimitExceeded",
			"Rate limit exceeded. Please try again later.")

	case posts.IsUnavailable(err), identity.IsUnavailable(err):
		logger.Error().Err(err).Msg("backend unavailable")
		writeError(w, http.StatusServiceUnavailable, "ServiceUnavailable",
			"Service temporarily unavailable. Please try again later.")

	default:
		// Covers author-resolution faults too - don't leak internal
		// inconsistency details to clients
		logger.Error().Err(err).Msg("unexpected error in post handler")
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
