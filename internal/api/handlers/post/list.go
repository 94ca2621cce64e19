package post

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"Chirper/internal/core/posts"
)

// ListHandler handles the global feed
type ListHandler struct {
	service posts.Service
	logger  zerolog.Logger
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service, logger zerolog.Logger) *ListHandler {
	return &ListHandler{
		service: service,
		logger:  logger,
	}
}

// HandleList handles GET /api/posts
// Returns up to 100 of the newest posts with authors attached.
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	feed, err := h.service.ListRecent(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(feed); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode feed response")
	}
}
