package feed

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"Chirper/internal/core/posts"
)

// GetAuthorFeedHandler handles per-user feed retrieval
type GetAuthorFeedHandler struct {
	service posts.Service
	logger  zerolog.Logger
}

// NewGetAuthorFeedHandler creates a new author feed handler
func NewGetAuthorFeedHandler(service posts.Service, logger zerolog.Logger) *GetAuthorFeedHandler {
	return &GetAuthorFeedHandler{
		service: service,
		logger:  logger,
	}
}

// HandleGetAuthorFeed handles GET /api/feed?author={userId}
// Returns up to 100 of the author's newest posts. An author unknown to the
// user directory is a 404; a known author with no posts is an empty list.
func (h *GetAuthorFeedHandler) HandleGetAuthorFeed(w http.ResponseWriter, r *http.Request) {
	authorID := r.URL.Query().Get("author")
	if authorID == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "author query parameter is required")
		return
	}

	feed, err := h.service.ListByAuthor(r.Context(), authorID)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(feed); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode author feed response")
	}
}
