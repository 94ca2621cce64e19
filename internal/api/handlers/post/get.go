package post

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"Chirper/internal/core/posts"
)

// GetHandler handles single post retrieval
type GetHandler struct {
	service posts.Service
	logger  zerolog.Logger
}

// NewGetHandler creates a new get handler
func NewGetHandler(service posts.Service, logger zerolog.Logger) *GetHandler {
	return &GetHandler{
		service: service,
		logger:  logger,
	}
}

// HandleGet handles GET /api/posts/{id}
// Returns the post with its author's public profile attached.
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode get response")
	}
}
