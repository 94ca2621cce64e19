package post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"Chirper/internal/core/posts"
)

// maxCreateBodySize bounds the request body. Posts are at most 280 runes,
// so 16KiB leaves generous headroom while preventing abuse.
const maxCreateBodySize = 16 * 1024

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
	logger  zerolog.Logger
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service, logger zerolog.Logger) *CreateHandler {
	return &CreateHandler{
		service: service,
		logger:  logger,
	}
}

type createRequest struct {
	Content string `json:"content"`
}

// HandleCreate handles POST /api/posts
// Creates a new post for the authenticated caller. The author identity
// comes from the session context - clients never supply it.
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxCreateBodySize)

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "RequestTooLarge",
				"Request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), req.Content)
	if err != nil {
		handleServiceError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		// Headers already sent, nothing to return to the client
		h.logger.Error().Err(err).Msg("failed to encode create response")
	}
}
