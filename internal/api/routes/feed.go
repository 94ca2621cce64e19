package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"Chirper/internal/api/handlers/feed"
	"Chirper/internal/core/posts"
)

// RegisterFeedRoutes registers the per-author feed endpoint on the router
func RegisterFeedRoutes(r chi.Router, service posts.Service, logger zerolog.Logger) {
	authorFeedHandler := feed.NewGetAuthorFeedHandler(service, logger)

	// Public: anyone can view a user's posts
	r.Get("/api/feed", authorFeedHandler.HandleGetAuthorFeed)
}
