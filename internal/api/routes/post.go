package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"Chirper/internal/api/handlers/post"
	"Chirper/internal/api/middleware"
	"Chirper/internal/core/posts"
)

// RegisterPostRoutes registers the post endpoints on the router
func RegisterPostRoutes(r chi.Router, service posts.Service, auth *middleware.SessionAuthMiddleware, logger zerolog.Logger) {
	listHandler := post.NewListHandler(service, logger)
	getHandler := post.NewGetHandler(service, logger)
	createHandler := post.NewCreateHandler(service, logger)

	// Public read endpoints
	r.Get("/api/posts", listHandler.HandleList)
	r.Get("/api/posts/{id}", getHandler.HandleGet)

	// Creating a post requires an authenticated session
	r.With(auth.RequireAuth).Post("/api/posts", createHandler.HandleCreate)
}
