package posts

import (
	"context"
	"fmt"
	"strings"

	"Chirper/internal/api/middleware"
	"Chirper/internal/core/identity"
	"Chirper/internal/core/ratelimit"
)

// listLimit caps every listing operation. No pagination cursor in scope.
const listLimit = 100

type postService struct {
	repo      Repository
	directory identity.Directory
	limiter   ratelimit.Limiter
}

// NewPostService creates a new post service
func NewPostService(repo Repository, directory identity.Directory, limiter ratelimit.Limiter) Service {
	return &postService{
		repo:      repo,
		directory: directory,
		limiter:   limiter,
	}
}

// ListRecent returns the newest posts across all authors with profiles
// attached. The whole batch fails if any author is unresolved - orphaned
// posts should surface as a fault, not silently disappear from the feed.
func (s *postService) ListRecent(ctx context.Context) ([]*PostWithAuthor, error) {
	page, err := s.repo.ListRecent(ctx, listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent posts: %w", err)
	}

	return s.attachAuthors(ctx, page)
}

// ListByAuthor returns one author's newest posts. The directory is the
// source of truth for whether the author exists: an unknown author is
// NotFound even before any posts are queried, while a known author with no
// posts is an empty feed.
func (s *postService) ListByAuthor(ctx context.Context, authorID string) ([]*PostWithAuthor, error) {
	authorID = strings.TrimSpace(authorID)
	if authorID == "" {
		return nil, NewValidationError("userId", "userId is required")
	}

	author, err := s.directory.GetProfile(ctx, authorID)
	if err != nil {
		if identity.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve author %s: %w", authorID, err)
	}

	page, err := s.repo.ListByAuthor(ctx, authorID, listLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts for author %s: %w", authorID, err)
	}

	feed := make([]*PostWithAuthor, 0, len(page))
	for _, post := range page {
		feed = append(feed, &PostWithAuthor{Post: post, Author: author})
	}
	return feed, nil
}

// GetByID returns a single post with its author attached.
func (s *postService) GetByID(ctx context.Context, id string) (*PostWithAuthor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, NewValidationError("id", "id is required")
	}

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post %s: %w", id, err)
	}

	author, err := s.directory.GetProfile(ctx, post.AuthorID)
	if err != nil {
		// The post exists, so a directory miss here is an inconsistency
		// between the store and the directory, not a client NotFound.
		if identity.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrAuthorResolution, post.AuthorID)
		}
		return nil, fmt.Errorf("failed to resolve author %s: %w", post.AuthorID, err)
	}

	return &PostWithAuthor{Post: post, Author: author}, nil
}

// Create validates and stores a new post for the authenticated caller.
// Check order is observable and fixed: authentication, then content
// validation, then the write quota, then the insert.
func (s *postService) Create(ctx context.Context, content string) (*Post, error) {
	// Author identity comes from the authenticated session in the context
	// (set by the session middleware), never from request input.
	authorID := middleware.GetAuthenticatedUserID(ctx)
	if authorID == "" {
		return nil, ErrUnauthorized
	}

	if err := validateContent(content); err != nil {
		return nil, err
	}

	admitted, err := s.limiter.TryAcquire(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRateLimitUnavailable, err)
	}
	if !admitted {
		return nil, ErrRateLimited
	}

	post, err := s.repo.Insert(ctx, authorID, content)
	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return post, nil
}

// attachAuthors resolves the distinct authors of a post batch and zips each
// post with its profile, preserving the batch's order.
func (s *postService) attachAuthors(ctx context.Context, page []*Post) ([]*PostWithAuthor, error) {
	if len(page) == 0 {
		return []*PostWithAuthor{}, nil
	}

	authorIDs := make([]string, 0, len(page))
	seen := make(map[string]bool, len(page))
	for _, post := range page {
		if !seen[post.AuthorID] {
			seen[post.AuthorID] = true
			authorIDs = append(authorIDs, post.AuthorID)
		}
	}

	profiles, err := s.directory.GetProfiles(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve authors: %w", err)
	}

	byID := make(map[string]*identity.Profile, len(profiles))
	for _, profile := range profiles {
		byID[profile.ID] = profile
	}

	feed := make([]*PostWithAuthor, 0, len(page))
	for _, post := range page {
		author, ok := byID[post.AuthorID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrAuthorResolution, post.AuthorID)
		}
		feed = append(feed, &PostWithAuthor{Post: post, Author: author})
	}
	return feed, nil
}
