package posts

import "context"

// Service defines the business logic interface for posts
// Coordinates the post store, the user directory, and the write rate limiter
type Service interface {
	// ListRecent returns up to 100 of the newest posts, newest first, each
	// with its author's profile attached. Fails with ErrAuthorResolution if
	// any fetched post's author cannot be resolved in the directory.
	ListRecent(ctx context.Context) ([]*PostWithAuthor, error)

	// ListByAuthor returns up to 100 of authorID's newest posts, newest
	// first. An author with no posts yields an empty slice; an author the
	// directory doesn't know yields ErrNotFound.
	ListByAuthor(ctx context.Context, authorID string) ([]*PostWithAuthor, error)

	// GetByID returns one post with its author attached.
	// Fails with ErrNotFound if the post doesn't exist and with
	// ErrAuthorResolution if the post exists but its author doesn't resolve.
	GetByID(ctx context.Context, id string) (*PostWithAuthor, error)

	// Create stores a new post for the authenticated user in the context.
	// Checks run in order: authentication, content validation, rate limit,
	// insert. Returns the stored post without author data - resolution is
	// the caller's concern on subsequent reads.
	Create(ctx context.Context, content string) (*Post, error)
}

// Repository defines the data access interface for the post store
type Repository interface {
	// ListRecent returns up to limit posts ordered newest first, ties on
	// created_at broken by insertion order.
	ListRecent(ctx context.Context, limit int) ([]*Post, error)

	// ListByAuthor returns up to limit of authorID's posts, same ordering
	// as ListRecent.
	ListByAuthor(ctx context.Context, authorID string, limit int) ([]*Post, error)

	// GetByID retrieves a post by id, returning ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*Post, error)

	// Insert atomically creates a post, assigning its id and creation
	// timestamp. Fails with ErrStorageUnavailable (wrapped) if the durable
	// backend cannot be reached.
	Insert(ctx context.Context, authorID, content string) (*Post, error)
}
