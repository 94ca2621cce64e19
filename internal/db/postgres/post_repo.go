package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"Chirper/internal/core/posts"
)

// Listing limits enforced regardless of what callers ask for
const (
	defaultListLimit = 100
	maxListLimit     = 100
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Insert atomically creates a post. The database assigns the opaque id,
// the creation timestamp, and the seq insertion counter.
func (r *postgresPostRepo) Insert(ctx context.Context, authorID, content string) (*posts.Post, error) {
	query := `
		INSERT INTO posts (author_id, content)
		VALUES ($1, $2)
		RETURNING seq, id, created_at
	`

	post := &posts.Post{
		AuthorID: authorID,
		Content:  content,
	}
	err := r.db.QueryRowContext(ctx, query, authorID, content).
		Scan(&post.Seq, &post.ID, &post.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: insert failed: %v", posts.ErrStorageUnavailable, err)
	}

	return post, nil
}

// GetByID retrieves a post by its opaque id
func (r *postgresPostRepo) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	query := `
		SELECT seq, id, author_id, content, created_at
		FROM posts
		WHERE id = $1
	`

	var post posts.Post
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.Seq, &post.ID, &post.AuthorID, &post.Content, &post.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get by id failed: %v", posts.ErrStorageUnavailable, err)
	}

	return &post, nil
}

// ListRecent returns the newest posts across all authors.
// Ties on created_at are broken by seq, the insertion order.
func (r *postgresPostRepo) ListRecent(ctx context.Context, limit int) ([]*posts.Post, error) {
	query := `
		SELECT seq, id, author_id, content, created_at
		FROM posts
		ORDER BY created_at DESC, seq DESC
		LIMIT $1
	`

	return r.queryPosts(ctx, query, clampLimit(limit))
}

// ListByAuthor returns one author's newest posts, same ordering as ListRecent
func (r *postgresPostRepo) ListByAuthor(ctx context.Context, authorID string, limit int) ([]*posts.Post, error) {
	query := `
		SELECT seq, id, author_id, content, created_at
		FROM posts
		WHERE author_id = $1
		ORDER BY created_at DESC, seq DESC
		LIMIT $2
	`

	return r.queryPosts(ctx, query, authorID, clampLimit(limit))
}

// queryPosts runs a listing query and scans the result rows
func (r *postgresPostRepo) queryPosts(ctx context.Context, query string, args ...interface{}) ([]*posts.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list query failed: %v", posts.ErrStorageUnavailable, err)
	}
	defer func() { _ = rows.Close() }()

	var page []*posts.Post
	for rows.Next() {
		var post posts.Post
		if err := rows.Scan(&post.Seq, &post.ID, &post.AuthorID, &post.Content, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		page = append(page, &post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating posts: %v", posts.ErrStorageUnavailable, err)
	}

	return page, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
