package posts

import (
	"time"

	"Chirper/internal/core/identity"
)

// Post is a single emoji micro-post. Posts are immutable after creation:
// there is no edit or delete operation in this system.
type Post struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	AuthorID  string    `json:"authorId"`
	Content   string    `json:"content"`

	// Seq is the insertion order recorded by the store. It only exists to
	// keep listings stable when two posts share a creation timestamp and is
	// never exposed to clients.
	Seq int64 `json:"-"`
}

// PostWithAuthor pairs a post with its author's resolved public profile.
// It is composed per response and never persisted; a PostWithAuthor is only
// built when the author actually resolved in the directory.
type PostWithAuthor struct {
	Post   *Post             `json:"post"`
	Author *identity.Profile `json:"author"`
}
