package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Chirper/internal/core/posts"
)

// setupTestDB connects to the test database, runs migrations, and clears the
// posts table so each test starts from a known state.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set - skipping Postgres integration test")
	}

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err, "Failed to connect to test database")
	t.Cleanup(func() {
		if closeErr := db.Close(); closeErr != nil {
			t.Logf("Failed to close database: %v", closeErr)
		}
	})

	if err := db.Ping(); err != nil {
		t.Skipf("Test database not reachable at %s: %v", dbURL, err)
	}

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, "../migrations"))

	_, err = db.Exec("DELETE FROM posts")
	require.NoError(t, err)

	return db
}

// insertPostAt inserts a post directly with an explicit timestamp, bypassing
// the repository so tests can control the recency ordering.
func insertPostAt(t *testing.T, db *sql.DB, authorID, content string, createdAt time.Time) string {
	t.Helper()

	var id string
	err := db.QueryRow(
		`INSERT INTO posts (author_id, content, created_at) VALUES ($1, $2, $3) RETURNING id`,
		authorID, content, createdAt,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestPostRepoListRecentOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Insert out of chronological order: newest first, oldest last
	pNew := insertPostAt(t, db, "user_a", "🌊", base.Add(2*time.Minute))
	pOld := insertPostAt(t, db, "user_b", "🚀", base)
	pMid := insertPostAt(t, db, "user_a", "🔥", base.Add(time.Minute))

	page, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, page, 3)

	// Results are newest-first regardless of insertion order
	assert.Equal(t, pNew, page[0].ID)
	assert.Equal(t, pMid, page[1].ID)
	assert.Equal(t, pOld, page[2].ID)
}

func TestPostRepoListRecentTieBreak(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	// Two posts sharing one timestamp: the later insert wins the tie
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	pFirst := insertPostAt(t, db, "user_a", "🎲", ts)
	pSecond := insertPostAt(t, db, "user_b", "🎯", ts)

	page, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, page, 2)

	assert.Equal(t, pSecond, page[0].ID)
	assert.Equal(t, pFirst, page[1].ID)
}

func TestPostRepoListByAuthorFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	insertPostAt(t, db, "user_a", "🌊", base)
	pLate := insertPostAt(t, db, "user_a", "🔥", base.Add(time.Minute))
	insertPostAt(t, db, "user_b", "🚀", base.Add(2*time.Minute))

	page, err := repo.ListByAuthor(ctx, "user_a", 10)
	require.NoError(t, err)
	require.Len(t, page, 2)

	// Newest-first within the author's posts only
	assert.Equal(t, pLate, page[0].ID)
	for _, p := range page {
		assert.Equal(t, "user_a", p.AuthorID)
	}
}

func TestPostRepoInsertRoundtrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	created, err := repo.Insert(ctx, "user_a", "🎉")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.NotZero(t, created.Seq)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "user_a", got.AuthorID)
	assert.Equal(t, "🎉", got.Content)

	_, err = repo.GetByID(ctx, "no_such_post")
	assert.ErrorIs(t, err, posts.ErrNotFound)
}
