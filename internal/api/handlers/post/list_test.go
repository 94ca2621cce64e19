package post

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"Chirper/internal/core/identity"
	"Chirper/internal/core/posts"
)

func TestHandleList(t *testing.T) {
	t.Run("returns the feed", func(t *testing.T) {
		service := new(MockPostService)
		service.On("ListRecent", mock.Anything).Return([]*posts.PostWithAuthor{
			{
				Post: &posts.Post{
					ID:        "p2",
					AuthorID:  "user_b",
					Content:   "🔥",
					CreatedAt: time.Date(2026, 3, 1, 12, 1, 0, 0, time.UTC),
				},
				Author: &identity.Profile{ID: "user_b", Username: "bob"},
			},
			{
				Post: &posts.Post{
					ID:        "p1",
					AuthorID:  "user_a",
					Content:   "🚀",
					CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
				},
				Author: &identity.Profile{ID: "user_a", Username: "alice"},
			},
		}, nil)

		handler := NewListHandler(service, zerolog.Nop())
		rec := httptest.NewRecorder()
		handler.HandleList(rec, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `"username":"bob"`)
		assert.Contains(t, body, `"username":"alice"`)
		// Feed order is the service's order
		assert.Less(t, strings.Index(body, "p2"), strings.Index(body, "p1"))
	})

	t.Run("empty feed encodes as an empty array", func(t *testing.T) {
		service := new(MockPostService)
		service.On("ListRecent", mock.Anything).Return([]*posts.PostWithAuthor{}, nil)

		handler := NewListHandler(service, zerolog.Nop())
		rec := httptest.NewRecorder()
		handler.HandleList(rec, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("author resolution fault is a generic 500", func(t *testing.T) {
		service := new(MockPostService)
		service.On("ListRecent", mock.Anything).
			Return(nil, fmt.Errorf("%w: user_gone", posts.ErrAuthorResolution))

		handler := NewListHandler(service, zerolog.Nop())
		rec := httptest.NewRecorder()
		handler.HandleList(rec, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "InternalServerError")
	})

	t.Run("directory outage is a 503", func(t *testing.T) {
		service := new(MockPostService)
		service.On("ListRecent", mock.Anything).
			Return(nil, fmt.Errorf("failed to resolve authors: %w", identity.ErrDirectoryUnavailable))

		handler := NewListHandler(service, zerolog.Nop())
		rec := httptest.NewRecorder()
		handler.HandleList(rec, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "ServiceUnavailable")
	})

	t.Run("storage outage is a 503", func(t *testing.T) {
		service := new(MockPostService)
		service.On("ListRecent", mock.Anything).
			Return(nil, fmt.Errorf("failed to list recent posts: %w", posts.ErrStorageUnavailable))

		handler := NewListHandler(service, zerolog.Nop())
		rec := httptest.NewRecorder()
		handler.HandleList(rec, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
