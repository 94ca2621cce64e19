package ratelimit

import (
	"context"
	"time"
)

// Limiter admits or rejects events against a per-key sliding window quota.
// Implementations never block and never queue: a false result is final for
// that call and the caller decides whether to try again later.
type Limiter interface {
	// TryAcquire records an attempt for key and reports whether it is
	// admitted under the quota. A non-nil error means the limiter backend
	// could not be consulted, not that the attempt was rejected.
	TryAcquire(ctx context.Context, key string) (bool, error)
}

// Config holds the window policy shared by all Limiter implementations.
type Config struct {
	// Limit is the number of events admitted per trailing Window.
	Limit int
	// Window is the sliding window length.
	Window time.Duration
}

// DefaultConfig is the write quota for post creation: 2 posts per minute.
func DefaultConfig() Config {
	return Config{Limit: 2, Window: time.Minute}
}
