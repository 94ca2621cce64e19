package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter implements Limiter with an in-process sliding window using
// the same two-bucket weighting as RedisLimiter. State is local to the
// process, so it cannot enforce a global quota across replicas - use
// RedisLimiter in production and this in tests and single-instance dev
// setups.
type MemoryLimiter struct {
	keys map[string]*keyWindow
	cfg  Config
	now  func() time.Time
	mu   sync.Mutex
}

// keyWindow tracks counts for the current and previous window buckets.
type keyWindow struct {
	bucket int64
	cur    int
	prev   int
}

// NewMemoryLimiter creates an in-memory limiter.
func NewMemoryLimiter(cfg Config) *MemoryLimiter {
	ml := &MemoryLimiter{
		keys: make(map[string]*keyWindow),
		cfg:  cfg,
		now:  time.Now,
	}

	// Cleanup stale entries every window duration
	go ml.cleanup()

	return ml
}

// TryAcquire checks and records one attempt for key. The previous bucket's
// count is weighted by how far the current bucket has progressed, so the
// effective window slides rather than resetting on a fixed boundary. Never
// returns an error.
func (ml *MemoryLimiter) TryAcquire(_ context.Context, key string) (bool, error) {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	nowMs := ml.now().UnixMilli()
	windowMs := ml.cfg.Window.Milliseconds()
	bucket := nowMs / windowMs

	entry, exists := ml.keys[key]
	if !exists {
		entry = &keyWindow{bucket: bucket}
		ml.keys[key] = entry
	}

	if bucket != entry.bucket {
		if bucket == entry.bucket+1 {
			entry.prev = entry.cur
		} else {
			entry.prev = 0
		}
		entry.cur = 0
		entry.bucket = bucket
	}

	weight := 1 - float64(nowMs%windowMs)/float64(windowMs)
	if float64(entry.cur)+float64(entry.prev)*weight >= float64(ml.cfg.Limit) {
		return false, nil
	}

	entry.cur++
	return true, nil
}

// cleanup removes entries whose buckets no longer influence the window
func (ml *MemoryLimiter) cleanup() {
	ticker := time.NewTicker(ml.cfg.Window)
	defer ticker.Stop()

	for range ticker.C {
		ml.mu.Lock()
		current := ml.now().UnixMilli() / ml.cfg.Window.Milliseconds()
		for key, entry := range ml.keys {
			if entry.bucket < current-1 {
				delete(ml.keys, key)
			}
		}
		ml.mu.Unlock()
	}
}
