package middleware

import (
	"net/http"
	"sync"
	"time"
)

// RequestThrottle implements a simple in-memory per-IP request limiter for
// the whole API surface. It protects the service itself and is separate
// from the per-author write quota enforced in the post service.
type RequestThrottle struct {
	clients  map[string]*clientLimit
	requests int
	window   time.Duration
	mu       sync.Mutex
}

type clientLimit struct {
	resetTime time.Time
	count     int
}

// NewRequestThrottle creates a new request throttle
// requests: maximum number of requests allowed per window
// window: time window duration (e.g., 1 minute)
func NewRequestThrottle(requests int, window time.Duration) *RequestThrottle {
	rt := &RequestThrottle{
		clients:  make(map[string]*clientLimit),
		requests: requests,
		window:   window,
	}

	// Cleanup old entries every window duration
	go rt.cleanup()

	return rt
}

// Middleware returns a rate limiting middleware keyed by client IP
func (rt *RequestThrottle) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := getClientIP(r)

		if !rt.allow(clientID) {
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// allow checks if a client is allowed to make a request
func (rt *RequestThrottle) allow(clientID string) bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	now := time.Now().UTC()

	client, exists := rt.clients[clientID]
	if !exists {
		rt.clients[clientID] = &clientLimit{
			count:     1,
			resetTime: now.Add(rt.window),
		}
		return true
	}

	// Check if window has expired
	if now.After(client.resetTime) {
		client.count = 1
		client.resetTime = now.Add(rt.window)
		return true
	}

	// Check if under limit
	if client.count < rt.requests {
		client.count++
		return true
	}

	return false
}

// cleanup removes expired client entries periodically
func (rt *RequestThrottle) cleanup() {
	ticker := time.NewTicker(rt.window)
	defer ticker.Stop()

	for range ticker.C {
		rt.mu.Lock()
		now := time.Now().UTC()
		for clientID, client := range rt.clients {
			if now.After(client.resetTime) {
				delete(rt.clients, clientID)
			}
		}
		rt.mu.Unlock()
	}
}

// getClientIP extracts the client IP from the request
func getClientIP(r *http.Request) string {
	// Check X-Forwarded-For header (if behind proxy)
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}

	// Check X-Real-IP header
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	// Fall back to RemoteAddr
	return r.RemoteAddr
}
