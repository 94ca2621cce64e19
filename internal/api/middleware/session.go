package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/rs/zerolog"
)

// Context keys for storing user information
type contextKey string

const userIDKey contextKey = "user_id"

// SessionCookieName is the cookie issued by the external sign-in layer.
// This service only reads it - login and logout live elsewhere.
const SessionCookieName = "chirper_session"

// minSessionSecretLength is the smallest accepted cookie signing secret
const minSessionSecretLength = 32

// SessionAuthMiddleware authenticates requests from the session cookie
// issued by the external identity provider's sign-in flow.
type SessionAuthMiddleware struct {
	store  *sessions.CookieStore
	logger zerolog.Logger
}

// NewSessionAuthMiddleware creates a session auth middleware over a signed
// cookie store. secret must be at least 32 bytes.
func NewSessionAuthMiddleware(secret string, logger zerolog.Logger) (*SessionAuthMiddleware, error) {
	if len(secret) < minSessionSecretLength {
		return nil, fmt.Errorf("SESSION_SECRET must be at least %d bytes", minSessionSecretLength)
	}
	return &SessionAuthMiddleware{
		store:  sessions.NewCookieStore([]byte(secret)),
		logger: logger,
	}, nil
}

// RequireAuth middleware ensures the request carries a valid session
// If not authenticated, returns 401
// If authenticated, injects the session user id into the request context
func (m *SessionAuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := m.sessionUserID(r)
		if err != nil {
			m.logger.Warn().
				Str("ip", r.RemoteAddr).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Err(err).
				Msg("auth failure")
			writeAuthError(w, "Authentication required")
			return
		}
		if userID == "" {
			writeAuthError(w, "Authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth middleware loads the user id if a session is present, but
// doesn't require it. Useful for endpoints that work for both authenticated
// and anonymous callers.
func (m *SessionAuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := m.sessionUserID(r)
		if err != nil || userID == "" {
			// Not authenticated - continue without user context
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionUserID extracts the user id from the session cookie.
// A missing cookie is not an error, just an empty id.
func (m *SessionAuthMiddleware) sessionUserID(r *http.Request) (string, error) {
	if _, err := r.Cookie(SessionCookieName); err != nil {
		return "", nil
	}

	session, err := m.store.Get(r, SessionCookieName)
	if err != nil {
		return "", fmt.Errorf("invalid session cookie: %w", err)
	}

	userID, _ := session.Values["user_id"].(string)
	return userID, nil
}

// GetUserID extracts the authenticated user's id from the request context
// Returns empty string if not authenticated
func GetUserID(r *http.Request) string {
	return GetAuthenticatedUserID(r.Context())
}

// GetAuthenticatedUserID extracts the authenticated user's id from the
// context. Used by the service layer, which never trusts client input for
// author identity.
func GetAuthenticatedUserID(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}

// SetTestUserID sets the user id in the context for testing purposes
// This function should ONLY be used in tests to mock authenticated users
func SetTestUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// writeAuthError writes a JSON error response for authentication failures
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"AuthenticationRequired","message":"` + message + `"}`))
}
