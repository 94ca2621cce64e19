package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for common post operations
var (
	// ErrNotFound is returned when a post or author lookup finds nothing
	ErrNotFound = errors.New("post not found")

	// ErrUnauthorized is returned when an operation requires an
	// authenticated caller and the context carries no user id
	ErrUnauthorized = errors.New("authentication required")

	// ErrRateLimited is returned when the caller's write quota is spent.
	// Retryable once the window elapses; never retried here.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrAuthorResolution is returned when a stored post's author is
	// missing from the user directory. This is an inconsistency between
	// the store and the directory - a server fault, surfaced to clients
	// only as a generic failure.
	ErrAuthorResolution = errors.New("author for post not found")

	// ErrStorageUnavailable is returned (wrapped) when the post store
	// cannot be reached
	ErrStorageUnavailable = errors.New("post store unavailable")

	// ErrRateLimitUnavailable is returned (wrapped) when the shared
	// counter store cannot be consulted
	ErrRateLimitUnavailable = errors.New("rate limiter unavailable")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// IsNotFound checks if error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnavailable checks if error is a transient infrastructure failure
// (post store or counter store unreachable)
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrStorageUnavailable) || errors.Is(err, ErrRateLimitUnavailable)
}
