package identity

import (
	"errors"
	"fmt"
)

// ErrDirectoryUnavailable is returned (wrapped) when the user directory
// cannot be reached or answers with a server error. Safe to retry with
// backoff, but never retried here.
var ErrDirectoryUnavailable = errors.New("user directory unavailable")

// NotFoundError is returned when the directory has no user for an id.
type NotFoundError struct {
	UserID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("user not found in directory: %s", e.UserID)
}

// IsNotFound checks if error is a directory not-found error
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsUnavailable checks if error is a directory transport failure
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrDirectoryUnavailable)
}
