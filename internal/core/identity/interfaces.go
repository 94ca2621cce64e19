package identity

import "context"

// Directory resolves opaque user ids to public profiles.
// Implementations talk to the external user-directory service; the ids are
// meaningful only to that service and are never inspected here.
type Directory interface {
	// GetProfile resolves a single user id.
	// Returns *NotFoundError if the directory has no such user, or an error
	// wrapping ErrDirectoryUnavailable on transport failure.
	GetProfile(ctx context.Context, userID string) (*Profile, error)

	// GetProfiles resolves a batch of user ids (at most MaxBatchSize after
	// deduplication). Ids the directory doesn't know are simply absent from
	// the result - callers decide whether a missing id is fatal.
	GetProfiles(ctx context.Context, userIDs []string) ([]*Profile, error)
}

// MaxBatchSize is the largest number of ids a single GetProfiles call
// will send to the directory.
const MaxBatchSize = 100
