package identity

// Profile is the minimal public view of a directory user.
// It is derived data: the user directory is the source of truth and
// profiles are fetched per request, never persisted locally.
type Profile struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"profileImageUrl"`
}
