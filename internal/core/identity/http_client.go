package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// directoryUserResponse represents a single user in the directory API response
type directoryUserResponse struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	ProfileImageURL string `json:"profileImageUrl"`
}

// directoryListResponse represents the response from the batch lookup endpoint
type directoryListResponse struct {
	Users []directoryUserResponse `json:"users"`
}

// HTTPDirectory is a Directory backed by the user-directory HTTP API.
type HTTPDirectory struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPDirectory creates a directory client for the given base URL.
// httpClient can be nil, in which case a client with a 10 second timeout
// is used. Lookups are not retried internally - transient failures surface
// as ErrDirectoryUnavailable and callers decide on retry policy.
func NewHTTPDirectory(baseURL string, httpClient *http.Client) *HTTPDirectory {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPDirectory{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// GetProfile resolves a single user id via GET /v1/users/{id}
func (d *HTTPDirectory) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	endpoint := fmt.Sprintf("%s/v1/users/%s", d.baseURL, url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusNotFound:
		return nil, &NotFoundError{UserID: userID}
	default:
		// Drain a bounded amount so the connection can be reused, then
		// treat any other status as a directory fault
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		return nil, fmt.Errorf("%w: directory returned status %d", ErrDirectoryUnavailable, resp.StatusCode)
	}

	var user directoryUserResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: failed to parse directory response: %v", ErrDirectoryUnavailable, err)
	}

	return &Profile{
		ID:        user.ID,
		Username:  user.Username,
		AvatarURL: user.ProfileImageURL,
	}, nil
}

// GetProfiles resolves a batch of user ids via GET /v1/users?id=a&id=b
// Ids absent from the response are unresolved, not an error.
func (d *HTTPDirectory) GetProfiles(ctx context.Context, userIDs []string) ([]*Profile, error) {
	ids := dedupe(userIDs)
	if len(ids) == 0 {
		return []*Profile{}, nil
	}
	if len(ids) > MaxBatchSize {
		ids = ids[:MaxBatchSize]
	}

	query := url.Values{}
	for _, id := range ids {
		query.Add("id", id)
	}
	endpoint := fmt.Sprintf("%s/v1/users?%s", d.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.CopyN(io.Discard, resp.Body, 4096)
		return nil, fmt.Errorf("%w: directory returned status %d", ErrDirectoryUnavailable, resp.StatusCode)
	}

	var list directoryListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: failed to parse directory response: %v", ErrDirectoryUnavailable, err)
	}

	profiles := make([]*Profile, 0, len(list.Users))
	for _, user := range list.Users {
		profiles = append(profiles, &Profile{
			ID:        user.ID,
			Username:  user.Username,
			AvatarURL: user.ProfileImageURL,
		})
	}
	return profiles, nil
}

// dedupe returns the ids with duplicates and blanks removed, preserving order
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
