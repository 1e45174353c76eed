package interfaces

import (
	"context"
	"encoding/json"
)

// GitHubClient issues authenticated REST calls against the GitHub API and
// returns the response body as raw JSON. Status codes are not interpreted
// here; an error payload comes back as JSON like any other response.
type GitHubClient interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
	Put(ctx context.Context, path string, body any) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
}
