package githubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/repoguard/pkg/domain/interfaces"
	"github.com/secmon-lab/repoguard/pkg/domain/types"
	"github.com/secmon-lab/repoguard/pkg/utils/safe"
)

const defaultBaseURL = "https://api.github.com"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a minimal authenticated REST wrapper for the GitHub API. Every
// request carries the access token. Responses are returned as raw JSON without
// inspecting the HTTP status: interpreting error payloads is up to the caller.
type Client struct {
	baseURL    string
	token      types.GitHubToken
	httpClient HTTPClient
}

var _ interfaces.GitHubClient = (*Client)(nil)

type Option func(*Client)

// WithBaseURL overrides the API base URL. Mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

func WithHTTPClient(httpClient HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = httpClient
	}
}

func New(token types.GitHubToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token is empty")
	}

	client := &Client{
		baseURL:    defaultBaseURL,
		token:      token,
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

func (x *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return x.do(ctx, http.MethodGet, path, nil)
}

func (x *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return x.do(ctx, http.MethodPut, path, body)
}

func (x *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return x.do(ctx, http.MethodPost, path, body)
}

func (x *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to marshal request body", goerr.V("path", path))
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, x.baseURL+path, reqBody)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build request", goerr.V("method", method), goerr.V("path", path))
	}
	req.Header.Set("Authorization", "token "+x.token.Unmask())
	req.Header.Set("Accept", "application/vnd.github+json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to call GitHub API", goerr.V("method", method), goerr.V("path", path))
	}
	defer safe.Close(resp.Body)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read response body", goerr.V("method", method), goerr.V("path", path))
	}

	return json.RawMessage(data), nil
}
