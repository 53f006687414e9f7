// Package client is the typed HTTP client for the educator API, used by
// the TUI and the generate subcommand.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/abhisek/educator/internal/generate"
)

// DefaultBaseURL is where `educator serve` listens by default.
const DefaultBaseURL = "http://localhost:8000"

// Client talks to the educator API.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option customizes the Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a Client for the API at baseURL. An empty baseURL selects
// DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 120 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// Health probes GET /api/health.
func (c *Client) Health(ctx context.Context) (*generate.HealthStatus, error) {
	var health generate.HealthStatus
	if err := c.get(ctx, "/api/health", &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// ContentTypes fetches GET /api/content-types.
func (c *Client) ContentTypes(ctx context.Context) (*generate.ContentTypeList, error) {
	var list generate.ContentTypeList
	if err := c.get(ctx, "/api/content-types", &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Generate posts a generation request. A server response with Success
// false is returned as-is; callers inspect the Error field. Transport and
// non-2xx failures return an error instead.
func (c *Client) Generate(ctx context.Context, req generate.Request) (*generate.Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("reach educator API: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(httpResp)
	}

	var resp generate.Response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &resp, nil
}

func (c *Client) get(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("reach educator API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

// decodeAPIError extracts the error message from a non-2xx body, falling
// back to the bare status code when the body isn't the expected shape.
func decodeAPIError(resp *http.Response) error {
	var body struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Error != "" {
			apiErr.Message = body.Error
		} else if body.Detail != "" {
			apiErr.Message = body.Detail
		}
	}
	return apiErr
}
