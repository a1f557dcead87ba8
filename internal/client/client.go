// Package client is a focused HTTP client for the support endpoint.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"support-widget/internal/model/support"
)

// HTTPStatusError captures non-2xx responses with status-aware context.
type HTTPStatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("client: unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

// Client posts support requests to a fixed base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a client for the given base URL, e.g. "http://localhost:8080/api".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send posts one support request and decodes the reply. Non-2xx statuses
// become an *HTTPStatusError; decode failures are returned as-is.
func (c *Client) Send(ctx context.Context, req support.Request) (support.Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return support.Response{}, fmt.Errorf("client: marshal request: %w", err)
	}

	url := c.baseURL + "/support"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return support.Response{}, fmt.Errorf("client: create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		return support.Response{}, fmt.Errorf("client: request failed: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return support.Response{}, &HTTPStatusError{
			StatusCode: res.StatusCode,
			URL:        url,
			Body:       string(buf),
		}
	}

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return support.Response{}, fmt.Errorf("client: read response body: %w", err)
	}

	var payload support.Response
	if err := json.Unmarshal(raw, &payload); err != nil {
		return support.Response{}, fmt.Errorf("client: decode response: %w", err)
	}
	return payload, nil
}
