// Package client is a minimal API client for the burnbox HTTP API, used by
// the command line share and retrieve flows. Encryption never happens here:
// callers hand in sealed envelopes and get sealed envelopes back.
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
)

const (
	// DefaultTimeout is the per-request timeout when no custom HTTP client
	// is supplied.
	DefaultTimeout = 30 * time.Second

	// DefaultRetries is the number of retries after a transport error or a
	// 5xx answer.
	DefaultRetries = 3

	// DefaultRetryDelay is the base delay between attempts; attempt n waits
	// n times this long.
	DefaultRetryDelay = time.Second
)

// Client talks to one burnbox deployment.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retries    int
	retryDelay time.Duration
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRetries sets the number of retries. Zero disables retrying.
func WithRetries(retries int) Option {
	return func(c *Client) {
		c.retries = retries
	}
}

// WithRetryDelay sets the base delay between attempts.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = delay
	}
}

// New creates a new client for the service at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		retries:    DefaultRetries,
		retryDelay: DefaultRetryDelay,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SharedSecret is the server's answer to a share call.
type SharedSecret struct {
	ID string `json:"id"`
}

// RetrievedSecret carries the envelope handed out by a retrieve call.
type RetrievedSecret struct {
	EncryptedData string `json:"encrypted_data"`
	CreatedAt     int64  `json:"created_at"`
}

// CreatedTime returns the share timestamp, which the wire carries as unix
// milliseconds.
func (r *RetrievedSecret) CreatedTime() time.Time {
	return time.UnixMilli(r.CreatedAt).UTC()
}

// Share stores a sealed envelope and returns its identifier. Retrying a
// failed share is safe: every attempt that reaches the server stores an
// independent secret, and any orphan expires at the TTL horizon.
func (c *Client) Share(ctx context.Context, encryptedData string) (*SharedSecret, error) {
	body := map[string]string{"encrypted_data": encryptedData}

	var out SharedSecret
	if err := c.do(ctx, http.MethodPost, "/v1/secrets", body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Retrieve claims a secret. The server hands the envelope out exactly once:
// a second attempt, including a retry of a request whose answer was lost in
// transit, observes not found.
func (c *Client) Retrieve(ctx context.Context, id string) (*RetrievedSecret, error) {
	var out RetrievedSecret
	if err := c.do(ctx, http.MethodGet, "/v1/secrets/"+id, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// do runs one API call with retries on transport errors and 5xx answers.
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
	}

	var resp *http.Response
	var lastErr error

	for attempt := 0; ; attempt++ {
		// The request is rebuilt per attempt; reusing one request would
		// send an exhausted body on retry.
		req, err := c.newRequest(ctx, method, path, payload)
		if err != nil {
			return err
		}

		resp, lastErr = c.httpClient.Do(req)
		if lastErr == nil && resp.StatusCode < http.StatusInternalServerError {
			break
		}
		if attempt >= c.retries {
			break
		}
		if resp != nil {
			resp.Body.Close()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt+1) * c.retryDelay):
		}
	}

	if lastErr != nil {
		return fmt.Errorf("request failed: %w", lastErr)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return parseAPIError(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, payload []byte) (*http.Request, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return req, nil
}
