// Package client is a typed HTTP client for the tajmahal JSON API.
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
	// DefaultBaseURL is used when no server is configured.
	DefaultBaseURL = "http://127.0.0.1:8080"

	defaultTimeout = 10 * time.Second
	maxErrorBody   = 4 << 10
)

// Client talks to a running tajmahal server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New creates a client for baseURL. An empty baseURL falls back to
// DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the normalized server URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Restaurant fetches the restaurant record.
func (c *Client) Restaurant(ctx context.Context) (Restaurant, error) {
	var out Restaurant
	if err := c.do(ctx, http.MethodGet, "/api/v1/restaurant", nil, &out); err != nil {
		return Restaurant{}, fmt.Errorf("get restaurant: %w", err)
	}
	return out, nil
}

// Reviews fetches all reviews, newest first.
func (c *Client) Reviews(ctx context.Context) ([]Review, error) {
	var out []Review
	if err := c.do(ctx, http.MethodGet, "/api/v1/reviews", nil, &out); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return out, nil
}

// AddReview submits a review. A rejected review surfaces as an *APIError
// with StatusCode 422.
func (c *Client) AddReview(ctx context.Context, r Review) (Review, error) {
	var out Review
	if err := c.do(ctx, http.MethodPost, "/api/v1/reviews", r, &out); err != nil {
		return Review{}, fmt.Errorf("add review: %w", err)
	}
	return out, nil
}

// Summary fetches the rating summary.
func (c *Client) Summary(ctx context.Context) (Summary, error) {
	var out Summary
	if err := c.do(ctx, http.MethodGet, "/api/v1/reviews/summary", nil, &out); err != nil {
		return Summary{}, fmt.Errorf("get summary: %w", err)
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return decodeAPIError(res)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(res *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))

	var payload struct {
		Error string `json:"error"`
	}
	msg := strings.TrimSpace(string(raw))
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		msg = payload.Error
	}

	return &APIError{StatusCode: res.StatusCode, Message: msg}
}
