// Package api is a thin JSON client for the task backend.
//
// It joins relative paths onto a fixed base address, encodes/decodes JSON
// bodies, and converts non-2xx responses into *StatusError. Authorization
// is the underlying *http.Client's concern: authenticated callers pass a
// client built by AuthClient, which attaches the bearer header on every
// request; the zero client sends no Authorization header.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// RequestTimeout is the timeout for a single backend call. No retries.
const RequestTimeout = 10 * time.Second

// Client issues JSON requests against a fixed backend base address.
type Client struct {
	base string
	hc   *http.Client
}

// New creates a client for the given base URL. httpClient may be nil, in
// which case an unauthenticated default client is used.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: missing scheme or host", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		base: strings.TrimRight(u.String(), "/"),
		hc:   httpClient,
	}, nil
}

// AuthClient returns an *http.Client that attaches
// "Authorization: Bearer <token>" to every request.
func AuthClient(ctx context.Context, token string) *http.Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	})
	return oauth2.NewClient(ctx, src)
}

// Do issues a single call. body is JSON-encoded when non-nil; the response
// body is decoded into out when out is non-nil and the response has one.
// Non-2xx responses become *StatusError with the server message unchanged.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			Code:    resp.StatusCode,
			Message: readServerMessage(resp.Body),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// readServerMessage extracts the message from an error response body.
// The backend sends {"message": "..."}; plain-text bodies are passed
// through trimmed.
func readServerMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil || len(data) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
		return ""
	}
	return strings.TrimSpace(string(data))
}
