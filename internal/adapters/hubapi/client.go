// Package hubapi talks to the hub's REST backend. Every view re-fetches its
// collection; nothing is cached or retried.
package hubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"boardbevy/internal/domain"
)

// Client is a thin JSON client for the hub backend.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewClient returns a client rooted at baseURL. A nil http client means
// http.DefaultClient; a nil logger means slog.Default().
func NewClient(baseURL string, client *http.Client, logger *slog.Logger) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger,
	}
}

type idBody struct {
	ID domain.ID `json:"id"`
}

// do sends body as JSON (when non-nil) and decodes the response into out
// (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrUpstream, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.WarnContext(ctx, "hub backend returned error", "method", method, "path", path, "status", resp.StatusCode)
		return statusError(resp.StatusCode, method, path)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: failed to decode %s %s response: %v", domain.ErrUpstream, method, path, err)
	}
	return nil
}

func statusError(status int, method, path string) error {
	switch status {
	case http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, domain.ErrNotFound)
	case http.StatusUnauthorized:
		return fmt.Errorf("%s %s: %w", method, path, domain.ErrUnauthorized)
	case http.StatusForbidden:
		return fmt.Errorf("%s %s: %w", method, path, domain.ErrForbidden)
	default:
		return fmt.Errorf("%w: %s %s returned status %d", domain.ErrUpstream, method, path, status)
	}
}

func itemPath(collection string, id domain.ID) string {
	return "/" + collection + "/" + string(id)
}
