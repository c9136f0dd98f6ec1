package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"clientctl/internal/clients"
	"clientctl/pkg/logging"

	"github.com/oklog/ulid/v2"
)

const (
	apiSubsystem   = "API"
	collectionPath = "/clients"

	// IdempotencyHeader lets a backend collapse accidental double submits of
	// the same create.
	IdempotencyHeader = "Idempotency-Key"
)

// Client talks to the records backend.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Tokens     TokenSource

	// NewIdempotencyKey generates the key sent with each create.
	NewIdempotencyKey func() string
}

var _ ClientService = (*Client)(nil)

// NewClient creates a backend client. timeout bounds each HTTP exchange.
func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		Tokens:            tokens,
		NewIdempotencyKey: func() string { return ulid.Make().String() },
	}
}

// List fetches every record.
func (c *Client) List(ctx context.Context) ([]clients.Client, error) {
	var out []clients.Client
	if err := c.do(ctx, http.MethodGet, collectionPath, nil, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []clients.Client{}
	}
	return out, nil
}

// Create posts a new record and returns it with its server-assigned id.
func (c *Client) Create(ctx context.Context, p clients.Payload) (clients.Client, error) {
	headers := map[string]string{}
	if c.NewIdempotencyKey != nil {
		headers[IdempotencyHeader] = c.NewIdempotencyKey()
	}

	var created clients.Client
	if err := c.do(ctx, http.MethodPost, collectionPath, p, headers, &created); err != nil {
		return clients.Client{}, err
	}
	if created.ID == 0 {
		return clients.Client{}, fmt.Errorf("%w: created record has no id", ErrMalformedResponse)
	}
	return created, nil
}

// Update replaces the record with the given id.
func (c *Client) Update(ctx context.Context, id int64, p clients.Payload) (clients.Client, error) {
	// Seeded with what was sent: a reply echoing only the changed fields
	// overwrites just those.
	updated := clients.Client{
		ID:       id,
		Name:     p.Name,
		Email:    p.Email,
		Job:      p.Job,
		Rate:     p.Rate,
		IsActive: p.IsActive,
	}
	if err := c.do(ctx, http.MethodPut, recordPath(id), p, nil, &updated); err != nil {
		return clients.Client{}, err
	}
	if updated.ID != id {
		return clients.Client{}, fmt.Errorf("%w: asked to update %d, server returned %d", ErrMalformedResponse, id, updated.ID)
	}
	return updated, nil
}

// Delete removes the record with the given id. The response body is ignored.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, recordPath(id), nil, nil, nil)
}

func recordPath(id int64) string {
	return collectionPath + "/" + strconv.FormatInt(id, 10)
}

// do performs one authenticated request. A nil target skips body decoding.
func (c *Client) do(ctx context.Context, method, path string, body any, headers map[string]string, target any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if c.Tokens != nil {
		token, err := c.Tokens.AccessToken(ctx)
		if err != nil {
			return err
		}
		if token == "" {
			return ErrNoToken
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logging.Debug(apiSubsystem, "%s %s failed after %s: %v", method, path, time.Since(started), err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	logging.Debug(apiSubsystem, "%s %s -> %d in %s", method, path, resp.StatusCode, time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseErrorResponse(resp.StatusCode, respBody)
	}

	if target == nil {
		return nil
	}
	if len(bytes.TrimSpace(respBody)) == 0 {
		return fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}
	if err := json.Unmarshal(respBody, target); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
