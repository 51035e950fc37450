// Package client is the Go consumer side of the API: an HTTP client
// decoding the response envelope, and a form-state holder that mirrors
// the server's validation policies for live feedback before submission.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIError is a failure envelope returned by the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusNotFound
}

// envelope mirrors the server's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Error   bool            `json:"error"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client talks to one API deployment. The zero value is not usable;
// construct with New.
type Client struct {
	base string
	http *http.Client
}

// New returns a Client for the API at base (e.g. "http://localhost:8080").
func New(base string) *Client {
	return &Client{
		base: base,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// Create POSTs a candidate record and decodes the echoed record
// (including its server-assigned identifier and timestamps) into out.
func (c *Client) Create(ctx context.Context, resource string, payload, out any) error {
	return c.do(ctx, http.MethodPost, c.url(resource, ""), payload, out)
}

// Get fetches one record by id into out.
func (c *Client) Get(ctx context.Context, resource, id string, out any) error {
	return c.do(ctx, http.MethodGet, c.url(resource, id), nil, out)
}

// List fetches the whole collection into out (a pointer to a slice).
func (c *Client) List(ctx context.Context, resource string, out any) error {
	return c.do(ctx, http.MethodGet, c.url(resource, ""), nil, out)
}

// Update PUTs a partial record and decodes the post-update record into out.
func (c *Client) Update(ctx context.Context, resource, id string, payload, out any) error {
	return c.do(ctx, http.MethodPut, c.url(resource, id), payload, out)
}

// Delete removes one record by id.
func (c *Client) Delete(ctx context.Context, resource, id string) error {
	return c.do(ctx, http.MethodDelete, c.url(resource, id), nil, nil)
}

func (c *Client) url(resource, id string) string {
	u := c.base + "/api/" + resource
	if id != "" {
		u += "/" + id
	}
	return u
}

func (c *Client) do(ctx context.Context, method, url string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !env.Success {
		return &APIError{Status: res.StatusCode, Message: env.Message}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}
