// Package client is a typed HTTP client for the Quill notes API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/starford/quill/internal/models"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// Client talks to a running Quill server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the server at baseURL (for example http://localhost:5000).
// A nil hc uses http.DefaultClient.
func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// List fetches every note, newest first.
func (c *Client) List(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	if err := c.do(ctx, http.MethodGet, "/api/notes", nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Create stores a new note and returns the server's record.
func (c *Client) Create(ctx context.Context, draft models.NoteDraft) (models.Note, error) {
	var n models.Note
	err := c.do(ctx, http.MethodPost, "/api/notes", draft, &n)
	return n, err
}

// Delete removes the note with id.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/notes/"+url.PathEscape(id), nil, nil)
}

// Summarize asks the server to summarize content.
func (c *Client) Summarize(ctx context.Context, content string) (string, error) {
	var resp struct {
		Summary string `json:"summary"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/notes/summarize", map[string]string{"content": content}, &resp); err != nil {
		return "", err
	}
	return resp.Summary, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("client: encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("client: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &APIError{Status: resp.StatusCode, Message: e.Error}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}
	return nil
}
