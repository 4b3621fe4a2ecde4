// Package summarizer calls the Gemini generateContent API to produce
// short summaries of note text.
package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/starford/quill/internal/apperr"
)

// Defaults for the hosted Gemini API.
const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-2.5-flash"
)

const promptTemplate = `Summarize the following note content in one or two sentences: "%s"`

// maxErrorBody bounds how much of a failed response is kept for logging.
const maxErrorBody = 4 << 10

// Config describes how to reach the provider.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client is a one-shot generateContent client. It never retries.
type Client struct {
	cfg  Config
	http *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for provider calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a Client. Empty BaseURL and Model fall back to the defaults.
func New(cfg Config, opts ...Option) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	c := &Client{cfg: cfg, http: http.DefaultClient}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.cfg.APIKey != ""
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Summarize asks the model for a one-to-two sentence summary of text.
//
// It returns apperr.ErrNotConfigured without touching the network when no
// API key is set, and wraps apperr.ErrUpstream for transport failures,
// non-2xx statuses and responses that lack candidate text.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	if !c.Enabled() {
		return "", apperr.ErrNotConfigured
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf(promptTemplate, text)}}}},
	})
	if err != nil {
		return "", fmt.Errorf("summarizer: encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.cfg.BaseURL, c.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("summarizer: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("%w: status %d: %s", apperr.ErrUpstream, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", apperr.ErrUpstream, err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: response has no candidate text", apperr.ErrUpstream)
	}
	summary := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if summary == "" {
		return "", fmt.Errorf("%w: empty candidate text", apperr.ErrUpstream)
	}
	return summary, nil
}
