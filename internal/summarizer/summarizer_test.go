package summarizer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/starford/quill/internal/apperr"
)

// fakeProvider serves a canned generateContent response and records the last request.
func fakeProvider(t *testing.T, status int, body string) (*httptest.Server, *generateRequest, *atomic.Int32) {
	t.Helper()
	var (
		got   generateRequest
		calls atomic.Int32
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/v1beta/models/test-model:generateContent" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") != "k" {
			t.Errorf("api key header = %q", r.Header.Get("x-goog-api-key"))
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &got, &calls
}

func TestSummarize_Success(t *testing.T) {
	srv, got, _ := fakeProvider(t, http.StatusOK,
		`{"candidates":[{"content":{"parts":[{"text":"  A shopping list.\n"}]}}]}`)
	c := New(Config{APIKey: "k", BaseURL: srv.URL, Model: "test-model"})

	summary, err := c.Summarize(context.Background(), "milk, eggs, bread")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary != "A shopping list." {
		t.Errorf("summary = %q", summary)
	}
	if len(got.Contents) != 1 || len(got.Contents[0].Parts) != 1 {
		t.Fatalf("request = %+v", got)
	}
	want := `Summarize the following note content in one or two sentences: "milk, eggs, bread"`
	if p := got.Contents[0].Parts[0].Text; p != want {
		t.Errorf("prompt = %q, want %q", p, want)
	}
}

func TestSummarize_MissingKeySkipsNetwork(t *testing.T) {
	srv, _, calls := fakeProvider(t, http.StatusOK, `{}`)
	c := New(Config{BaseURL: srv.URL, Model: "test-model"})

	if c.Enabled() {
		t.Error("client without key should not be enabled")
	}
	_, err := c.Summarize(context.Background(), "text")
	if !errors.Is(err, apperr.ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
	if calls.Load() != 0 {
		t.Errorf("provider called %d times, want 0", calls.Load())
	}
}

func TestSummarize_UpstreamFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"error":{"message":"boom"}}`},
		{"forbidden", http.StatusForbidden, `{"error":{"message":"bad key"}}`},
		{"malformed json", http.StatusOK, `not json`},
		{"no candidates", http.StatusOK, `{"candidates":[]}`},
		{"no parts", http.StatusOK, `{"candidates":[{"content":{"parts":[]}}]}`},
		{"blank text", http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"   "}]}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _, calls := fakeProvider(t, tt.status, tt.body)
			c := New(Config{APIKey: "k", BaseURL: srv.URL, Model: "test-model"})

			_, err := c.Summarize(context.Background(), "text")
			if !errors.Is(err, apperr.ErrUpstream) {
				t.Errorf("err = %v, want ErrUpstream", err)
			}
			if calls.Load() != 1 {
				t.Errorf("provider called %d times, want exactly 1", calls.Load())
			}
		})
	}
}

func TestSummarize_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(Config{APIKey: "k", BaseURL: url, Model: "test-model"})
	if _, err := c.Summarize(context.Background(), "text"); !errors.Is(err, apperr.ErrUpstream) {
		t.Errorf("err = %v, want ErrUpstream", err)
	}
}

func TestNew_Defaults(t *testing.T) {
	c := New(Config{APIKey: "k", BaseURL: "http://example.test/"})
	if c.cfg.Model != DefaultModel {
		t.Errorf("model = %q, want %q", c.cfg.Model, DefaultModel)
	}
	if c.cfg.BaseURL != "http://example.test" {
		t.Errorf("base url = %q", c.cfg.BaseURL)
	}
	if New(Config{}).cfg.BaseURL != DefaultBaseURL {
		t.Error("empty base url should use the default")
	}
}
