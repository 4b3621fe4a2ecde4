// Package testutil provides shared test helpers for stores and a fake summarization provider.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/starford/quill/internal/store"
	"github.com/starford/quill/internal/summarizer"
)

// TestStore creates a temporary SQLite note store that is automatically cleaned up.
func TestStore(t *testing.T) *store.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "quill-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := store.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// FakeProvider starts a generateContent stand-in that answers every call
// with status and body, and returns a summarizer client pointed at it.
func FakeProvider(t *testing.T, status int, body string) *summarizer.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return summarizer.New(summarizer.Config{APIKey: "test-key", BaseURL: srv.URL})
}

// SummaryResponse builds a generateContent body with a single candidate text.
func SummaryResponse(text string) string {
	quoted, _ := json.Marshal(text)
	return `{"candidates":[{"content":{"parts":[{"text":` + string(quoted) + `}]}}]}`
}
