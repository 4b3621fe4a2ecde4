package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/starford/quill/internal/api"
	"github.com/starford/quill/internal/models"
	"github.com/starford/quill/internal/noteservice"
	"github.com/starford/quill/internal/summarizer"
	"github.com/starford/quill/internal/testutil"
)

// testClient runs the real API router over a temp store behind an httptest server.
func testClient(t *testing.T, provider *summarizer.Client) *Client {
	t.Helper()
	if provider == nil {
		provider = summarizer.New(summarizer.Config{})
	}
	svc := noteservice.NewService(testutil.TestStore(t), provider)
	r := chi.NewRouter()
	r.Mount("/api", api.NewRouter(svc))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", srv.Client())
}

func statusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

func TestGroceriesScenario(t *testing.T) {
	c := testClient(t, nil)
	ctx := context.Background()

	n, err := c.Create(ctx, models.NoteDraft{Title: "Groceries", Content: "milk, eggs, bread"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if n.ID == "" || n.Title != "Groceries" || n.Content != "milk, eggs, bread" {
		t.Errorf("created = %+v", n)
	}

	notes, err := c.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(notes) != 1 || notes[0].ID != n.ID {
		t.Fatalf("list = %+v", notes)
	}

	if err := c.Delete(ctx, n.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	notes, err = c.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("list after delete = %d notes", len(notes))
	}

	err = c.Delete(ctx, n.ID)
	if statusOf(err) != http.StatusNotFound {
		t.Errorf("second delete err = %v, want 404", err)
	}
}

func TestCreateEmpty(t *testing.T) {
	c := testClient(t, nil)
	_, err := c.Create(context.Background(), models.NoteDraft{})
	if statusOf(err) != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400", err)
	}
	var apiErr *APIError
	errors.As(err, &apiErr)
	if apiErr.Message != "Note cannot be empty" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestSummarize(t *testing.T) {
	c := testClient(t, testutil.FakeProvider(t, http.StatusOK, testutil.SummaryResponse("Shopping.")))
	got, err := c.Summarize(context.Background(), "milk, eggs, bread")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if got != "Shopping." {
		t.Errorf("summary = %q", got)
	}
}

func TestSummarizeUnconfigured(t *testing.T) {
	c := testClient(t, nil)
	_, err := c.Summarize(context.Background(), "text")
	if statusOf(err) != http.StatusInternalServerError {
		t.Errorf("err = %v, want 500", err)
	}
}

func TestServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := New(srv.URL, nil)
	if _, err := c.List(context.Background()); err == nil {
		t.Fatal("expected error for closed server")
	} else if statusOf(err) != 0 {
		t.Errorf("transport error should not be an APIError: %v", err)
	}
}
