package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/starford/quill/internal/noteservice"
)

// NewRouter creates a chi router with all note routes mounted.
func NewRouter(svc *noteservice.Service) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()

	r.Get("/notes", h.ListNotes)
	r.Post("/notes", h.CreateNote)
	r.Post("/notes/summarize", h.Summarize)
	r.Delete("/notes/{id}", h.DeleteNote)

	return r
}
