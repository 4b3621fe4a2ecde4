// Package noteservice holds the note operations shared by the HTTP API and the MCP server.
package noteservice

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/quill/internal/apperr"
	"github.com/starford/quill/internal/models"
	"github.com/starford/quill/internal/store"
)

// Summarizer produces a short summary of free-standing text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Service coordinates the note store and the summarization provider.
type Service struct {
	store      store.NoteStore
	summarizer Summarizer
}

// NewService creates a new note service.
func NewService(st store.NoteStore, sum Summarizer) *Service {
	return &Service{store: st, summarizer: sum}
}

// ValidateDraft checks that a note carries a title or content.
func ValidateDraft(d models.NoteDraft) error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.When(d.Content == "",
			validation.Required.Error("title or content is required"))),
	)
}

// ListNotes returns all notes, newest first.
func (s *Service) ListNotes(ctx context.Context) ([]models.Note, error) {
	return s.store.List(ctx)
}

// CreateNote validates the draft and persists it. Invalid drafts never reach the store.
func (s *Service) CreateNote(ctx context.Context, d models.NoteDraft) (models.Note, error) {
	if err := ValidateDraft(d); err != nil {
		return models.Note{}, fmt.Errorf("%w: %v", apperr.ErrValidation, err)
	}
	return s.store.Insert(ctx, d)
}

// DeleteNote permanently removes the note with the given id.
func (s *Service) DeleteNote(ctx context.Context, id string) error {
	if id == "" {
		return apperr.ErrNotFound
	}
	return s.store.Delete(ctx, id)
}

// Summarize returns a provider-generated summary of text. Nothing is persisted.
// Empty text is passed to the provider as is.
func (s *Service) Summarize(ctx context.Context, text string) (string, error) {
	if s.summarizer == nil {
		return "", apperr.ErrNotConfigured
	}
	return s.summarizer.Summarize(ctx, text)
}
