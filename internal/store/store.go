package store

import (
	"context"

	"github.com/starford/quill/internal/models"
)

// NoteStore defines the persistence operations the service layer relies on.
// Consumers should depend on this interface rather than the concrete *DB type
// to facilitate testing with fakes.
type NoteStore interface {
	Insert(ctx context.Context, draft models.NoteDraft) (models.Note, error)
	List(ctx context.Context) ([]models.Note, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
	Close() error
}

// Verify *DB satisfies NoteStore at compile time.
var _ NoteStore = (*DB)(nil)
