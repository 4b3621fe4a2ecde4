package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/starford/quill/internal/apperr"
	"github.com/starford/quill/internal/models"
)

// Insert stores a new note, assigning its id and timestamps.
func (db *DB) Insert(ctx context.Context, draft models.NoteDraft) (models.Note, error) {
	now := time.Now().UTC()
	n := models.Note{
		ID:        uuid.NewString(),
		Title:     draft.Title,
		Content:   draft.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO notes (id, title, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, n.ID, n.Title, n.Content, now.UnixNano(), now.UnixNano())
	if err != nil {
		return models.Note{}, fmt.Errorf("store: insert note: %w", err)
	}
	return n, nil
}

// List returns every note, newest first. Notes created within the same
// clock tick keep insertion order via rowid.
func (db *DB) List(ctx context.Context) ([]models.Note, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, title, content, created_at, updated_at
		FROM notes
		ORDER BY created_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("store: list notes: %w", err)
	}
	defer rows.Close()

	out := []models.Note{}
	for rows.Next() {
		var (
			n                models.Note
			created, updated int64
		)
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &created, &updated); err != nil {
			return nil, fmt.Errorf("store: scan note: %w", err)
		}
		n.CreatedAt = time.Unix(0, created).UTC()
		n.UpdatedAt = time.Unix(0, updated).UTC()
		out = append(out, n)
	}
	return out, rows.Err()
}

// Delete removes the note with the given id.
// It returns apperr.ErrNotFound when no row matched.
func (db *DB) Delete(ctx context.Context, id string) error {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete note: %w", err)
	}
	if affected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
