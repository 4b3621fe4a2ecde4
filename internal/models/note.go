// Package models defines the domain types for Quill.
package models

import "time"

// Note is a persisted title/content record. ID and timestamps are owned by the store.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteDraft is the caller-supplied part of a note at creation time.
type NoteDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
