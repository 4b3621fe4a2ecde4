package api

import "github.com/starford/quill/internal/models"

// CreateNoteRequest is the request body for creating a note.
// At least one of the fields must be non-empty.
type CreateNoteRequest struct {
	Title   string `json:"title" example:"Groceries"`
	Content string `json:"content" example:"milk, eggs, bread"`
}

// Note is the stored note as returned by the API (aliased from the domain layer).
type Note = models.Note

// MessageResponse is a plain confirmation body.
type MessageResponse struct {
	Message string `json:"message" example:"Note deleted successfully" validate:"required"`
}

// SummarizeRequest is the request body for summarizing free-standing text.
type SummarizeRequest struct {
	Content string `json:"content" example:"milk, eggs, bread" validate:"required"`
}

// SummarizeResponse carries the generated summary.
type SummarizeResponse struct {
	Summary string `json:"summary" example:"A short grocery list." validate:"required"`
}
