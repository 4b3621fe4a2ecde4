package tui

import "github.com/starford/quill/internal/models"

// notesLoadedMsg carries the result of the initial list fetch.
type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

// noteCreatedMsg carries the server's record for a newly created note.
type noteCreatedMsg struct {
	note models.Note
	err  error
}

// noteDeletedMsg reports the outcome of a delete call.
type noteDeletedMsg struct {
	id  string
	err error
}

// summaryMsg carries a generated summary (or the failure) for one note.
type summaryMsg struct {
	id      string
	summary string
	err     error
}
