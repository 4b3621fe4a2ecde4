package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/starford/quill/internal/apperr"
	"github.com/starford/quill/internal/models"
	"github.com/starford/quill/internal/noteservice"
)

// Handler holds API route handlers.
type Handler struct {
	svc *noteservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *noteservice.Service) *Handler {
	return &Handler{svc: svc}
}

// ListNotes handles GET /api/notes.
//
//	@Summary		List all notes, newest first
//	@Tags			notes
//	@Produce		json
//	@Success		200	{array}		Note
//	@Failure		500	{object}	errResponse
//	@Router			/notes [get]
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.ListNotes(r.Context())
	if err != nil {
		slog.Error("list notes failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("Failed to fetch notes"))
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

// CreateNote handles POST /api/notes.
//
//	@Summary		Create a new note
//	@Tags			notes
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateNoteRequest	true	"Note to create"
//	@Success		201		{object}	Note
//	@Failure		400		{object}	errResponse
//	@Failure		500		{object}	errResponse
//	@Router			/notes [post]
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req CreateNoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	note, err := h.svc.CreateNote(r.Context(), models.NoteDraft{Title: req.Title, Content: req.Content})
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			writeJSON(w, http.StatusBadRequest, errorBody("Note cannot be empty"))
		} else {
			slog.Error("create note failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("Failed to create note"))
		}
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

// DeleteNote handles DELETE /api/notes/{id}.
//
//	@Summary		Delete a note
//	@Tags			notes
//	@Produce		json
//	@Param			id	path		string	true	"Note ID"
//	@Success		200	{object}	MessageResponse
//	@Failure		404	{object}	errResponse
//	@Failure		500	{object}	errResponse
//	@Router			/notes/{id} [delete]
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.DeleteNote(r.Context(), id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("Note not found"))
		} else {
			slog.Error("delete note failed", slog.String("id", id), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("Failed to delete note"))
		}
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Note deleted successfully"})
}

// Summarize handles POST /api/notes/summarize.
// The text is summarized as given; no stored note is looked up.
//
//	@Summary		Summarize note content with the configured model
//	@Tags			notes
//	@Accept			json
//	@Produce		json
//	@Param			body	body		SummarizeRequest	true	"Text to summarize"
//	@Success		200		{object}	SummarizeResponse
//	@Failure		400		{object}	errResponse
//	@Failure		500		{object}	errResponse
//	@Router			/notes/summarize [post]
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req SummarizeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	summary, err := h.svc.Summarize(r.Context(), req.Content)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotConfigured):
			slog.Error("summarize: API key is missing")
			writeJSON(w, http.StatusInternalServerError, errorBody("AI API key is not configured."))
		default:
			slog.Error("summarize failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("Failed to generate summary."))
		}
		return
	}
	writeJSON(w, http.StatusOK, SummarizeResponse{Summary: summary})
}
