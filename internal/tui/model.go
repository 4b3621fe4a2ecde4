// Package tui implements the terminal client for Quill: a single screen with
// a draft form and the note list, plus per-note summaries held in memory.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/starford/quill/internal/models"
)

// FallbackSummary is shown in place of a summary when the summarize call fails.
const FallbackSummary = "Could not generate summary."

// API is the subset of the notes API the TUI needs.
type API interface {
	List(ctx context.Context) ([]models.Note, error)
	Create(ctx context.Context, draft models.NoteDraft) (models.Note, error)
	Delete(ctx context.Context, id string) error
	Summarize(ctx context.Context, content string) (string, error)
}

// Focus identifies which part of the screen receives key input.
type Focus int

const (
	FocusTitle Focus = iota
	FocusContent
	FocusList
)

// Model is the bubbletea model for the notes screen.
type Model struct {
	api    API
	logger *slog.Logger
	keys   KeyMap

	notes  []models.Note
	cursor int
	focus  Focus

	title   textinput.Model
	content textinput.Model

	// summaries maps note id to the last summary text for this session.
	summaries map[string]string
	// loadingID is the note whose summarize call is in flight, if any.
	loadingID string

	width  int
	height int
}

// New creates a Model backed by api. A nil logger discards log output.
func New(api API, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	title := textinput.New()
	title.Placeholder = "Note title"
	title.Prompt = "Title:   "
	title.Focus()

	content := textinput.New()
	content.Placeholder = "Note content..."
	content.Prompt = "Content: "

	return Model{
		api:       api,
		logger:    logger,
		keys:      DefaultKeyMap,
		focus:     FocusTitle,
		title:     title,
		content:   content,
		summaries: make(map[string]string),
	}
}

// Init fetches the note list once.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.fetchNotes())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.title.Width = max(msg.Width-len(m.title.Prompt)-2, 10)
		m.content.Width = max(msg.Width-len(m.content.Prompt)-2, 10)
		return m, nil

	case notesLoadedMsg:
		if msg.err != nil {
			m.logger.Error("fetch notes failed", slog.String("error", msg.err.Error()))
			return m, nil
		}
		m.notes = msg.notes
		m.clampCursor()
		return m, nil

	case noteCreatedMsg:
		if msg.err != nil {
			m.logger.Error("create note failed", slog.String("error", msg.err.Error()))
			return m, nil
		}
		m.notes = append(m.notes, msg.note)
		m.title.Reset()
		m.content.Reset()
		return m, nil

	case noteDeletedMsg:
		if msg.err != nil {
			m.logger.Error("delete note failed", slog.String("id", msg.id), slog.String("error", msg.err.Error()))
		}
		return m, nil

	case summaryMsg:
		if msg.err != nil {
			m.logger.Error("summarize failed", slog.String("id", msg.id), slog.String("error", msg.err.Error()))
			m.summaries[msg.id] = FallbackSummary
		} else {
			m.summaries[msg.id] = msg.summary
		}
		if m.loadingID == msg.id {
			m.loadingID = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextFocus):
		cmd := m.setFocus((m.focus + 1) % 3)
		return m, cmd
	case key.Matches(msg, m.keys.PrevFocus):
		cmd := m.setFocus((m.focus + 2) % 3)
		return m, cmd
	case key.Matches(msg, m.keys.Save):
		return m.submit()
	}

	if m.focus != FocusList {
		switch {
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Leave):
			cmd := m.setFocus(FocusList)
			return m, cmd
		}
		return m.updateInputs(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.notes)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Compose):
		cmd := m.setFocus(FocusTitle)
		return m, cmd
	case key.Matches(msg, m.keys.Delete):
		return m.deleteSelected()
	case key.Matches(msg, m.keys.Summarize):
		return m.summarizeSelected()
	}
	return m, nil
}

// submit creates a note from the draft fields. Empty drafts are ignored.
func (m Model) submit() (tea.Model, tea.Cmd) {
	draft := models.NoteDraft{Title: m.title.Value(), Content: m.content.Value()}
	if draft.Title == "" && draft.Content == "" {
		return m, nil
	}
	return m, func() tea.Msg {
		n, err := m.api.Create(context.Background(), draft)
		return noteCreatedMsg{note: n, err: err}
	}
}

// deleteSelected drops the selected note locally and issues the delete call.
// A failed call is only logged; the local list is not restored.
func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	if len(m.notes) == 0 {
		return m, nil
	}
	id := m.notes[m.cursor].ID
	notes := make([]models.Note, 0, len(m.notes)-1)
	for _, n := range m.notes {
		if n.ID != id {
			notes = append(notes, n)
		}
	}
	m.notes = notes
	m.clampCursor()

	return m, func() tea.Msg {
		return noteDeletedMsg{id: id, err: m.api.Delete(context.Background(), id)}
	}
}

// summarizeSelected requests a summary for the selected note's content.
func (m Model) summarizeSelected() (tea.Model, tea.Cmd) {
	if len(m.notes) == 0 {
		return m, nil
	}
	n := m.notes[m.cursor]
	if n.Content == "" || m.loadingID == n.ID {
		return m, nil
	}
	m.loadingID = n.ID
	return m, func() tea.Msg {
		s, err := m.api.Summarize(context.Background(), n.Content)
		return summaryMsg{id: n.ID, summary: s, err: err}
	}
}

func (m Model) fetchNotes() tea.Cmd {
	return func() tea.Msg {
		notes, err := m.api.List(context.Background())
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	m.title.Blur()
	m.content.Blur()
	switch f {
	case FocusTitle:
		return m.title.Focus()
	case FocusContent:
		return m.content.Focus()
	}
	return nil
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FocusTitle:
		m.title, cmd = m.title.Update(msg)
	case FocusContent:
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.notes) {
		m.cursor = len(m.notes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
