package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/starford/quill/internal/client"
	"github.com/starford/quill/internal/tui"
)

// RunTUI starts the terminal client against a running server.
// Only the server URL and logging are used from the options.
func RunTUI(ctx context.Context, opts ...Option) error {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.serverURL == "" {
		return fmt.Errorf("server URL is required")
	}

	out := app.logOutput
	if out == nil {
		out = io.Discard
	}
	logger := slog.New(slog.NewTextHandler(out, nil))

	m := tui.New(client.New(app.serverURL, nil), logger)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
