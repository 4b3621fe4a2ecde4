package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/starford/quill/internal/mcpserver"
	"github.com/starford/quill/internal/store"
)

// RunMCP serves the note tools over stdio. Logs go to stderr because stdout
// carries the protocol.
func RunMCP(_ context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	cfg := app.config

	out := app.logOutput
	if out == nil {
		out = os.Stderr
	}
	logger := newLogger(out, cfg.App.LogLevel)
	slog.SetDefault(logger)

	db, err := store.Open(cfg.Store.DSN)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer db.Close()

	logger.Info("MCP server starting", slog.String("store_dsn", cfg.Store.DSN),
		slog.Bool("summarizer_enabled", cfg.Summarizer.Enabled()))

	if err := mcpserver.New(newService(cfg, db)).ServeStdio(); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
