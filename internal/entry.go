// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/sync/errgroup"

	"github.com/starford/quill/internal/api"
	"github.com/starford/quill/internal/noteservice"
	"github.com/starford/quill/internal/store"
	"github.com/starford/quill/internal/summarizer"
)

// Run starts the HTTP API server with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	cfg := app.config

	// Initialize structured JSON logger.
	out := app.logOutput
	if out == nil {
		out = os.Stdout
	}
	logger := newLogger(out, cfg.App.LogLevel)
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("store_dsn", cfg.Store.DSN),
		slog.Bool("summarizer_enabled", cfg.Summarizer.Enabled()),
		slog.String("summarizer_model", cfg.Summarizer.Model),
		slog.String("log_level", cfg.App.LogLevel.String()))

	if !cfg.Summarizer.Enabled() {
		logger.Warn("summarizer API key is not set; summarize requests will fail")
	}

	// The store is the only hard dependency: no connection, no server.
	db, err := store.Open(cfg.Store.DSN)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer db.Close()
	logger.Info("Store connected", slog.String("dsn", cfg.Store.DSN))

	svc := newService(cfg, db)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: newHTTPHandler(cfg, svc, db),
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

func newService(cfg *Config, st store.NoteStore) *noteservice.Service {
	sum := summarizer.New(summarizer.Config{
		APIKey:  cfg.Summarizer.APIKey,
		BaseURL: cfg.Summarizer.BaseURL,
		Model:   cfg.Summarizer.Model,
	})
	return noteservice.NewService(st, sum)
}

// newHTTPHandler builds the top-level router: middleware, CORS, health
// checks and the API mounted under /api.
func newHTTPHandler(cfg *Config, svc *noteservice.Service, st store.NoteStore) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.App.HTTP.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := st.Ping(r.Context()); err != nil {
			slog.Error("readiness check failed", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Mount("/api", api.NewRouter(svc))

	return r
}
