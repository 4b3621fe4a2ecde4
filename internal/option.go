package internal

import (
	"fmt"
	"io"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config    *Config
	serverURL string
	logOutput io.Writer
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithServerURL sets the API base URL the terminal client talks to.
func WithServerURL(url string) Option {
	return func(a *application) {
		a.serverURL = url
	}
}

// WithLogOutput redirects structured logs. Run defaults to stdout, RunMCP
// to stderr, and RunTUI discards logs unless this is set.
func WithLogOutput(w io.Writer) Option {
	return func(a *application) {
		a.logOutput = w
	}
}

func newApplication(opts []Option) (*application, error) {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := app.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return app, nil
}
