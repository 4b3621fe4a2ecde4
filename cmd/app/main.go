package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/quill/internal"
	pkgconfig "github.com/starford/quill/pkg/config"
)

// loadConfig builds the configuration from defaults, the optional YAML file
// and any flags or environment variables that were set.
func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if _, err := pkgconfig.LoadIfExists(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cmd.IsSet("port") {
		cfg.App.HTTP.Port = int(cmd.Int("port"))
	}
	if cmd.IsSet("db") {
		cfg.Store.DSN = cmd.String("db")
	}
	if cmd.IsSet("summarizer-api-key") {
		cfg.Summarizer.APIKey = cmd.String("summarizer-api-key")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func serveMCP(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := internal.RunMCP(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("mcp run error: %w", err)
	}
	return nil
}

func runTUI(ctx context.Context, cmd *cli.Command) error {
	opts := []internal.Option{
		internal.WithServerURL(cmd.String("server")),
	}

	if path := cmd.String("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		opts = append(opts, internal.WithLogOutput(f))
	}

	if err := internal.RunTUI(ctx, opts...); err != nil {
		return fmt.Errorf("tui run error: %w", err)
	}
	return nil
}

// serverFlags are declared on the root command and inherited by serve and mcp.
func serverFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to config file (optional)",
			DefaultText: "config/config.yaml",
			Value:       "config/config.yaml",
			Sources:     cli.EnvVars("APP_CONFIG_FILE"),
		},
		&cli.IntFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Usage:   "HTTP port",
			Sources: cli.EnvVars("PORT"),
		},
		&cli.StringFlag{
			Name:    "db",
			Usage:   "SQLite database path for the note store",
			Sources: cli.EnvVars("QUILL_DB"),
		},
		&cli.StringFlag{
			Name:    "summarizer-api-key",
			Usage:   "Gemini API key; summaries are disabled when empty",
			Sources: cli.EnvVars("GEMINI_API_KEY"),
		},
	}
}

func main() {
	cmd := &cli.Command{
		Name:   "quill",
		Usage:  "Minimal notes service with AI summaries",
		Action: serve,
		Flags:  serverFlags(),
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API server",
				Action: serve,
			},
			{
				Name:   "mcp",
				Usage:  "Serve the note tools over MCP stdio",
				Action: serveMCP,
			},
			{
				Name:   "tui",
				Usage:  "Open the terminal client",
				Action: runTUI,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "server",
						Aliases: []string{"s"},
						Usage:   "Base URL of a running quill server",
						Value:   "http://localhost:5000",
						Sources: cli.EnvVars("QUILL_SERVER"),
					},
					&cli.StringFlag{
						Name:  "log-file",
						Usage: "Write client logs to this file",
					},
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
