package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/starford/quill/internal"
)

// clearEnv unsets the config variables for the test and restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"APP_CONFIG_FILE", "PORT", "QUILL_DB", "GEMINI_API_KEY"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `app:
  http:
    port: 6000
store:
  dsn: yaml.db
summarizer:
  model: yaml-model
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// runLoadConfig runs a root command carrying the server flags and returns
// the configuration its action loaded.
func runLoadConfig(t *testing.T, args ...string) (*internal.Config, error) {
	t.Helper()
	var cfg *internal.Config
	cmd := &cli.Command{
		Name:  "quill",
		Flags: serverFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			var err error
			cfg, err = loadConfig(cmd)
			return err
		},
	}
	err := cmd.Run(context.Background(), append([]string{"quill"}, args...))
	return cfg, err
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	clearEnv(t)
	cfg, err := runLoadConfig(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.App.HTTP.Port != 5000 || cfg.Store.DSN != "./quill.db" {
		t.Errorf("port = %d, dsn = %q, want defaults", cfg.App.HTTP.Port, cfg.Store.DSN)
	}
	if cfg.Summarizer.Enabled() {
		t.Error("summarizer should be disabled without a key")
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := runLoadConfig(t, "--config", writeConfig(t))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.App.HTTP.Port != 6000 || cfg.Store.DSN != "yaml.db" {
		t.Errorf("port = %d, dsn = %q, want file values", cfg.App.HTTP.Port, cfg.Store.DSN)
	}
	if cfg.Summarizer.BaseURL == "" {
		t.Error("base URL default should survive a file that omits it")
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t)
	t.Setenv("PORT", "7000")
	t.Setenv("QUILL_DB", "env.db")
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg, err := runLoadConfig(t, "--config", path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.App.HTTP.Port != 7000 || cfg.Store.DSN != "env.db" {
		t.Errorf("port = %d, dsn = %q, want env values", cfg.App.HTTP.Port, cfg.Store.DSN)
	}
	if cfg.Summarizer.APIKey != "env-key" {
		t.Errorf("api key = %q", cfg.Summarizer.APIKey)
	}
	if cfg.Summarizer.Model != "yaml-model" {
		t.Errorf("model = %q, want file value", cfg.Summarizer.Model)
	}
}

func TestLoadConfig_FlagOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")

	cfg, err := runLoadConfig(t, "--config", writeConfig(t), "--port", "8000", "--db", "flag.db")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.App.HTTP.Port != 8000 || cfg.Store.DSN != "flag.db" {
		t.Errorf("port = %d, dsn = %q, want flag values", cfg.App.HTTP.Port, cfg.Store.DSN)
	}
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	clearEnv(t)
	if _, err := runLoadConfig(t, "--config", writeConfig(t), "--port", "70000"); err == nil {
		t.Fatal("out-of-range port should fail validation")
	}
}
