package internal

import (
	"strings"
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should pass: %v", err)
	}
	if cfg.App.HTTP.Port != 5000 {
		t.Errorf("default port = %d, want 5000", cfg.App.HTTP.Port)
	}
	if cfg.Summarizer.Enabled() {
		t.Error("summarizer should be disabled without an API key")
	}
}

func TestHTTPConfig_PortRange(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := HTTPConfig{Port: port}
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d should fail validation", port)
		}
	}
	cfg := HTTPConfig{Port: 8080}
	if got := cfg.Address(); got != ":8080" {
		t.Errorf("Address() = %q", got)
	}
}

func TestStoreConfig_DSNRequired(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Store.DSN = ""
	err := cfg.Validate()
	if err == nil {
		t.Fatal("empty dsn should fail validation")
	}
	if !strings.Contains(err.Error(), "cannot be blank") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSummarizerConfig_Enabled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Summarizer.APIKey = "secret"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config with key should pass: %v", err)
	}
	if !cfg.Summarizer.Enabled() {
		t.Error("summarizer should be enabled with an API key")
	}
}

func TestSummarizerConfig_InvalidBaseURL(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Summarizer.BaseURL = "not a url"
	if err := cfg.Validate(); err == nil {
		t.Fatal("invalid base url should fail validation")
	}
}
