package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type sample struct {
	Name string `yaml:"name"`
	Port int    `yaml:"port"`
}

func (s *sample) Validate() error {
	if s.Port <= 0 {
		return errors.New("port must be positive")
	}
	return nil
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("QUILL_TEST_NAME", "from-env")
	path := writeFile(t, "name: ${QUILL_TEST_NAME}\nport: 7000\n")

	s := sample{}
	if err := Load(path, &s); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Name != "from-env" || s.Port != 7000 {
		t.Errorf("loaded = %+v", s)
	}
}

func TestLoad_RunsValidator(t *testing.T) {
	path := writeFile(t, "name: x\nport: 0\n")
	if err := Load(path, &sample{}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadIfExists_MissingKeepsDefaults(t *testing.T) {
	s := sample{Name: "default", Port: 1}
	ok, err := LoadIfExists(filepath.Join(t.TempDir(), "nope.yaml"), &s)
	if err != nil {
		t.Fatalf("LoadIfExists: %v", err)
	}
	if ok {
		t.Error("missing file reported as loaded")
	}
	if s.Name != "default" || s.Port != 1 {
		t.Errorf("defaults changed: %+v", s)
	}
}

func TestLoadIfExists_OverridesDefaults(t *testing.T) {
	path := writeFile(t, "port: 9000\n")
	s := sample{Name: "default", Port: 1}
	ok, err := LoadIfExists(path, &s)
	if err != nil || !ok {
		t.Fatalf("LoadIfExists = %v, %v", ok, err)
	}
	if s.Name != "default" || s.Port != 9000 {
		t.Errorf("loaded = %+v", s)
	}
}
