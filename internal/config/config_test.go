package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-html2md/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if cfg.Output.Extension != config.DefaultExtension {
		t.Errorf("Extension = %q, want %q", cfg.Output.Extension, config.DefaultExtension)
	}
	if cfg.Output.Dir != "" || cfg.Preview.Enabled {
		t.Errorf("Default() = %+v, want zero output dir and disabled preview", cfg)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
input:
  defaultDir: /srv/html
output:
  dir: /srv/md
  extension: markdown
preview:
  enabled: true
  dir: /srv/preview
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Input.DefaultDir != "/srv/html" {
		t.Errorf("Input.DefaultDir = %q", cfg.Input.DefaultDir)
	}
	if cfg.Output.Dir != "/srv/md" || cfg.Output.Extension != "markdown" {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if !cfg.Preview.Enabled || cfg.Preview.Dir != "/srv/preview" {
		t.Errorf("Preview = %+v", cfg.Preview)
	}
}

func TestLoadDefaultsExtension(t *testing.T) {
	path := writeConfig(t, "output:\n  dir: /srv/md\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Output.Extension != config.DefaultExtension {
		t.Errorf("Extension = %q, want default", cfg.Output.Extension)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Errorf("Load() = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, "outputt:\n  dir: /srv/md\n")

	if _, err := config.Load(path); !errors.Is(err, config.ErrConfigParse) {
		t.Errorf("Load() = %v, want ErrConfigParse for unknown field", err)
	}
}

func TestLoadRejectsBadExtension(t *testing.T) {
	path := writeConfig(t, "output:\n  extension: md/../..\n")

	if _, err := config.Load(path); err == nil {
		t.Error("Load() should reject extensions with path separators")
	}
}
