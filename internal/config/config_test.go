package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 960 || cfg.Window.Height != 720 {
		t.Errorf("default window %dx%d, want 960x720", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Viewport.AutoRotate {
		t.Error("auto rotate should default on")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level %q, want info", cfg.Logging.Level)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.yml")
	body := `
window:
  width: 1280
viewport:
  auto_rotate: false
  rotate_speed: 1.5
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 1280 {
		t.Errorf("width %d, want 1280 from file", cfg.Window.Width)
	}
	// Fields the file omits keep their defaults.
	if cfg.Window.Height != 720 {
		t.Errorf("height %d, want default 720", cfg.Window.Height)
	}
	if cfg.Viewport.AutoRotate {
		t.Error("file disabled auto rotate")
	}
	if cfg.Viewport.RotateSpeed != 1.5 {
		t.Errorf("rotate speed %g, want 1.5", cfg.Viewport.RotateSpeed)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoadInvalidValues(t *testing.T) {
	cases := []struct {
		name, body string
	}{
		{"zero width", "window:\n  width: -1\n"},
		{"negative rotate speed", "viewport:\n  rotate_speed: -0.5\n"},
		{"zero supersample", "viewport:\n  supersample: 0\n"},
	}
	for _, c := range cases {
		path := filepath.Join(t.TempDir(), "bad.yml")
		if err := os.WriteFile(path, []byte(c.body), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}
