package imwin_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-theft-auto/imwin"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "imwin.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
title: editor
width: 1024
theme: light
background: 0x10203040
scheduler:
  input_linger: 250ms
`)

	cfg, err := imwin.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Title != "editor" || cfg.Width != 1024 {
		t.Errorf("Expected editor 1024, got %q %d", cfg.Title, cfg.Width)
	}
	if cfg.Height != imwin.DefaultConfig().Height {
		t.Errorf("Expected default height kept, got %d", cfg.Height)
	}
	if cfg.Theme != imwin.ThemeLight {
		t.Errorf("Expected light theme, got %s", cfg.Theme)
	}
	if cfg.Scheduler.InputLinger != 250*time.Millisecond {
		t.Errorf("Expected 250ms linger, got %v", cfg.Scheduler.InputLinger)
	}
	if cfg.Scheduler.InputFrames != imwin.DefaultInputFrames {
		t.Errorf("Expected default frame count, got %d", cfg.Scheduler.InputFrames)
	}
	if !cfg.VSync || !cfg.PreferHardware {
		t.Error("Expected vsync and hardware defaults kept")
	}

	bg, ok := cfg.BackgroundColor()
	if !ok {
		t.Fatal("Expected a background color")
	}
	if r, g, b, a := bg.RGBA8(); r != 0x10 || g != 0x20 || b != 0x30 || a != 0x40 {
		t.Errorf("Expected (16, 32, 48, 64), got (%d, %d, %d, %d)", r, g, b, a)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad theme", "theme: neon\n", "unknown theme"},
		{"bad size", "width: 0\n", "invalid window size"},
		{"negative linger", "scheduler:\n  input_linger: -1s\n", "negative input_linger"},
		{"bad yaml", "width: [\n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := imwin.LoadConfig(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := imwin.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
}

func TestConfig_ContextOptions(t *testing.T) {
	cfg := imwin.DefaultConfig()
	if len(cfg.ContextOptions()) != 2 {
		t.Errorf("Expected theme and background options, got %d", len(cfg.ContextOptions()))
	}

	cfg.Background = 0
	if _, ok := cfg.BackgroundColor(); ok {
		t.Error("Expected no background for 0")
	}
	if len(cfg.ContextOptions()) != 1 {
		t.Errorf("Expected only the theme option, got %d", len(cfg.ContextOptions()))
	}
}
