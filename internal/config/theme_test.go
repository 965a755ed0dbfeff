package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestThemeFileLoading(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	themeContent := []byte(`theme:
  accent: "#FF0000"
  lifted_border: "#00FF00"
`)
	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(themePath, themeContent, 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv("FLEETBOARD_THEME_FILE", themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.LiftedBorder != "#00FF00" {
		t.Errorf("Expected lifted border to be #00FF00, got %s", cfg.ColorScheme.LiftedBorder)
	}
	if cfg.ColorScheme.PriorityHigh == "" {
		t.Error("Expected priority_high to have default value")
	}
}

func TestMonochromePreset(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(themePath, []byte("theme:\n  preset: monochrome\n"), 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	t.Setenv("FLEETBOARD_THEME_FILE", themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Preset != "monochrome" {
		t.Errorf("Preset = %s, want monochrome", cfg.ColorScheme.Preset)
	}
	if cfg.ColorScheme.Accent != "#FFFFFF" {
		t.Errorf("Accent = %s, want default preset's values to be replaced by monochrome", cfg.ColorScheme.Accent)
	}
}
