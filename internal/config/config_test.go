package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OutputDir != "output" || cfg.LogLevel != "info" || cfg.Resolution != 1000 || cfg.PlotFormat != "png" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("GORED_OUTPUT_DIR", "plots")
	t.Setenv("GORED_RESOLUTION", "500")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OutputDir != "plots" || cfg.Resolution != 500 {
		t.Fatalf("expected plots/500, got %s/%d", cfg.OutputDir, cfg.Resolution)
	}
}

func TestLoadDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("GORED_PLOT_FORMAT=svg\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// t.Setenv registers the cleanup for the variable godotenv sets.
	t.Setenv("GORED_PLOT_FORMAT", "")
	os.Unsetenv("GORED_PLOT_FORMAT")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PlotFormat != "svg" {
		t.Fatalf("expected svg from dotenv, got %s", cfg.PlotFormat)
	}
}

func TestLoadErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	t.Setenv("GORED_RESOLUTION", "fine")
	_, err := Load(missing)
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}

	t.Setenv("GORED_RESOLUTION", "-5")
	if _, err := Load(missing); err == nil {
		t.Fatal("expected error for negative resolution")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("parse %q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
