package utils

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Rows != 40 || cfg.Cols != 80 {
		t.Fatalf("default grid = %dx%d, expected 40x80", cfg.Rows, cfg.Cols)
	}
	if cfg.FrameRate != 250*time.Millisecond {
		t.Fatalf("default frame rate = %v, expected 250ms", cfg.FrameRate)
	}
	if cfg.RandomDensity != 0.5 {
		t.Fatalf("default density = %v, expected 0.5", cfg.RandomDensity)
	}
	if cfg.Seed != 0 || cfg.MaxGenerations != 0 {
		t.Fatal("seed and generation limit must default to their unset values")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"rows": 25, "cols": 50, "frame_rate": 100000000, "random_density": 0.3, "wrap": true}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Rows != 25 || cfg.Cols != 50 {
		t.Fatalf("loaded grid = %dx%d, expected 25x50", cfg.Rows, cfg.Cols)
	}
	if cfg.FrameRate != 100*time.Millisecond {
		t.Fatalf("loaded frame rate = %v, expected 100ms", cfg.FrameRate)
	}
	if !cfg.Wrap {
		t.Fatal("wrap flag from file was dropped")
	}
	// Fields absent from the file keep their defaults
	if cfg.StagnationThreshold != 5 {
		t.Fatalf("stagnation threshold = %d, expected default 5", cfg.StagnationThreshold)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
	// Callers fall back to the returned defaults
	if cfg.Rows != DefaultConfig().Rows {
		t.Fatalf("missing file did not return defaults, got rows=%d", cfg.Rows)
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error for malformed config JSON")
	}
}

func TestBindOverridesConfig(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	args := []string{
		"-rows", "12",
		"-cols", "34",
		"-rate", "50ms",
		"-density", "0.25",
		"-pattern", "glider.rle",
		"-seed", "99",
		"-wrap",
		"-generations", "200",
		"-stagnation", "0",
	}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	if cfg.Rows != 12 || cfg.Cols != 34 {
		t.Fatalf("flag grid = %dx%d, expected 12x34", cfg.Rows, cfg.Cols)
	}
	if cfg.FrameRate != 50*time.Millisecond {
		t.Fatalf("flag frame rate = %v, expected 50ms", cfg.FrameRate)
	}
	if cfg.RandomDensity != 0.25 {
		t.Fatalf("flag density = %v, expected 0.25", cfg.RandomDensity)
	}
	if cfg.PatternFile != "glider.rle" {
		t.Fatalf("flag pattern = %q, expected glider.rle", cfg.PatternFile)
	}
	if cfg.Seed != 99 || !cfg.Wrap || cfg.MaxGenerations != 200 || cfg.StagnationThreshold != 0 {
		t.Fatalf("remaining flags not applied: %+v", cfg)
	}
}

func TestBindKeepsUnsetValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 77

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-cols", "10"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	if cfg.Rows != 77 {
		t.Fatalf("unset flag clobbered rows: got %d, expected 77", cfg.Rows)
	}
	if cfg.Cols != 10 {
		t.Fatalf("cols flag not applied: got %d", cfg.Cols)
	}
}
