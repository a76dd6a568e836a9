package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/imposa/geom"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Gap != 20 {
		t.Errorf("Gap = %v, want 20", cfg.Gap)
	}
	if cfg.Layout != "side-by-side" {
		t.Errorf("Layout = %q, want side-by-side", cfg.Layout)
	}
	if cfg.SizeFactor != 1.0 {
		t.Errorf("SizeFactor = %v, want 1.0", cfg.SizeFactor)
	}
	if cfg.PageSize != "" {
		t.Errorf("PageSize = %q, want empty (per-tool default)", cfg.PageSize)
	}
	if layout, err := cfg.Orientation(); err != nil || layout != geom.SideBySide {
		t.Errorf("Orientation() = %v, %v; want SideBySide", layout, err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "imposa.yaml")

	cfg := Default()
	cfg.Gap = 30
	cfg.Layout = "top-bottom-3"
	cfg.PageSize = "letter"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Gap != 30 || loaded.Layout != "top-bottom-3" || loaded.PageSize != "letter" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
	if size, err := loaded.Sheet(); err != nil || size != geom.PageSizeLetter {
		t.Errorf("Sheet() = %v, %v; want Letter", size, err)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("gap: 12\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Gap != 12 {
		t.Errorf("Gap = %v, want 12", cfg.Gap)
	}
	if cfg.Layout != "side-by-side" {
		t.Errorf("Layout = %q, want default side-by-side", cfg.Layout)
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	if err != nil || cfg.Gap != 20 {
		t.Errorf("empty path should return defaults, got %+v, %v", cfg, err)
	}

	cfg, err = LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil || cfg.Gap != 20 {
		t.Errorf("missing file should return defaults, got %+v, %v", cfg, err)
	}
}

func TestSheetUnsupported(t *testing.T) {
	cfg := Default()
	cfg.PageSize = "tabloid"
	if _, err := cfg.Sheet(); err == nil {
		t.Error("unsupported page size should fail")
	}
}
