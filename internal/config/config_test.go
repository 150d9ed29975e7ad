package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Image.DefaultDPI != 300 {
		t.Errorf("default DPI = %d, want 300", cfg.Image.DefaultDPI)
	}
	if cfg.PDF.File.Suffix != "_complete" {
		t.Errorf("default PDF suffix = %q", cfg.PDF.File.Suffix)
	}
	if !cfg.PDF.Features.PageNumbers || cfg.PDF.Features.DuplexBackPages {
		t.Errorf("unexpected default features: %+v", cfg.PDF.Features)
	}
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if cfg.Image.DefaultDPI != 300 {
		t.Errorf("DPI = %d, want default 300", cfg.Image.DefaultDPI)
	}
}

func TestLoad_OverridesKeepOmittedDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := strings.Join([]string{
		"image:",
		"  default_dpi: 150",
		"pdf:",
		"  features:",
		"    duplex_back_pages: true",
	}, "\n")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Image.DefaultDPI != 150 {
		t.Errorf("DPI = %d, want 150", cfg.Image.DefaultDPI)
	}
	if !cfg.PDF.Features.DuplexBackPages {
		t.Error("duplex_back_pages not applied")
	}
	// Keys the file omits keep their defaults.
	if cfg.Image.A4.WidthMM != 210 {
		t.Errorf("a4 width = %v, want default 210", cfg.Image.A4.WidthMM)
	}
	if cfg.PDF.Styling.FontName != "Helvetica" {
		t.Errorf("font = %q, want default Helvetica", cfg.PDF.Styling.FontName)
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"dpi too low", "image:\n  default_dpi: 10"},
		{"dpi too high", "image:\n  default_dpi: 2000"},
		{"parts out of range", "image:\n  default_parts: 500"},
		{"bad quality", "pdf:\n  optimization:\n    compression_quality: 0"},
		{"bad color", "pdf:\n  styling:\n    grid_color: notacolor"},
		{"negative a4", "image:\n  a4:\n    width_mm: -1"},
	}
	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "settings.yaml")
		if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: Load accepted invalid config", tt.name)
		}
	}
}

func TestLoad_MissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load of missing file: %v", err)
	}
	if cfg.Image.DefaultDPI != 300 {
		t.Errorf("DPI = %d, want default 300", cfg.Image.DefaultDPI)
	}
}

func TestValidateDPI(t *testing.T) {
	for _, dpi := range []int{72, 300, 600, 1200} {
		if err := ValidateDPI(dpi); err != nil {
			t.Errorf("ValidateDPI(%d): %v", dpi, err)
		}
	}
	for _, dpi := range []int{0, -1, 71, 1201} {
		if err := ValidateDPI(dpi); err == nil {
			t.Errorf("ValidateDPI(%d) accepted, want error", dpi)
		}
	}
}

func TestRGB(t *testing.T) {
	r, g, b := RGB("#ff8000")
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("RGB(#ff8000) = (%d,%d,%d)", r, g, b)
	}
	// Malformed input falls back to gray.
	r, g, b = RGB("")
	if r != 128 || g != 128 || b != 128 {
		t.Errorf("RGB fallback = (%d,%d,%d), want gray", r, g, b)
	}
}
