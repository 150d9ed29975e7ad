package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSource(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "sunset.png")
	if err := os.WriteFile(path, []byte("fake image bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPrepare_CreatesStructure(t *testing.T) {
	base := t.TempDir()
	src := writeSource(t, t.TempDir())

	m := &Manager{BaseOutputDir: base}
	paths, err := m.Prepare(src, "3x3", false)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}

	if paths.Filename != "sunset" || paths.Ext != ".png" {
		t.Errorf("paths = %+v", paths)
	}
	wantDir := filepath.Join(base, "sunset_poster", "posters_3x3")
	if paths.PostersDir != wantDir {
		t.Errorf("PostersDir = %s, want %s", paths.PostersDir, wantDir)
	}
	if _, err := os.Stat(wantDir); err != nil {
		t.Errorf("posters dir not created: %v", err)
	}

	// The original is copied once for reference.
	copyPath := filepath.Join(base, "sunset_poster", "original", "sunset.png")
	data, err := os.ReadFile(copyPath)
	if err != nil {
		t.Fatalf("original copy missing: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Error("original copy content mismatch")
	}
}

func TestPrepare_StripLabel(t *testing.T) {
	base := t.TempDir()
	src := writeSource(t, t.TempDir())

	m := &Manager{BaseOutputDir: base}
	paths, err := m.Prepare(src, "4", false)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if filepath.Base(paths.PostersDir) != "posters_4" {
		t.Errorf("PostersDir = %s, want posters_4 leaf", paths.PostersDir)
	}
}

func TestPrepare_PreservePrevious(t *testing.T) {
	base := t.TempDir()
	src := writeSource(t, t.TempDir())
	m := &Manager{BaseOutputDir: base}

	paths, err := m.Prepare(src, "2x2", false)
	if err != nil {
		t.Fatal(err)
	}
	marker := filepath.Join(paths.PostersDir, "old_part.png")
	if err := os.WriteFile(marker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := m.Prepare(src, "2x2", true); err != nil {
		t.Fatalf("Prepare with preserve: %v", err)
	}

	// The previous run was rotated aside, and the fresh dir is empty.
	if _, err := os.Stat(marker); !os.IsNotExist(err) {
		t.Error("previous output not moved out of posters dir")
	}
	entries, err := os.ReadDir(filepath.Join(base, "sunset_poster"))
	if err != nil {
		t.Fatal(err)
	}
	foundOld := false
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), "old_posters_2x2_") {
			foundOld = true
			old := filepath.Join(base, "sunset_poster", e.Name(), "posters", "old_part.png")
			if _, err := os.Stat(old); err != nil {
				t.Errorf("rotated content missing: %v", err)
			}
		}
	}
	if !foundOld {
		t.Error("no old_posters_2x2_* directory created")
	}
}

func TestPrepare_OverwriteWithoutPreserve(t *testing.T) {
	base := t.TempDir()
	src := writeSource(t, t.TempDir())
	m := &Manager{BaseOutputDir: base}

	paths, _ := m.Prepare(src, "2", false)
	marker := filepath.Join(paths.PostersDir, "stale.png")
	os.WriteFile(marker, []byte("x"), 0o644)

	if _, err := m.Prepare(src, "2", false); err != nil {
		t.Fatalf("second Prepare: %v", err)
	}
	// Without preserve the directory is reused in place.
	if _, err := os.Stat(marker); err != nil {
		t.Errorf("existing dir should be reused: %v", err)
	}
}

func TestOutputPath(t *testing.T) {
	p := &RunPaths{PostersDir: "/out", Filename: "sunset", Ext: ".png"}

	tests := []struct {
		part   int
		suffix string
		format string
		want   string
	}{
		{3, "", "", "/out/sunset_part3.png"},
		{0, "_resized", "", "/out/sunset_resized.png"},
		{1, "", "jpg", "/out/sunset_part1.jpg"},
		{0, "_resized", "jpg", "/out/sunset_resized.jpg"},
	}
	for _, tt := range tests {
		got := p.OutputPath(tt.part, tt.suffix, tt.format)
		if got != filepath.FromSlash(tt.want) {
			t.Errorf("OutputPath(%d,%q,%q) = %s, want %s", tt.part, tt.suffix, tt.format, got, tt.want)
		}
	}
}
