// Package files manages the on-disk output structure for poster runs:
//
//	<base>/<name>_poster/
//	    original/<source file copy>
//	    posters_<label>/<name>_part<N>.<ext>, <name>_resized.<ext>, ...
//
// where <label> encodes the layout ("3x3" for grids, the part count for
// strips), so runs with different layouts land in separate directories.
package files

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Manager creates and names output locations for one poster run.
type Manager struct {
	// BaseOutputDir is the root under which per-image output trees are
	// created. Relative paths resolve against the working directory.
	BaseOutputDir string
}

// RunPaths describes the directory layout prepared for a run.
type RunPaths struct {
	PostersDir string // directory receiving parts, resized image and PDF
	Filename   string // source basename without extension
	Ext        string // source extension with dot
}

// Prepare builds the output directory structure for imagePath. label keys
// the parts directory by layout. When preserve is true and a previous run's
// directory exists, it is rotated aside to old_posters_<label>_<timestamp>
// instead of being overwritten. The source image is copied once into
// original/ for reference.
func (m *Manager) Prepare(imagePath, label string, preserve bool) (*RunPaths, error) {
	basename := filepath.Base(imagePath)
	ext := filepath.Ext(basename)
	filename := strings.TrimSuffix(basename, ext)

	baseDir := m.BaseOutputDir
	if baseDir == "" {
		baseDir = "."
	}
	outputBase := filepath.Join(baseDir, filename+"_poster")
	originalDir := filepath.Join(outputBase, "original")
	postersDir := filepath.Join(outputBase, "posters_"+label)

	if preserve {
		if _, err := os.Stat(postersDir); err == nil {
			stamp := time.Now().Format("20060102_150405")
			oldDir := filepath.Join(outputBase, fmt.Sprintf("old_posters_%s_%s", label, stamp))
			if err := os.MkdirAll(oldDir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to preserve previous output: %w", err)
			}
			log.Printf("Moving existing posters to %s", oldDir)
			if err := os.Rename(postersDir, filepath.Join(oldDir, "posters")); err != nil {
				return nil, fmt.Errorf("failed to preserve previous output: %w", err)
			}
		}
	}

	if err := os.MkdirAll(originalDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directories: %w", err)
	}
	if err := os.MkdirAll(postersDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directories: %w", err)
	}

	originalCopy := filepath.Join(originalDir, basename)
	if _, err := os.Stat(originalCopy); os.IsNotExist(err) {
		if err := copyFile(imagePath, originalCopy); err != nil {
			return nil, fmt.Errorf("failed to copy original image: %w", err)
		}
	}

	return &RunPaths{PostersDir: postersDir, Filename: filename, Ext: ext}, nil
}

// OutputPath builds a file path inside the posters directory.
// part > 0 yields "<name>_part<N><suffix><ext>"; part == 0 yields
// "<name><suffix><ext>". A non-empty format overrides the extension.
func (p *RunPaths) OutputPath(part int, suffix, format string) string {
	ext := p.Ext
	if format != "" {
		ext = "." + format
	}
	name := p.Filename
	if part > 0 {
		name = fmt.Sprintf("%s_part%d", p.Filename, part)
	}
	return filepath.Join(p.PostersDir, name+suffix+ext)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
