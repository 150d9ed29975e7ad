// Package config loads and validates poster-maker settings from a YAML file,
// falling back to built-in defaults when no file is given.
package config

import (
	"fmt"
	"log"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/smaxiso/poster-maker/internal/imaging"
)

// DPI limits for acceptable print output. Values below MinDPI print visibly
// soft; values above MaxDPI balloon memory and processing time.
const (
	MinDPI = 72
	MaxDPI = 1200
)

// Config is the full settings tree. Field names mirror the YAML schema.
type Config struct {
	Paths   Paths   `yaml:"paths"`
	Image   Image   `yaml:"image"`
	PDF     PDF     `yaml:"pdf"`
	Logging Logging `yaml:"logging"`
}

// Paths configures input and output directories.
type Paths struct {
	BaseOutputDir string `yaml:"base_output_dir"`
	InputDir      string `yaml:"input_dir"`
}

// Image configures the raster pipeline.
type Image struct {
	DefaultDPI       int     `yaml:"default_dpi"`
	DefaultParts     int     `yaml:"default_parts"`
	DefaultFormat    string  `yaml:"default_format"`
	ResamplingMethod string  `yaml:"resampling_method"`
	A4               A4Sizes `yaml:"a4"`
}

// A4Sizes carries the physical page size in both unit systems.
type A4Sizes struct {
	WidthInches  float64 `yaml:"width_inches"`
	HeightInches float64 `yaml:"height_inches"`
	WidthMM      float64 `yaml:"width_mm"`
	HeightMM     float64 `yaml:"height_mm"`
}

// PDF configures the document assembler.
type PDF struct {
	File         FileNaming   `yaml:"file"`
	Styling      Styling      `yaml:"styling"`
	Content      Content      `yaml:"content"`
	Features     Features     `yaml:"features"`
	Optimization Optimization `yaml:"optimization"`
}

// FileNaming controls the default PDF filename around the source basename.
type FileNaming struct {
	Prefix string `yaml:"prefix"`
	Suffix string `yaml:"suffix"`
}

// Styling holds fonts, sizes and colors for page decoration. Colors are hex
// strings like "#808080".
type Styling struct {
	FontName      string  `yaml:"font_name"`
	TitleSize     float64 `yaml:"title_size"`
	SubtitleSize  float64 `yaml:"subtitle_size"`
	MarginMM      float64 `yaml:"margin_mm"`
	CornerMarksMM float64 `yaml:"corner_marks_mm"`
	GridColor     string  `yaml:"grid_color"`
	MarkColor     string  `yaml:"mark_color"`
}

// Content toggles the informational texts on tile front pages.
type Content struct {
	TopText           string `yaml:"top_text"`
	AddTimestamp      bool   `yaml:"add_timestamp"`
	AddSourceFilename bool   `yaml:"add_source_filename"`
}

// Features toggles page elements. Each flag is independent; any subset may
// combine.
type Features struct {
	PageNumbers          bool `yaml:"page_numbers"`
	AssemblyAids         bool `yaml:"assembly_aids"`
	PartDimensions       bool `yaml:"part_dimensions"`
	GridOverlay          bool `yaml:"grid_overlay"`
	BleedMarks           bool `yaml:"bleed_marks"`
	AssemblyInstructions bool `yaml:"assembly_instructions"`
	DuplexBackPages      bool `yaml:"duplex_back_pages"`
}

// Optimization controls per-tile re-encoding when embedding into the PDF.
type Optimization struct {
	CompressImages          bool `yaml:"compress_images"`
	CompressionQuality      int  `yaml:"compression_quality"`
	DownsampleImages        bool `yaml:"downsample_images"`
	DownsampleResolutionDPI int  `yaml:"downsample_resolution_dpi"`
	UseJPEGCompression      bool `yaml:"use_jpeg_compression"`
}

// Logging configures log output.
type Logging struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the built-in configuration used when no settings file is
// available.
func Default() *Config {
	return &Config{
		Paths: Paths{
			BaseOutputDir: "data/image/output",
			InputDir:      "data/image/input",
		},
		Image: Image{
			DefaultDPI:       300,
			DefaultParts:     3,
			DefaultFormat:    "",
			ResamplingMethod: "LANCZOS",
			A4: A4Sizes{
				WidthInches:  8.27,
				HeightInches: 11.69,
				WidthMM:      210,
				HeightMM:     297,
			},
		},
		PDF: PDF{
			File: FileNaming{Prefix: "", Suffix: "_complete"},
			Styling: Styling{
				FontName:      "Helvetica",
				TitleSize:     12,
				SubtitleSize:  8,
				MarginMM:      5,
				CornerMarksMM: 10,
				GridColor:     "#808080",
				MarkColor:     "#000000",
			},
			Content: Content{
				TopText:           "^ TOP ^",
				AddTimestamp:      true,
				AddSourceFilename: true,
			},
			Features: Features{
				PageNumbers:    true,
				AssemblyAids:   true,
				PartDimensions: true,
			},
			Optimization: Optimization{
				CompressImages:          true,
				CompressionQuality:      90,
				DownsampleResolutionDPI: 300,
				UseJPEGCompression:      true,
			},
		},
		Logging: Logging{Level: "INFO", File: "poster_maker.log"},
	}
}

// Load reads a YAML settings file over the defaults, so omitted keys keep
// their default values. An empty path returns the defaults unchanged; a
// missing file logs a warning and falls back to the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Printf("warning: config file %s not found, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges. It is called by Load but exported so flag
// overrides can be re-checked.
func (c *Config) Validate() error {
	if err := ValidateDPI(c.Image.DefaultDPI); err != nil {
		return err
	}
	if p := c.Image.DefaultParts; p < 1 || p > 100 {
		return fmt.Errorf("invalid default_parts %d: must be between 1 and 100", p)
	}
	a4 := c.Image.A4
	for name, v := range map[string]float64{
		"a4.width_inches": a4.WidthInches, "a4.height_inches": a4.HeightInches,
		"a4.width_mm": a4.WidthMM, "a4.height_mm": a4.HeightMM,
	} {
		if v <= 0 {
			return fmt.Errorf("invalid %s %v: must be positive", name, v)
		}
	}
	if q := c.PDF.Optimization.CompressionQuality; q < 1 || q > 100 {
		return fmt.Errorf("invalid compression_quality %d: must be between 1 and 100", q)
	}
	if d := c.PDF.Optimization.DownsampleResolutionDPI; d <= 0 {
		return fmt.Errorf("invalid downsample_resolution_dpi %d: must be positive", d)
	}
	for name, s := range map[string]string{
		"grid_color": c.PDF.Styling.GridColor,
		"mark_color": c.PDF.Styling.MarkColor,
	} {
		if s == "" {
			continue
		}
		if _, err := colorful.Hex(s); err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, s, err)
		}
	}
	return nil
}

// ValidateDPI checks a DPI value against the printable range.
func ValidateDPI(dpi int) error {
	if dpi <= 0 {
		return fmt.Errorf("DPI must be positive, got %d", dpi)
	}
	if dpi < MinDPI {
		return fmt.Errorf("DPI too low for quality printing: %d (minimum %d)", dpi, MinDPI)
	}
	if dpi > MaxDPI {
		return fmt.Errorf("DPI extremely high, may cause performance issues: %d (maximum %d)", dpi, MaxDPI)
	}
	return nil
}

// PageSize converts the A4 settings into the imaging page size.
func (c *Config) PageSize() imaging.PageSize {
	return imaging.PageSize{
		WidthInches:  c.Image.A4.WidthInches,
		HeightInches: c.Image.A4.HeightInches,
		WidthMM:      c.Image.A4.WidthMM,
		HeightMM:     c.Image.A4.HeightMM,
	}
}

// RGB parses a hex color into 8-bit components, falling back to mid gray on
// empty or malformed input. Validate has already rejected malformed colors
// for loaded configs; the fallback covers hand-built ones.
func RGB(hex string) (r, g, b int) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 128, 128, 128
	}
	r8, g8, b8 := c.RGB255()
	return int(r8), int(g8), int(b8)
}
