// Package poster orchestrates the full pipeline: read the source image, plan
// and resize the canvas, split it into page-sized parts, save everything into
// the run's output tree and optionally assemble the printable PDF.
package poster

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/smaxiso/poster-maker/internal/config"
	"github.com/smaxiso/poster-maker/internal/files"
	"github.com/smaxiso/poster-maker/internal/imaging"
	"github.com/smaxiso/poster-maker/internal/layout"
	"github.com/smaxiso/poster-maker/internal/pdf"
)

// ErrUnreadableSource reports that the source image could not be opened or
// decoded.
var ErrUnreadableSource = errors.New("unreadable source image")

// Options selects the work for one run. Spec is required; zero-valued fields
// fall back to the configuration defaults.
type Options struct {
	Spec       layout.Spec
	DPI        int
	ResizeMode imaging.ResizeMode
	Format     string // output extension without dot; "" keeps the source format

	GeneratePDF      bool
	PDFOutput        string // overrides the default PDF path
	PreservePrevious bool   // rotate an existing parts directory aside
}

// PartResult describes one saved poster part.
type PartResult struct {
	Index  int
	Path   string
	Width  int
	Height int
}

// Summary reports what a run produced.
type Summary struct {
	SourcePath  string
	Source      imaging.Info
	CanvasW     int
	CanvasH     int
	Rows        int
	Cols        int
	ResizedPath string
	Parts       []PartResult
	PDF         *pdf.Result
	Elapsed     time.Duration
}

// Processor runs the poster pipeline with a fixed configuration.
type Processor struct {
	cfg   *config.Config
	files *files.Manager
}

// New builds a processor. The output tree root comes from the configuration's
// paths section.
func New(cfg *config.Config) *Processor {
	return &Processor{
		cfg:   cfg,
		files: &files.Manager{BaseOutputDir: cfg.Paths.BaseOutputDir},
	}
}

// Process converts the image at sourcePath into poster parts per opts. Parts
// and the resized reference image are written into the run's posters
// directory; the PDF, when requested, lands next to them.
func (p *Processor) Process(sourcePath string, opts Options) (*Summary, error) {
	start := time.Now()

	dpi := opts.DPI
	if dpi == 0 {
		dpi = p.cfg.Image.DefaultDPI
	}
	if err := config.ValidateDPI(dpi); err != nil {
		return nil, err
	}
	mode := opts.ResizeMode
	if mode == "" {
		mode = imaging.ResizeMaintain
	}
	if !imaging.ValidFormat(opts.Format) {
		return nil, fmt.Errorf("unsupported output format %q (supported: %s)",
			opts.Format, strings.Join(imaging.SupportedFormats, ", "))
	}

	img, info, err := imaging.Stat(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableSource, err)
	}
	log.Printf("Processing %s (%dx%d, %s)", filepath.Base(sourcePath), info.Width, info.Height, opts.Spec)

	page := p.cfg.PageSize()
	canvasW, canvasH, err := imaging.PlanCanvas(info.Width, info.Height, dpi, opts.Spec, page)
	if err != nil {
		return nil, err
	}

	run, err := p.files.Prepare(sourcePath, opts.Spec.Label(), opts.PreservePrevious)
	if err != nil {
		return nil, err
	}

	log.Printf("Resizing to %dx%d at %d DPI (%s)", canvasW, canvasH, dpi, mode)
	filter := imaging.ParseFilter(p.cfg.Image.ResamplingMethod)
	canvas, err := imaging.Resize(img, canvasW, canvasH, mode, filter)
	if err != nil {
		return nil, err
	}

	resizedPath := run.OutputPath(0, "_resized", opts.Format)
	if err := imaging.SaveOptimized(canvas, resizedPath); err != nil {
		return nil, fmt.Errorf("failed to save resized image: %w", err)
	}

	rows, cols := opts.Spec.Dims(info.Width, info.Height)
	tiles := imaging.Split(canvas, opts.Spec)

	summary := &Summary{
		SourcePath:  sourcePath,
		Source:      *info,
		CanvasW:     canvasW,
		CanvasH:     canvasH,
		Rows:        rows,
		Cols:        cols,
		ResizedPath: resizedPath,
		Parts:       make([]PartResult, 0, len(tiles)),
	}

	pdfParts := make([]pdf.Part, 0, len(tiles))
	for _, tile := range tiles {
		partPath := run.OutputPath(tile.Index, "", opts.Format)
		if err := imaging.SaveOptimized(tile.Image, partPath); err != nil {
			return nil, fmt.Errorf("failed to save part %d: %w", tile.Index, err)
		}
		b := tile.Image.Bounds()
		summary.Parts = append(summary.Parts, PartResult{
			Index: tile.Index, Path: partPath, Width: b.Dx(), Height: b.Dy(),
		})
		pdfParts = append(pdfParts, pdf.Part{
			Index:  tile.Index,
			Path:   partPath,
			Width:  b.Dx(),
			Height: b.Dy(),
			Box:    tile.Box,
			DPI:    dpi,
		})
	}
	log.Printf("Saved %d parts to %s", len(tiles), run.PostersDir)

	if opts.GeneratePDF {
		res, err := p.assemble(pdfParts, sourcePath, rows, cols, opts)
		if err != nil {
			return nil, err
		}
		summary.PDF = res
		log.Printf("Generated PDF %s (%d pages, %d bytes)", res.Path, res.Pages, res.SizeBytes)
	}

	summary.Elapsed = time.Since(start)
	return summary, nil
}

func (p *Processor) assemble(parts []pdf.Part, sourcePath string, rows, cols int, opts Options) (*pdf.Result, error) {
	arr := layout.GridArrangement(rows, cols)
	if opts.Spec.IsStrip() {
		arr.Direction = layout.DirectionVertical
		if rows == 1 {
			arr.Direction = layout.DirectionHorizontal
		}
	}

	asm := pdf.NewAssembler(p.cfg.PDF, p.cfg.PageSize())
	return asm.Generate(parts, pdf.Options{
		OutputPath:  opts.PDFOutput,
		Arrangement: arr,
		SourceName:  filepath.Base(sourcePath),
	})
}
