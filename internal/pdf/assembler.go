package pdf

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/smaxiso/poster-maker/internal/config"
	"github.com/smaxiso/poster-maker/internal/imaging"
	"github.com/smaxiso/poster-maker/internal/layout"
)

// Part references one saved tile raster to be embedded into the document.
type Part struct {
	Index  int             // 1-based tile index
	Path   string          // saved raster file
	Width  int             // pixel width
	Height int             // pixel height
	Box    image.Rectangle // crop box on the canvas
	DPI    int             // nominal print DPI
}

// TileRenderError reports that a tile could not be embedded into the
// document. It is fatal to document generation as a whole.
type TileRenderError struct {
	Index int
	Err   error
}

func (e *TileRenderError) Error() string {
	return fmt.Sprintf("failed to render tile %d: %v", e.Index, e.Err)
}

func (e *TileRenderError) Unwrap() error { return e.Err }

// Options controls one Generate call.
type Options struct {
	// OutputPath overrides the default location, which is
	// <prefix><basename><suffix>.pdf next to the first part.
	OutputPath string

	// Arrangement supplies the known grid shape. The zero value makes the
	// assembler infer the layout from tile adjacency.
	Arrangement layout.Arrangement

	// SourceName names the original image in the document metadata.
	SourceName string
}

// Result describes the generated document.
type Result struct {
	Path      string
	Pages     int
	SizeBytes int64
	Features  []string
	CreatedAt time.Time
}

// Assembler renders poster parts into a paginated PDF.
type Assembler struct {
	cfg   config.PDF
	font  string
	pageW float64 // mm
	pageH float64 // mm
}

// NewAssembler builds an assembler for the given settings and page size.
func NewAssembler(cfg config.PDF, page imaging.PageSize) *Assembler {
	font := cfg.Styling.FontName
	if font == "" {
		font = "Helvetica"
	}
	return &Assembler{cfg: cfg, font: font, pageW: page.WidthMM, pageH: page.HeightMM}
}

// Generate renders all parts into a single document following the explicit
// page sequence. Any tile that cannot be opened or embedded fails the whole
// document with a TileRenderError; nothing is written in that case.
func (a *Assembler) Generate(parts []Part, opts Options) (*Result, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("no parts to assemble")
	}
	n := len(parts)

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = a.defaultOutputPath(parts[0].Path)
	}

	arr := opts.Arrangement
	if arr.Rows < 1 || arr.Cols < 1 {
		boxes := make([]image.Rectangle, len(parts))
		for i, p := range parts {
			boxes[i] = p.Box
		}
		arr = layout.InferArrangement(n, boxes)
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: a.pageW, Ht: a.pageH},
	})
	doc.SetAutoPageBreak(false, 0)

	now := time.Now()
	titleName := opts.SourceName
	if titleName == "" {
		titleName = filepath.Base(outputPath)
	}
	doc.SetTitle("Poster Parts - "+titleName, true)
	doc.SetAuthor("Poster Maker Tool", true)
	doc.SetSubject("Multi-part poster for printing", true)
	doc.SetKeywords("poster,print,multi-page", true)
	doc.SetCreationDate(now)

	features := a.cfg.Features
	for _, page := range layout.PageSequence(n, features.AssemblyInstructions, features.DuplexBackPages) {
		doc.AddPage()
		switch page.Kind {
		case layout.PageInstructions:
			a.instructionsPage(doc, n, arr)
		case layout.PageBlankFiller:
			a.blankPage(doc, "This page intentionally left blank for duplex printing")
		case layout.PageTileFront:
			if err := a.tileFrontPage(doc, parts[page.Tile-1], n, now); err != nil {
				return nil, err
			}
		case layout.PageTileBack:
			a.tileBackPage(doc, page.Tile, n, arr)
		}
		if doc.Err() {
			return nil, &TileRenderError{Index: page.Tile, Err: doc.Error()}
		}
	}

	if err := doc.OutputFileAndClose(outputPath); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}

	res := &Result{
		Path:      outputPath,
		Pages:     layout.PageCount(n, features.AssemblyInstructions, features.DuplexBackPages),
		Features:  EnabledFeatures(features),
		CreatedAt: now,
	}
	if st, err := os.Stat(outputPath); err == nil {
		res.SizeBytes = st.Size()
	}
	return res, nil
}

// defaultOutputPath derives the document path from the first part's
// location: the part suffix is stripped from the basename and the configured
// prefix/suffix wrap the result.
func (a *Assembler) defaultOutputPath(firstPartPath string) string {
	dir := filepath.Dir(firstPartPath)
	base := filepath.Base(firstPartPath)
	name, _, _ := strings.Cut(base, "_part")
	return filepath.Join(dir, a.cfg.File.Prefix+name+a.cfg.File.Suffix+".pdf")
}

// tileFrontPage embeds one tile raster scaled to fit inside the page margin
// and centered, then draws the configured overlays on top.
func (a *Assembler) tileFrontPage(doc *fpdf.Fpdf, part Part, total int, now time.Time) error {
	imgPath := part.Path
	imgW, imgH := part.Width, part.Height

	opt := a.cfg.Optimization
	if opt.CompressImages {
		img, err := imaging.Open(part.Path)
		if err != nil {
			return &TileRenderError{Index: part.Index, Err: err}
		}
		tmpPath, w, h, cleanup, err := CompressTile(img, part.Index, part.DPI, opt)
		if err != nil {
			return &TileRenderError{Index: part.Index, Err: err}
		}
		defer cleanup()
		imgPath, imgW, imgH = tmpPath, w, h
	} else if _, err := os.Stat(imgPath); err != nil {
		return &TileRenderError{Index: part.Index, Err: err}
	}
	if imgW <= 0 || imgH <= 0 {
		return &TileRenderError{Index: part.Index, Err: fmt.Errorf("%w: %dx%d", imaging.ErrInvalidDimensions, imgW, imgH)}
	}

	margin := a.cfg.Styling.MarginMM
	availW := a.pageW - 2*margin
	availH := a.pageH - 2*margin
	scale := min(availW/float64(imgW), availH/float64(imgH))
	drawW := float64(imgW) * scale
	drawH := float64(imgH) * scale
	x := (a.pageW - drawW) / 2
	y := (a.pageH - drawH) / 2

	doc.ImageOptions(imgPath, x, y, drawW, drawH, false, fpdf.ImageOptions{}, 0, "")
	if doc.Err() {
		err := doc.Error()
		return &TileRenderError{Index: part.Index, Err: err}
	}

	a.decorate(doc, part, total, now)
	return nil
}

// blankPage draws a centered gray note on an otherwise empty page.
func (a *Assembler) blankPage(doc *fpdf.Fpdf, message string) {
	doc.SetFont(a.font, "", 10)
	doc.SetTextColor(128, 128, 128)
	w := doc.GetStringWidth(message)
	doc.Text((a.pageW-w)/2, a.pageH/2, message)
	doc.SetTextColor(0, 0, 0)
}

// centeredText draws txt horizontally centered at baseline y using the
// current font.
func (a *Assembler) centeredText(doc *fpdf.Fpdf, y float64, txt string) {
	w := doc.GetStringWidth(txt)
	doc.Text((a.pageW-w)/2, y, txt)
}

// EnabledFeatures lists the human-readable names of the enabled document
// features, for run summaries.
func EnabledFeatures(f config.Features) []string {
	var out []string
	add := func(on bool, name string) {
		if on {
			out = append(out, name)
		}
	}
	add(f.PageNumbers, "Page numbers")
	add(f.AssemblyAids, "Assembly aids")
	add(f.PartDimensions, "Part dimensions")
	add(f.GridOverlay, "Grid overlay")
	add(f.BleedMarks, "Bleed marks")
	add(f.AssemblyInstructions, "Assembly instructions")
	add(f.DuplexBackPages, "Duplex back pages")
	return out
}
