package imaging

import (
	"errors"
	"fmt"

	"github.com/smaxiso/poster-maker/internal/layout"
)

// ErrInvalidDimensions reports a zero or negative width or height at any
// pipeline stage.
var ErrInvalidDimensions = errors.New("invalid dimensions")

// PageSize is the physical size of one output page in device-independent
// units. The inch values drive pixel geometry; the mm values drive the PDF
// page box.
type PageSize struct {
	WidthInches  float64
	HeightInches float64
	WidthMM      float64
	HeightMM     float64
}

// A4 is the default page size.
var A4 = PageSize{WidthInches: 8.27, HeightInches: 11.69, WidthMM: 210, HeightMM: 297}

// CellPixels returns the pixel size of one page cell at the given DPI,
// truncating to whole pixels.
func (p PageSize) CellPixels(dpi int) (w, h int) {
	return int(p.WidthInches * float64(dpi)), int(p.HeightInches * float64(dpi))
}

// PlanCanvas computes the canvas size in pixels that makes the resized image
// divide into page-sized cells at the target DPI.
//
// Grid mode multiplies the floored cell size by cols and rows, so every cell
// is exactly one page; the canvas deliberately takes the grid's aspect ratio,
// not the source's (aspect handling belongs to Resize). Strip mode scales the
// dominant axis by the part count and derives the cross axis from the source
// aspect ratio, so strips stay undistorted.
func PlanCanvas(srcW, srcH, dpi int, spec layout.Spec, page PageSize) (w, h int, err error) {
	if srcW <= 0 || srcH <= 0 {
		return 0, 0, fmt.Errorf("%w: source %dx%d", ErrInvalidDimensions, srcW, srcH)
	}
	cellW, cellH := page.CellPixels(dpi)

	if !spec.IsStrip() {
		rows, cols := spec.Grid()
		return cellW * cols, cellH * rows, nil
	}

	parts := spec.Tiles()
	aspect := float64(srcW) / float64(srcH)
	if srcW > srcH {
		w = cellW * parts
		h = int(float64(w) / aspect)
	} else {
		h = cellH * parts
		w = int(float64(h) * aspect)
	}
	return w, h, nil
}
