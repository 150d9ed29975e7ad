package layout

import (
	"fmt"
	"regexp"
	"strconv"
)

// Validation limits for poster layouts.
const (
	// MaxParts is the maximum number of parts in strip mode.
	MaxParts = 100

	// MaxGridDim is the maximum number of rows or columns in grid mode.
	MaxGridDim = 20

	// MaxGridPages is the maximum total page count (rows*cols) in grid mode.
	MaxGridPages = 100
)

type specKind int

const (
	kindGrid specKind = iota
	kindStrip
)

// Spec describes how a poster is partitioned into pages: either a 2-D
// rows×cols grid, or a 1-D strip of N parts split along the source image's
// dominant axis. Strip mode resolves to a degenerate grid (rows=1 or cols=1)
// once the source orientation is known; see Dims.
type Spec struct {
	kind  specKind
	rows  int
	cols  int
	count int
}

// Grid returns a grid layout spec, validating rows,cols against MaxGridDim
// and MaxGridPages.
func Grid(rows, cols int) (Spec, error) {
	if rows <= 0 || cols <= 0 {
		return Spec{}, fmt.Errorf("grid rows and cols must be positive, got %dx%d", rows, cols)
	}
	if rows > MaxGridDim || cols > MaxGridDim {
		return Spec{}, fmt.Errorf("each grid dimension must be <= %d, got %dx%d", MaxGridDim, rows, cols)
	}
	if rows*cols > MaxGridPages {
		return Spec{}, fmt.Errorf("total pages (rows*cols) must be <= %d, got %d", MaxGridPages, rows*cols)
	}
	return Spec{kind: kindGrid, rows: rows, cols: cols}, nil
}

// Strip returns a strip layout spec with the given part count.
func Strip(count int) (Spec, error) {
	if count <= 0 {
		return Spec{}, fmt.Errorf("number of parts must be positive, got %d", count)
	}
	if count > MaxParts {
		return Spec{}, fmt.Errorf("number of parts too large: %d (max %d)", count, MaxParts)
	}
	return Spec{kind: kindStrip, count: count}, nil
}

var gridRe = regexp.MustCompile(`^(\d+)\s*[xX×]\s*(\d+)$`)

// ParseGrid parses a grid spec string like "3x3" or "2x4" into (rows, cols).
// Returns ok=false for anything that is not a well-formed positive pair.
func ParseGrid(s string) (rows, cols int, ok bool) {
	m := gridRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	r, err1 := strconv.Atoi(m[1])
	c, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil || r <= 0 || c <= 0 {
		return 0, 0, false
	}
	return r, c, true
}

// IsStrip reports whether the spec is a 1-D strip layout.
func (s Spec) IsStrip() bool { return s.kind == kindStrip }

// Tiles returns the total number of tiles the layout produces.
func (s Spec) Tiles() int {
	if s.kind == kindStrip {
		return s.count
	}
	return s.rows * s.cols
}

// Grid returns the explicit rows and cols of a grid spec. Both are zero for
// strip specs, whose shape depends on the source orientation (use Dims).
func (s Spec) Grid() (rows, cols int) {
	if s.kind == kindStrip {
		return 0, 0
	}
	return s.rows, s.cols
}

// Dims resolves the spec to concrete grid dimensions for a source of the
// given pixel size. Grid specs return their rows and cols unchanged; strip
// specs become a degenerate grid split along the dominant axis: a landscape
// source splits horizontally (1 row × count cols), anything else vertically.
func (s Spec) Dims(srcW, srcH int) (rows, cols int) {
	if s.kind == kindGrid {
		return s.rows, s.cols
	}
	if srcW > srcH {
		return 1, s.count
	}
	return s.count, 1
}

// Label returns the identifier used in output directory names: "3x3" for a
// grid, the flat part count for a strip.
func (s Spec) Label() string {
	if s.kind == kindStrip {
		return strconv.Itoa(s.count)
	}
	return fmt.Sprintf("%dx%d", s.rows, s.cols)
}

func (s Spec) String() string {
	if s.kind == kindStrip {
		return fmt.Sprintf("%d parts", s.count)
	}
	return fmt.Sprintf("%d×%d grid", s.rows, s.cols)
}
