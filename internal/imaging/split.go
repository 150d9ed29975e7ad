package imaging

import (
	"image"
	"log"

	"github.com/disintegration/imaging"

	"github.com/smaxiso/poster-maker/internal/layout"
)

// Tile is one rectangular region of the resized canvas, printed on one
// physical page. Index is 1-based in row-major reading order. Tiles are not
// mutated after creation.
type Tile struct {
	Index int
	Box   image.Rectangle
	Image *image.NRGBA
}

// Split partitions the canvas into tiles per the layout spec. Strip specs
// resolve to a degenerate grid along the canvas's dominant axis, so both
// modes share one geometry: cell size is floored, and the rightmost column
// and bottom row pin their far edge to the canvas edge, absorbing any
// remainder pixels independently per axis.
//
// The returned tiles are disjoint and cover the canvas exactly. A tile whose
// size deviates from the floored cell size by more than 1px logs a warning;
// this is expected for non-divisible canvases and never an error.
func Split(img image.Image, spec layout.Spec) []Tile {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rows, cols := spec.Dims(w, h)

	cellW := w / cols
	cellH := h / rows

	tiles := make([]Tile, 0, rows*cols)
	index := 1
	for row := 0; row < rows; row++ {
		top := row * cellH
		bottom := top + cellH
		if row == rows-1 {
			bottom = h
		}
		for col := 0; col < cols; col++ {
			left := col * cellW
			right := left + cellW
			if col == cols-1 {
				right = w
			}
			box := image.Rect(left, top, right, bottom)

			if d := box.Dx() - cellW; d > 1 || d < -1 {
				log.Printf("warning: part %d width %dpx differs from expected %dpx", index, box.Dx(), cellW)
			}
			if d := box.Dy() - cellH; d > 1 || d < -1 {
				log.Printf("warning: part %d height %dpx differs from expected %dpx", index, box.Dy(), cellH)
			}

			tiles = append(tiles, Tile{
				Index: index,
				Box:   box,
				Image: imaging.Crop(img, box),
			})
			index++
		}
	}
	return tiles
}
