package layout

import "image"

// Split directions reported by Arrangement.
const (
	DirectionGrid       = "grid"
	DirectionHorizontal = "horizontal"
	DirectionVertical   = "vertical"
)

// Arrangement is the resolved physical layout of a tile sequence, used by
// the instructions and duplex pages.
type Arrangement struct {
	Rows      int
	Cols      int
	Direction string
}

// GridArrangement wraps explicitly known grid dimensions.
func GridArrangement(rows, cols int) Arrangement {
	return Arrangement{Rows: rows, Cols: cols, Direction: DirectionGrid}
}

// InferArrangement reconstructs the layout of n tiles from their bounding
// boxes when the grid shape was not recorded. Two tiles sharing a vertical
// edge mean a horizontal split; sharing a horizontal edge means a vertical
// split. Ambiguous adjacency falls back to the first tile's aspect ratio
// (landscape tiles come from horizontal splits).
func InferArrangement(n int, boxes []image.Rectangle) Arrangement {
	if n > 1 && len(boxes) >= 2 {
		if boxes[0].Max.X == boxes[1].Min.X {
			return Arrangement{Rows: 1, Cols: n, Direction: DirectionHorizontal}
		}
		if boxes[0].Max.Y == boxes[1].Min.Y {
			return Arrangement{Rows: n, Cols: 1, Direction: DirectionVertical}
		}
	}
	dir := DirectionHorizontal
	if len(boxes) > 0 && n > 1 {
		w, h := boxes[0].Dx(), boxes[0].Dy()
		if h > 0 && w <= h {
			dir = DirectionVertical
		}
	}
	if dir == DirectionVertical {
		return Arrangement{Rows: n, Cols: 1, Direction: DirectionVertical}
	}
	return Arrangement{Rows: 1, Cols: n, Direction: DirectionHorizontal}
}
