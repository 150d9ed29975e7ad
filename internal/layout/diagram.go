package layout

// Diagram describes the geometry of a schematic grid drawing in a print
// coordinate space with the origin at the lower-left corner (y grows upward,
// matching page coordinates). StartX/StartY locate the lower-left corner of
// the whole grid.
type Diagram struct {
	Rows   int
	Cols   int
	CellW  float64
	CellH  float64
	StartX float64
	StartY float64
}

// Width returns the total diagram width.
func (d Diagram) Width() float64 { return float64(d.Cols) * d.CellW }

// Height returns the total diagram height.
func (d Diagram) Height() float64 { return float64(d.Rows) * d.CellH }

// CellOrigin returns the lower-left corner of the cell at (row, col). Rows
// are flipped so that row 0 lands at the top of the drawing: printed output
// reads top-to-bottom while the coordinate space grows bottom-up.
func (d Diagram) CellOrigin(row, col int) (x, y float64) {
	x = d.StartX + float64(col)*d.CellW
	y = d.StartY + float64(d.Rows-row-1)*d.CellH
	return x, y
}

// CellCenter returns the center point of the cell at (row, col).
func (d Diagram) CellCenter(row, col int) (x, y float64) {
	x, y = d.CellOrigin(row, col)
	return x + d.CellW/2, y + d.CellH/2
}

// FitDiagramBox chooses the overall box for a rows×cols schematic starting
// from a base size and stretching the dominant axis: a layout with more rows
// than columns gets a taller box (capped at maxH), otherwise a wider one
// (capped at maxW).
func FitDiagramBox(rows, cols int, baseW, baseH, maxW, maxH float64) (w, h float64) {
	w, h = baseW, baseH
	if rows > cols {
		h = min(maxH, baseW*float64(rows)/float64(cols))
	} else {
		w = min(maxW, baseH*float64(cols)/float64(rows))
	}
	return w, h
}

// SquareCellSize returns the largest square cell that lets a rows×cols grid
// fit inside maxW×maxH.
func SquareCellSize(rows, cols int, maxW, maxH float64) float64 {
	return min(maxW/float64(cols), maxH/float64(rows))
}
