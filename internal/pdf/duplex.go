package pdf

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/smaxiso/poster-maker/internal/layout"
)

// tileBackPage renders the duplex back side for one tile: its grid position,
// a schematic highlighting its cell, and its neighboring part numbers. The
// schematic is drawn in front-view orientation so the page only makes sense
// held behind the printed tile.
func (a *Assembler) tileBackPage(doc *fpdf.Fpdf, index, total int, arr layout.Arrangement) {
	rows, cols := arr.Rows, arr.Cols
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = total
	}
	pos := layout.PositionOf(index, cols)

	doc.SetFont(a.font, "B", 24)
	a.centeredText(doc, 18, fmt.Sprintf("Page %d of %d", index, total))
	doc.SetFont(a.font, "", 16)
	a.centeredText(doc, 28, fmt.Sprintf("Row %d, Column %d", pos.Row+1, pos.Col+1))

	cell := layout.SquareCellSize(rows, cols, 150, 180)
	diag := layout.Diagram{Rows: rows, Cols: cols, CellW: cell, CellH: cell}
	gridW := diag.Width()
	gridH := diag.Height()
	gridLeft := (a.pageW - gridW) / 2
	gridTop := (a.pageH-gridH)/2 + 7

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cellNum := row*cols + col + 1
			cx, cyB := diag.CellOrigin(row, col)
			x := gridLeft + cx
			cellTop := gridTop + gridH - cyB - cell

			if cellNum == index {
				doc.SetDrawColor(0, 0, 0)
				doc.SetLineWidth(1.4)
				doc.Rect(x, cellTop, cell, cell, "D")
				doc.Rect(x+1, cellTop+1, cell-2, cell-2, "D")
			} else {
				doc.SetDrawColor(128, 128, 128)
				doc.SetLineWidth(0.18)
				doc.Rect(x, cellTop, cell, cell, "D")
			}

			if cellNum > total {
				continue
			}
			num := fmt.Sprintf("%d", cellNum)
			if cellNum == index {
				doc.SetFont(a.font, "B", 16)
			} else {
				doc.SetFont(a.font, "", 10)
				doc.SetTextColor(128, 128, 128)
			}
			numW := doc.GetStringWidth(num)
			doc.Text(x+(cell-numW)/2, cellTop+cell/2+2, num)
			doc.SetTextColor(0, 0, 0)
		}
	}
	doc.SetDrawColor(0, 0, 0)

	legendY := gridTop + gridH + 10
	legend := fmt.Sprintf("Grid: %d rows x %d columns", rows, cols)
	size := 11.0
	doc.SetFont(a.font, "", size)
	// Shrink the legend for very wide grids rather than overflowing.
	for doc.GetStringWidth(legend) > a.pageW-14 && size > 7 {
		size--
		doc.SetFont(a.font, "", size)
	}
	a.centeredText(doc, legendY, legend)

	hint := "Arrange top to bottom"
	if cols > 1 {
		hint = "Arrange left to right, top to bottom"
	}
	doc.SetFont(a.font, "", 11)
	a.centeredText(doc, legendY+7, hint)

	neighbors := layout.NeighborsOf(index, total, rows, cols)
	var labels []string
	for _, nb := range []struct {
		idx  int
		name string
	}{
		{neighbors.Above, "Above"},
		{neighbors.Below, "Below"},
		{neighbors.Left, "Left"},
		{neighbors.Right, "Right"},
	} {
		if nb.idx != 0 {
			labels = append(labels, fmt.Sprintf("%s: Page %d", nb.name, nb.idx))
		}
	}
	if len(labels) > 0 {
		doc.SetFont(a.font, "", 10)
		text := "Neighbors: " + strings.Join(labels, " | ")
		if doc.GetStringWidth(text) > a.pageW-14 && len(labels) > 1 {
			mid := len(labels) / 2
			a.centeredText(doc, legendY+15, "Neighbors: "+strings.Join(labels[:mid], " | "))
			a.centeredText(doc, legendY+20, strings.Join(labels[mid:], " | "))
		} else {
			a.centeredText(doc, legendY+15, text)
		}
	}

	doc.SetFont(a.font, "I", 9)
	doc.SetTextColor(128, 128, 128)
	a.centeredText(doc, legendY+27, "Grid shows poster layout as viewed from the FRONT")
	doc.SetTextColor(0, 0, 0)

	doc.SetFont(a.font, "", 9)
	a.centeredText(doc, a.pageH-11,
		"This is the back side for duplex printing - Position this page behind the poster piece")
}
