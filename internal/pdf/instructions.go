package pdf

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/smaxiso/poster-maker/internal/layout"
)

// instructionsPage renders the leading assembly guide: part count and
// arrangement, step-by-step text, and a numbered schematic of the grid.
func (a *Assembler) instructionsPage(doc *fpdf.Fpdf, total int, arr layout.Arrangement) {
	doc.SetFont(a.font, "B", 24)
	a.centeredText(doc, 14, "Poster Assembly Instructions")
	doc.SetLineWidth(0.5)
	doc.Line(15, 17.6, a.pageW-15, 17.6)

	doc.SetFont(a.font, "", 12)
	const lineHeight = 7.0
	y := 28.0
	line := func(txt string) {
		doc.Text(15, y, txt)
		y += lineHeight
	}

	line(fmt.Sprintf("Total Parts: %d", total))
	arrText := fmt.Sprintf("Arrangement: %d row(s) x %d column(s)", arr.Rows, arr.Cols)
	if arr.Direction != layout.DirectionGrid && arr.Direction != "" {
		arrText += fmt.Sprintf(" (Split: %s)", arr.Direction)
	}
	line(arrText)
	y += lineHeight / 2

	doc.SetFont(a.font, "B", 14)
	line("Assembly Steps:")
	doc.SetFont(a.font, "", 12)

	var arrangeStep string
	switch arr.Direction {
	case layout.DirectionHorizontal:
		arrangeStep = "4. Align the parts horizontally from left to right."
	case layout.DirectionVertical:
		arrangeStep = "4. Align the parts vertically from top to bottom."
	default:
		arrangeStep = "4. Arrange in a grid: top row left to right, then each row below."
	}
	for _, s := range []string{
		"1. Print all pages at 100% scale (no scaling/resizing).",
		"2. Cut along the edges of each part if needed.",
		"3. Arrange the parts in order according to the page numbers.",
		arrangeStep,
		"5. Use the corner marks and TOP indicators to ensure proper alignment.",
		"6. Tape or glue the parts together from the back side.",
		"7. For best results, use a straight edge when joining parts.",
	} {
		line(s)
	}
	y += lineHeight / 2

	doc.SetFont(a.font, "B", 14)
	line("Layout Diagram:")

	a.layoutDiagram(doc, total, arr, y)

	doc.SetFont(a.font, "", 10)
	a.centeredText(doc, a.pageH-7, "Created with Poster Maker Tool")
}

// layoutDiagram draws a numbered rows×cols schematic below the given
// baseline. Cell numbering reads left to right, top to bottom, matching the
// printed part order.
func (a *Assembler) layoutDiagram(doc *fpdf.Fpdf, total int, arr layout.Arrangement, top float64) {
	rows, cols := arr.Rows, arr.Cols
	if rows < 1 || cols < 1 {
		return
	}

	diagW, diagH := layout.FitDiagramBox(rows, cols, 105, 70, 140, 105)
	diag := layout.Diagram{
		Rows:  rows,
		Cols:  cols,
		CellW: diagW / float64(cols),
		CellH: diagH / float64(rows),
	}
	left := (a.pageW - diagW) / 2
	diagBottom := top + diagH // page y of the diagram's bottom edge

	doc.SetDrawColor(0, 0, 0)
	doc.SetLineWidth(0.7)
	for i := 0; i <= rows; i++ {
		ly := top + float64(i)*diag.CellH
		doc.Line(left, ly, left+diagW, ly)
	}
	for i := 0; i <= cols; i++ {
		lx := left + float64(i)*diag.CellW
		doc.Line(lx, top, lx, diagBottom)
	}

	doc.SetFont(a.font, "", 16)
	for idx := 1; idx <= total; idx++ {
		pos := layout.PositionOf(idx, cols)
		cx, cyB := diag.CellCenter(pos.Row, pos.Col)
		// Bottom-origin cell y converted to fpdf's top-down page y.
		pageY := diagBottom - cyB
		num := fmt.Sprintf("%d", idx)
		doc.Text(left+cx-doc.GetStringWidth(num)/2, pageY+2, num)
	}
}
