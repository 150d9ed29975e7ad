package pdf

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/smaxiso/poster-maker/internal/config"
)

// maxSourceTextMM is the width budget for the source-filename overlay;
// longer names are truncated with a leading ellipsis.
const maxSourceTextMM = 60

// decorate draws the configured overlays on a tile front page. Every
// overlay is independently toggleable and they may combine in any subset.
func (a *Assembler) decorate(doc *fpdf.Fpdf, part Part, total int, now time.Time) {
	features := a.cfg.Features
	styling := a.cfg.Styling
	content := a.cfg.Content

	if features.PageNumbers {
		doc.SetFont(a.font, "B", styling.TitleSize)
		a.centeredText(doc, a.pageH-10, fmt.Sprintf("Page %d of %d", part.Index, total))
	}

	if features.PartDimensions {
		doc.SetFont(a.font, "", styling.SubtitleSize)
		doc.Text(styling.MarginMM, a.pageH-styling.MarginMM,
			fmt.Sprintf("Part %d/%d - Size: %dx%d", part.Index, total, part.Width, part.Height))
	}

	if content.TopText != "" {
		doc.SetFont(a.font, "", styling.SubtitleSize)
		doc.Text(a.pageW-30, 10, content.TopText)
	}

	if content.AddTimestamp {
		doc.SetFont(a.font, "", styling.SubtitleSize)
		doc.Text(a.pageW-45, a.pageH-5, "Created: "+now.Format("2006-01-02 15:04"))
	}

	if content.AddSourceFilename && part.Path != "" {
		doc.SetFont(a.font, "", styling.SubtitleSize)
		base := filepath.Base(part.Path)
		text := "Source: " + base
		if doc.GetStringWidth(text) > maxSourceTextMM {
			if len(base) > 25 {
				base = base[len(base)-25:]
			}
			text = "Source: ..." + base
		}
		doc.Text(styling.MarginMM, a.pageH-5, text)
	}

	if features.AssemblyAids {
		a.cornerMarks(doc)
	}
	if features.GridOverlay {
		a.gridOverlay(doc)
	}
	if features.BleedMarks {
		a.bleedMarks(doc)
	}
}

// cornerMarks draws short L-shaped registration strokes inset by the page
// margin at each corner.
func (a *Assembler) cornerMarks(doc *fpdf.Fpdf) {
	margin := a.cfg.Styling.MarginMM
	length := a.cfg.Styling.CornerMarksMM
	r, g, b := config.RGB(a.cfg.Styling.MarkColor)

	doc.SetDrawColor(r, g, b)
	doc.SetLineWidth(0.2)

	// Top-left
	doc.Line(margin, margin, margin+length, margin)
	doc.Line(margin, margin, margin, margin+length)
	// Top-right
	doc.Line(a.pageW-margin, margin, a.pageW-margin-length, margin)
	doc.Line(a.pageW-margin, margin, a.pageW-margin, margin+length)
	// Bottom-left
	doc.Line(margin, a.pageH-margin, margin+length, a.pageH-margin)
	doc.Line(margin, a.pageH-margin, margin, a.pageH-margin-length)
	// Bottom-right
	doc.Line(a.pageW-margin, a.pageH-margin, a.pageW-margin-length, a.pageH-margin)
	doc.Line(a.pageW-margin, a.pageH-margin, a.pageW-margin, a.pageH-margin-length)
	doc.SetDrawColor(0, 0, 0)
}

// gridOverlay draws a light reference grid with lines every 20mm across the
// full page.
func (a *Assembler) gridOverlay(doc *fpdf.Fpdf) {
	r, g, b := config.RGB(a.cfg.Styling.GridColor)
	doc.SetDrawColor(r, g, b)
	doc.SetLineWidth(0.1)

	for x := 0.0; x < a.pageW; x += 20 {
		doc.Line(x, 0, x, a.pageH)
	}
	for y := 0.0; y < a.pageH; y += 20 {
		doc.Line(0, y, a.pageW, y)
	}
	doc.SetDrawColor(0, 0, 0)
}

// bleedMarks draws 3mm-offset crosses at the page corners. These are
// cosmetic registration guides, not prepress bleed.
func (a *Assembler) bleedMarks(doc *fpdf.Fpdf) {
	const bleed, stroke = 3.0, 5.0
	r, g, b := config.RGB(a.cfg.Styling.MarkColor)
	doc.SetDrawColor(r, g, b)
	doc.SetLineWidth(0.5)

	// Top-left
	doc.Line(bleed, 0, bleed, stroke)
	doc.Line(0, bleed, stroke, bleed)
	// Top-right
	doc.Line(a.pageW-bleed, 0, a.pageW-bleed, stroke)
	doc.Line(a.pageW, bleed, a.pageW-stroke, bleed)
	// Bottom-left
	doc.Line(bleed, a.pageH, bleed, a.pageH-stroke)
	doc.Line(0, a.pageH-bleed, stroke, a.pageH-bleed)
	// Bottom-right
	doc.Line(a.pageW-bleed, a.pageH, a.pageW-bleed, a.pageH-stroke)
	doc.Line(a.pageW, a.pageH-bleed, a.pageW-stroke, a.pageH-bleed)
	doc.SetDrawColor(0, 0, 0)
}
