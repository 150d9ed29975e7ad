package layout

// PageKind identifies one variant in the output document's page stream.
type PageKind int

const (
	// PageInstructions is the optional assembly instructions page.
	PageInstructions PageKind = iota

	// PageBlankFiller keeps the first tile off the back of the instructions
	// page when printing duplex.
	PageBlankFiller

	// PageTileFront carries the tile raster itself.
	PageTileFront

	// PageTileBack is the duplex back page with position and neighbor info.
	PageTileBack
)

// Page is one entry in the document's ordered page stream. Tile is the
// 1-based tile index for PageTileFront and PageTileBack, zero otherwise.
type Page struct {
	Kind PageKind
	Tile int
}

// PageSequence builds the full ordered page stream for a document with n
// tiles:
//
//	[Instructions?] [BlankFiller if instructions && duplex]
//	then for each tile i: TileFront(i) [TileBack(i) if duplex]
//
// The sequence is the single source of truth for page order and count; the
// assembler renders it without re-deriving any conditions.
func PageSequence(n int, instructions, duplex bool) []Page {
	pages := make([]Page, 0, PageCount(n, instructions, duplex))
	if instructions {
		pages = append(pages, Page{Kind: PageInstructions})
		if duplex {
			pages = append(pages, Page{Kind: PageBlankFiller})
		}
	}
	for i := 1; i <= n; i++ {
		pages = append(pages, Page{Kind: PageTileFront, Tile: i})
		if duplex {
			pages = append(pages, Page{Kind: PageTileBack, Tile: i})
		}
	}
	return pages
}

// PageCount returns the total number of pages PageSequence produces.
func PageCount(n int, instructions, duplex bool) int {
	pages := n
	if instructions {
		pages++
		if duplex {
			pages++
		}
	}
	if duplex {
		pages += n
	}
	return pages
}
