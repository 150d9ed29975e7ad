// Package pdf assembles poster tiles into a single paginated PDF document.
//
// The page stream is planned up front as an explicit sequence (see
// layout.PageSequence) and then rendered page by page: an optional assembly
// instructions page, a blank duplex filler, and one front page per tile with
// an optional duplex back page carrying the tile's grid position and
// neighbors.
//
// All drawing uses millimeter coordinates with the origin at the top-left
// of the page (the fpdf convention). Grid diagrams are laid out with the
// bottom-origin geometry from the layout package and converted at draw time,
// so row 0 of a poster always renders at the top of the printed diagram.
//
// Rendering happens fully in memory; the output file is written only after
// every page succeeded, so a failed tile never leaves a truncated document
// behind.
package pdf
