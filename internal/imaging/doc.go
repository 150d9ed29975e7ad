// Package imaging implements the raster pipeline for poster creation:
// planning the canvas size that divides evenly into print pages, resizing
// the source onto that canvas, and splitting the canvas into tiles.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward. Tile bounding boxes use
// half-open rectangles: the min corner is inclusive, the max corner exclusive.
//
// # Geometry Guarantees
//
// A planned canvas partitions exactly into its tiles: cell sizes are floored
// and the rightmost column and bottom row absorb the remainder pixels, so
// tile boxes are pairwise disjoint and their union is the full canvas.
//
// # Error Handling
//
// Zero or negative dimensions at any stage are reported via
// ErrInvalidDimensions. Remainder-absorption size deviations are expected
// for non-divisible canvases and are logged as warnings, never returned as
// errors.
package imaging
