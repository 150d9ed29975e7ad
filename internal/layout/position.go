package layout

// Position is a tile's 0-based grid coordinate in row-major reading order.
type Position struct {
	Row int
	Col int
}

// PositionOf maps a 1-based tile index to its grid position for a layout
// with the given number of columns.
func PositionOf(index, cols int) Position {
	return Position{
		Row: (index - 1) / cols,
		Col: (index - 1) % cols,
	}
}

// Neighbors holds the 1-based indices of a tile's adjacent tiles. A zero
// value means no neighbor on that side.
type Neighbors struct {
	Above int
	Below int
	Left  int
	Right int
}

// NeighborsOf computes the adjacent tile indices for tile index (1-based) in
// a rows×cols grid holding total tiles. Edge tiles have no neighbor beyond
// the grid boundary; the below/right checks also guard against indices past
// total for partially filled grids.
func NeighborsOf(index, total, rows, cols int) Neighbors {
	p := PositionOf(index, cols)
	var n Neighbors
	if p.Row > 0 {
		n.Above = index - cols
	}
	if p.Row < rows-1 && index+cols <= total {
		n.Below = index + cols
	}
	if p.Col > 0 {
		n.Left = index - 1
	}
	if p.Col < cols-1 && index+1 <= total {
		n.Right = index + 1
	}
	return n
}

// Count returns how many sides have a neighbor.
func (n Neighbors) Count() int {
	c := 0
	for _, v := range [4]int{n.Above, n.Below, n.Left, n.Right} {
		if v != 0 {
			c++
		}
	}
	return c
}
