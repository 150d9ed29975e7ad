package layout

import "testing"

func TestGrid_Valid(t *testing.T) {
	tests := []struct {
		rows, cols int
	}{
		{1, 1},
		{3, 3},
		{10, 10},
		{20, 5},
		{5, 20},
		{20, 1},
	}
	for _, tt := range tests {
		s, err := Grid(tt.rows, tt.cols)
		if err != nil {
			t.Errorf("Grid(%d,%d): unexpected error: %v", tt.rows, tt.cols, err)
			continue
		}
		if s.Tiles() != tt.rows*tt.cols {
			t.Errorf("Grid(%d,%d).Tiles() = %d, want %d", tt.rows, tt.cols, s.Tiles(), tt.rows*tt.cols)
		}
	}
}

func TestGrid_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 3},
		{"negative cols", 3, -1},
		{"page cap exceeded", 20, 20},
		{"dimension cap exceeded", 21, 1},
		{"dimension cap exceeded cols", 1, 21},
		{"page cap 11x10", 11, 10},
	}
	for _, tt := range tests {
		if _, err := Grid(tt.rows, tt.cols); err == nil {
			t.Errorf("%s: Grid(%d,%d) accepted, want error", tt.name, tt.rows, tt.cols)
		}
	}
}

func TestStrip_Limits(t *testing.T) {
	if _, err := Strip(1); err != nil {
		t.Errorf("Strip(1): %v", err)
	}
	if _, err := Strip(MaxParts); err != nil {
		t.Errorf("Strip(%d): %v", MaxParts, err)
	}
	if _, err := Strip(0); err == nil {
		t.Error("Strip(0) accepted, want error")
	}
	if _, err := Strip(MaxParts + 1); err == nil {
		t.Errorf("Strip(%d) accepted, want error", MaxParts+1)
	}
}

func TestParseGrid(t *testing.T) {
	tests := []struct {
		in         string
		rows, cols int
		ok         bool
	}{
		{"3x3", 3, 3, true},
		{"2x4", 2, 4, true},
		{"2X4", 2, 4, true},
		{"2 x 4", 2, 4, true},
		{"10×10", 10, 10, true},
		{"3", 0, 0, false},
		{"x3", 0, 0, false},
		{"3x", 0, 0, false},
		{"", 0, 0, false},
		{"0x3", 0, 0, false},
		{"axb", 0, 0, false},
	}
	for _, tt := range tests {
		rows, cols, ok := ParseGrid(tt.in)
		if ok != tt.ok || rows != tt.rows || cols != tt.cols {
			t.Errorf("ParseGrid(%q) = (%d,%d,%v), want (%d,%d,%v)",
				tt.in, rows, cols, ok, tt.rows, tt.cols, tt.ok)
		}
	}
}

func TestSpec_Dims_Strip(t *testing.T) {
	s, err := Strip(4)
	if err != nil {
		t.Fatalf("Strip(4): %v", err)
	}

	// Landscape source splits horizontally.
	rows, cols := s.Dims(2000, 1000)
	if rows != 1 || cols != 4 {
		t.Errorf("landscape dims = %dx%d, want 1x4", rows, cols)
	}

	// Portrait source splits vertically.
	rows, cols = s.Dims(1000, 2000)
	if rows != 4 || cols != 1 {
		t.Errorf("portrait dims = %dx%d, want 4x1", rows, cols)
	}

	// Square source splits vertically (width not strictly greater).
	rows, cols = s.Dims(1000, 1000)
	if rows != 4 || cols != 1 {
		t.Errorf("square dims = %dx%d, want 4x1", rows, cols)
	}
}

func TestSpec_Label(t *testing.T) {
	g, _ := Grid(3, 4)
	if got := g.Label(); got != "3x4" {
		t.Errorf("grid label = %q, want 3x4", got)
	}
	s, _ := Strip(5)
	if got := s.Label(); got != "5" {
		t.Errorf("strip label = %q, want 5", got)
	}
}
