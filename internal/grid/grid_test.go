package grid

import "testing"

func TestNewGridIsEmpty(t *testing.T) {
	g := New(20, 10)

	if g.Rows() != 20 || g.Cols() != 10 {
		t.Fatalf("size = %dx%d, expected 20x10", g.Rows(), g.Cols())
	}
	if g.Count() != 0 {
		t.Errorf("Count() = %d, expected 0", g.Count())
	}
	for r := range 20 {
		for c := range 10 {
			if g.IsOccupied(r, c) {
				t.Errorf("IsOccupied(%d, %d) = true on a new grid", r, c)
			}
		}
	}
}

func TestSetOccupied(t *testing.T) {
	g := New(20, 10)
	g.SetOccupied(19, 4)

	if !g.IsOccupied(19, 4) {
		t.Error("IsOccupied(19, 4) should be true after SetOccupied")
	}
	if g.IsOccupied(19, 5) {
		t.Error("IsOccupied(19, 5) should be false")
	}
	if g.Count() != 1 {
		t.Errorf("Count() = %d, expected 1", g.Count())
	}
}

func TestBounds(t *testing.T) {
	g := New(20, 10)

	tests := []struct {
		name     string
		row, col int
		expected bool
	}{
		{"origin", 0, 0, true},
		{"last cell", 19, 9, true},
		{"negative row", -1, 0, false},
		{"negative col", 0, -1, false},
		{"row past end", 20, 0, false},
		{"col past end", 0, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.InBounds(tc.row, tc.col); got != tc.expected {
				t.Errorf("InBounds(%d, %d) = %v, expected %v", tc.row, tc.col, got, tc.expected)
			}

			// Out-of-bounds writes are silent and never grow the grid.
			g.SetOccupied(tc.row, tc.col)
			if !tc.expected && g.IsOccupied(tc.row, tc.col) {
				t.Errorf("IsOccupied(%d, %d) should be false out of bounds", tc.row, tc.col)
			}
		})
	}

	if g.Rows() != 20 || g.Cols() != 10 {
		t.Errorf("grid resized to %dx%d", g.Rows(), g.Cols())
	}
}

func TestFullRows(t *testing.T) {
	g := New(4, 3)
	for c := range 3 {
		g.SetOccupied(3, c)
		g.SetOccupied(1, c)
	}
	g.SetOccupied(2, 0)

	rows := g.FullRows()
	if len(rows) != 2 || rows[0] != 1 || rows[1] != 3 {
		t.Errorf("FullRows() = %v, expected [1 3]", rows)
	}
	if g.RowFull(2) {
		t.Error("RowFull(2) should be false")
	}
	if g.RowFull(-1) || g.RowFull(4) {
		t.Error("RowFull out of range should be false")
	}
}

func TestClearAndString(t *testing.T) {
	g := New(2, 3)
	g.SetOccupied(0, 1)
	g.SetOccupied(1, 2)

	expected := ".#.\n..#"
	if g.String() != expected {
		t.Errorf("String() = %q, expected %q", g.String(), expected)
	}

	g.Clear()
	if g.Count() != 0 {
		t.Errorf("Count() after Clear = %d, expected 0", g.Count())
	}
}
