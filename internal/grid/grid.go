// Package grid tracks which cells of the playing field hold locked blocks.
package grid

import "strings"

// Grid is a fixed-size occupancy matrix. A cell is set iff a locked block
// occupies it; the falling piece is never recorded here.
type Grid struct {
	rows  int
	cols  int
	cells []bool
}

// New creates an empty grid with the given dimensions.
func New(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (row, col) lies inside [0, rows) x [0, cols).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsOccupied reports whether a locked block sits at (row, col).
// Out-of-bounds cells report false; callers check bounds separately.
func (g *Grid) IsOccupied(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.cells[row*g.cols+col]
}

// SetOccupied marks (row, col) as holding a locked block.
// Out-of-bounds coordinates are ignored.
func (g *Grid) SetOccupied(row, col int) {
	if !g.InBounds(row, col) {
		return
	}
	g.cells[row*g.cols+col] = true
}

// Clear empties every cell.
func (g *Grid) Clear() {
	clear(g.cells)
}

// RowFull reports whether every column of row is occupied.
func (g *Grid) RowFull(row int) bool {
	if row < 0 || row >= g.rows {
		return false
	}
	for _, c := range g.cells[row*g.cols : (row+1)*g.cols] {
		if !c {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all full rows in ascending order.
func (g *Grid) FullRows() []int {
	var rows []int
	for r := range g.rows {
		if g.RowFull(r) {
			rows = append(rows, r)
		}
	}
	return rows
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// String renders the grid with '#' for occupied and '.' for empty cells.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.cols + 1) * g.rows)
	for r := range g.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range g.cols {
			if g.cells[r*g.cols+c] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
