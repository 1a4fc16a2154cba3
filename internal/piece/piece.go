// Package piece defines the seven tetromino shapes: their spawn cells,
// colors and random selection.
package piece

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/geometry"
)

// Shape identifies a tetromino by its letter.
type Shape byte

// The seven standard tetrominoes.
const (
	O Shape = 'O'
	I Shape = 'I'
	J Shape = 'J'
	L Shape = 'L'
	S Shape = 'S'
	T Shape = 'T'
	Z Shape = 'Z'
)

// Shapes lists every shape in selection order.
var Shapes = [...]Shape{O, I, J, L, S, T, Z}

// String returns the shape letter.
func (s Shape) String() string {
	if s == 0 {
		return "-"
	}
	return string(rune(s))
}

// Valid reports whether s is one of the seven tetrominoes.
func (s Shape) Valid() bool {
	_, ok := spawnTable[s]
	return ok
}

// Rotates reports whether rotating the shape changes it. O is symmetric.
func (s Shape) Rotates() bool {
	return s != O
}

// Parse converts a letter ("T", "t") into a Shape.
func Parse(v string) (Shape, error) {
	if len(v) != 1 {
		return 0, fmt.Errorf("piece: invalid shape %q", v)
	}
	s := Shape(v[0] &^ 0x20) // upper-case ASCII
	if !s.Valid() {
		return 0, fmt.Errorf("piece: invalid shape %q", v)
	}
	return s, nil
}

// Cell is a grid position.
type Cell struct {
	Row, Col int
}

type spawn struct {
	offsets [4]Cell // Col relative to the anchor column, Row absolute
	color   geometry.RGB
}

// Quad order matters: the second cell is the rotation pivot.
var spawnTable = map[Shape]spawn{
	O: {[4]Cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, geometry.RGB{R: 1, G: 1, B: 0}},
	I: {[4]Cell{{0, -1}, {0, 0}, {0, 1}, {0, 2}}, geometry.RGB{R: 0, G: 1, B: 1}},
	J: {[4]Cell{{0, -1}, {1, -1}, {1, 0}, {1, 1}}, geometry.RGB{R: 0, G: 0, B: 1}},
	L: {[4]Cell{{1, -1}, {1, 0}, {1, 1}, {0, 1}}, geometry.RGB{R: 1, G: 0.5, B: 0}},
	S: {[4]Cell{{1, -1}, {1, 0}, {0, 0}, {0, 1}}, geometry.RGB{R: 0, G: 1, B: 0}},
	T: {[4]Cell{{1, -1}, {1, 0}, {1, 1}, {0, 0}}, geometry.RGB{R: 0.6, G: 0, B: 1}},
	Z: {[4]Cell{{0, -1}, {0, 0}, {1, 0}, {1, 1}}, geometry.RGB{R: 1, G: 0, B: 0}},
}

// AnchorColumn returns the spawn column for a board with cols columns.
func AnchorColumn(cols int) int {
	return cols/2 - 1
}

// Spawn returns the four cells a new piece of shape s occupies on a board
// with cols columns, in quad order.
func Spawn(s Shape, cols int) [4]Cell {
	sp := spawnTable[s]
	anchor := AnchorColumn(cols)
	var cells [4]Cell
	for i, o := range sp.offsets {
		cells[i] = Cell{Row: o.Row, Col: anchor + o.Col}
	}
	return cells
}

// Color returns the default color of a shape.
func Color(s Shape) geometry.RGB {
	return spawnTable[s].color
}

// Picker draws shapes uniformly at random.
type Picker struct {
	rng *rand.Rand
}

// NewPicker creates a picker reading random bits from src.
// The same source seed always yields the same shape sequence.
func NewPicker(src rand.Source) *Picker {
	return &Picker{rng: rand.New(src)}
}

// Next returns the next random shape.
func (p *Picker) Next() Shape {
	return Shapes[p.rng.Intn(len(Shapes))]
}
