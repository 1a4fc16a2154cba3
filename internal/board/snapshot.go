package board

import "github.com/vovakirdan/tui-tetris/internal/piece"

// Snapshot captures the board state for determinism testing and debugging.
// Snapshots are comparable with ==.
type Snapshot struct {
	Tick         uint64
	State        State
	Shape        piece.Shape
	Cells        [4]piece.Cell // active piece cells, zero when none
	Locked       int           // occupied grid cells
	Quads        int           // quads in the dynamic region
	LinesCleared int
	Pieces       int
}

// Snapshot returns the current board snapshot.
func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Tick:         b.tick,
		State:        b.state,
		Shape:        b.Shape(),
		Locked:       b.grid.Count(),
		Quads:        b.mesh.QuadCount() - b.firstPieceQuad,
		LinesCleared: b.linesCleared,
		Pieces:       b.piecesSpawned,
	}
	copy(s.Cells[:], b.ActiveCells())
	return s
}
