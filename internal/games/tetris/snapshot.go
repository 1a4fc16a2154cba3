package tetris

import "github.com/vovakirdan/tui-tetris/internal/board"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Paused   bool
	TooSmall bool
	Board    board.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Paused:   g.paused,
		TooSmall: g.tooSmall,
		Board:    g.board.Snapshot(),
	}
}
