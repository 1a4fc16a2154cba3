package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-tetris/internal/board"
	"github.com/vovakirdan/tui-tetris/internal/piece"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default configuration.
func DefaultTetrisConfig() TetrisConfig {
	pieces := make(map[string][3]float32, len(piece.Shapes))
	for _, s := range piece.Shapes {
		c := piece.Color(s)
		pieces[s.String()] = [3]float32{c.R, c.G, c.B}
	}
	w := board.DefaultWallColor

	return TetrisConfig{
		Board: BoardConfig{
			Rows: board.DefaultRows,
			Cols: board.DefaultCols,
		},
		Gravity: GravityConfig{
			IntervalMS: int(board.DefaultGravityInterval.Milliseconds()),
		},
		Colors: ColorConfig{
			Wall:   [3]float32{w.R, w.G, w.B},
			Pieces: pieces,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
