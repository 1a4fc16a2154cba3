// Package config provides YAML-based game configuration loading and
// difficulty presets for the game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/board"
	"github.com/vovakirdan/tui-tetris/internal/geometry"
	"github.com/vovakirdan/tui-tetris/internal/piece"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Gravity GravityConfig `yaml:"gravity"`
	Colors  ColorConfig   `yaml:"colors"`
}

// BoardConfig defines the playing field size.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// GravityConfig defines automatic drop timing.
type GravityConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// ColorConfig defines block colors as [r, g, b] triples in [0, 1].
type ColorConfig struct {
	Wall   [3]float32            `yaml:"wall"`
	Pieces map[string][3]float32 `yaml:"pieces"` // keyed by shape letter
}

// DifficultyPreset represents a named gravity speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// IntervalForPreset returns the gravity interval in milliseconds for a preset.
// Unknown presets return 0.
func IntervalForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 800
	case DifficultyNormal:
		return 500
	case DifficultyHard:
		return 250
	default:
		return 0
	}
}

// GravityInterval returns the configured interval as a duration.
func (c TetrisConfig) GravityInterval() time.Duration {
	return time.Duration(c.Gravity.IntervalMS) * time.Millisecond
}

// WallColor returns the frame color.
func (c TetrisConfig) WallColor() geometry.RGB {
	return toRGB(c.Colors.Wall)
}

// PieceColors returns the per-shape color overrides.
func (c TetrisConfig) PieceColors() (map[piece.Shape]geometry.RGB, error) {
	colors := make(map[piece.Shape]geometry.RGB, len(c.Colors.Pieces))
	for key, v := range c.Colors.Pieces {
		shape, err := piece.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("%w: colors.pieces: %w", ErrInvalid, err)
		}
		colors[shape] = toRGB(v)
	}
	return colors, nil
}

// Validate checks that the config describes a playable board.
func (c TetrisConfig) Validate() error {
	if c.Board.Rows < board.MinRows || c.Board.Cols < board.MinCols {
		return fmt.Errorf("%w: board must be at least %dx%d, got %dx%d",
			ErrInvalid, board.MinRows, board.MinCols, c.Board.Rows, c.Board.Cols)
	}
	if c.Gravity.IntervalMS <= 0 {
		return fmt.Errorf("%w: gravity.interval_ms must be positive, got %d", ErrInvalid, c.Gravity.IntervalMS)
	}
	for _, v := range append([][3]float32{c.Colors.Wall}, colorValues(c.Colors.Pieces)...) {
		for _, comp := range v {
			if comp < 0 || comp > 1 {
				return fmt.Errorf("%w: color component %v outside [0, 1]", ErrInvalid, comp)
			}
		}
	}
	if _, err := c.PieceColors(); err != nil {
		return err
	}
	return nil
}

// BoardConfig converts the file config into board construction parameters.
// Clock, random source and logger are left for the caller.
func (c TetrisConfig) BoardConfig() (board.Config, error) {
	if err := c.Validate(); err != nil {
		return board.Config{}, err
	}
	colors, err := c.PieceColors()
	if err != nil {
		return board.Config{}, err
	}
	wall := c.WallColor()
	return board.Config{
		Rows:            c.Board.Rows,
		Cols:            c.Board.Cols,
		GravityInterval: c.GravityInterval(),
		Colors:          colors,
		WallColor:       &wall,
	}, nil
}

func colorValues(m map[string][3]float32) [][3]float32 {
	out := make([][3]float32, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

func toRGB(v [3]float32) geometry.RGB {
	return geometry.RGB{R: v[0], G: v[1], B: v[2]}
}
