package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/board"
	"github.com/vovakirdan/tui-tetris/internal/piece"
)

func TestDefaultYAMLMatchesDefaults(t *testing.T) {
	var fromYAML TetrisConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("Unmarshal(DefaultYAML()) error = %v", err)
	}
	def := DefaultTetrisConfig()
	if !reflect.DeepEqual(fromYAML, def) {
		t.Errorf("embedded YAML = %+v, expected %+v", fromYAML, def)
	}
	if err := def.Validate(); err != nil {
		t.Errorf("DefaultTetrisConfig().Validate() = %v, expected nil", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TetrisConfig)
		ok     bool
	}{
		{"defaults", func(*TetrisConfig) {}, true},
		{"minimum size", func(c *TetrisConfig) { c.Board.Rows, c.Board.Cols = board.MinRows, board.MinCols }, true},
		{"too narrow", func(c *TetrisConfig) { c.Board.Cols = board.MinCols - 1 }, false},
		{"too short", func(c *TetrisConfig) { c.Board.Rows = board.MinRows - 1 }, false},
		{"zero interval", func(c *TetrisConfig) { c.Gravity.IntervalMS = 0 }, false},
		{"negative interval", func(c *TetrisConfig) { c.Gravity.IntervalMS = -5 }, false},
		{"wall color out of range", func(c *TetrisConfig) { c.Colors.Wall = [3]float32{1.5, 0, 0} }, false},
		{"unknown shape", func(c *TetrisConfig) { c.Colors.Pieces["X"] = [3]float32{0, 0, 0} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := []byte("board:\n  rows: 12\n  cols: 8\ngravity:\n  interval_ms: 300\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Board.Rows != 12 || cfg.Board.Cols != 8 {
		t.Errorf("Board = %+v, expected 12x8", cfg.Board)
	}
	if cfg.GravityInterval() != 300*time.Millisecond {
		t.Errorf("GravityInterval() = %v, expected 300ms", cfg.GravityInterval())
	}
	// Unset fields keep their defaults.
	if cfg.Colors.Wall != DefaultTetrisConfig().Colors.Wall {
		t.Errorf("Colors.Wall = %v, expected default", cfg.Colors.Wall)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing) = nil error, expected failure")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load(malformed) = nil error, expected failure")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected int
		wantErr  bool
	}{
		{"", 500, false},
		{DifficultyEasy, 800, false},
		{DifficultyNormal, 500, false},
		{DifficultyHard, 250, false},
		{"insane", 500, true},
	}

	for _, tt := range tests {
		cfg := DefaultTetrisConfig()
		err := ApplyPreset(&cfg, tt.preset)
		if (err != nil) != tt.wantErr {
			t.Errorf("ApplyPreset(%q) error = %v, wantErr %v", tt.preset, err, tt.wantErr)
		}
		if cfg.Gravity.IntervalMS != tt.expected {
			t.Errorf("ApplyPreset(%q) interval = %d, expected %d", tt.preset, cfg.Gravity.IntervalMS, tt.expected)
		}
	}
}

func TestBoardConfig(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Colors.Pieces = map[string][3]float32{"t": {0.1, 0.2, 0.3}}

	bc, err := cfg.BoardConfig()
	if err != nil {
		t.Fatalf("BoardConfig() error = %v", err)
	}
	if bc.Rows != board.DefaultRows || bc.Cols != board.DefaultCols {
		t.Errorf("size = %dx%d, expected %dx%d", bc.Rows, bc.Cols, board.DefaultRows, board.DefaultCols)
	}
	if bc.GravityInterval != board.DefaultGravityInterval {
		t.Errorf("GravityInterval = %v, expected %v", bc.GravityInterval, board.DefaultGravityInterval)
	}
	got, ok := bc.Colors[piece.T]
	if !ok || got.R != 0.1 || got.B != 0.3 {
		t.Errorf("Colors[T] = %+v, expected {0.1 0.2 0.3}", got)
	}
	if bc.WallColor == nil || *bc.WallColor != board.DefaultWallColor {
		t.Errorf("WallColor = %v, expected %v", bc.WallColor, board.DefaultWallColor)
	}

	cfg.Board.Cols = 3
	if _, err := cfg.BoardConfig(); !errors.Is(err, ErrInvalid) {
		t.Errorf("BoardConfig() with 3 cols = %v, expected ErrInvalid", err)
	}
}
