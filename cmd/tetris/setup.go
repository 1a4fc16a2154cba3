package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

// newLogger builds the logger from --log-level and --log-file. Without a log
// file, output goes to fallback. The returned close func must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closeFn := fallback, func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "tetris",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig reads the configuration and applies --difficulty.
func loadConfig() (config.TetrisConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newGame builds the game from the loaded configuration.
func newGame(logger *log.Logger) (*tetris.Game, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	bc, err := cfg.BoardConfig()
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "rows", bc.Rows, "cols", bc.Cols, "gravity", bc.GravityInterval, "difficulty", flagDifficulty)

	return tetris.New(tetris.Options{Board: bc, Logger: logger})
}

// runtimeConfig builds the per-game settings from the global flags.
func runtimeConfig(width, height int) (core.RuntimeConfig, error) {
	if flagFPS < tui.MinTickRate || flagFPS > tui.MaxTickRate {
		return core.RuntimeConfig{}, fmt.Errorf("--fps must be between %d and %d, got %d", tui.MinTickRate, tui.MaxTickRate, flagFPS)
	}
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = width, height
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}
