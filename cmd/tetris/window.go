package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/window"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in an Ebitengine window. The board's vertex buffers are
drawn directly as textured triangles.

Controls are the same as in the terminal; Q closes the window.

Examples:
  tetris window
  tetris window --scale 2 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", window.DefaultScale, "Window size multiplier")
}

func runWindow(cmd *cobra.Command, args []string) error {
	if flagScale < 1 {
		return fmt.Errorf("--scale must be at least 1, got %d", flagScale)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close on exit
	defer closeLog()

	game, err := newGame(logger)
	if err != nil {
		return err
	}

	cfg, err := runtimeConfig(window.DefaultWidth, window.DefaultHeight)
	if err != nil {
		return err
	}

	return window.Run(game, cfg, window.Options{
		Scale:  flagScale,
		Title:  game.Title(),
		Logger: logger,
	})
}
