package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  S/Down     - Move down one row
  W/Up       - Rotate counter-clockwise
  Space      - Hard drop
  P/Esc      - Pause
  R          - Restart (after game over)
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - 800ms between drops
  normal - 500ms between drops
  hard   - 250ms between drops

Examples:
  tetris play
  tetris play --difficulty easy
  tetris play --config ./my-tetris.yaml
  tetris play --log-file tetris.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// Logs would corrupt the alt-screen, so they go nowhere without --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close on exit
	defer closeLog()

	game, err := newGame(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg, err := runtimeConfig(width, height)
	if err != nil {
		return err
	}
	logger.Info("starting terminal game", "seed", cfg.Seed, "fps", cfg.TickRate, "width", width, "height", height)

	return tui.Run(game, cfg, logger)
}
