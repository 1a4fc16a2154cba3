// Package tetris adapts the board state machine to the platform-neutral
// core.Game interface: it maps actions to board input, drives gravity from
// the tick count and rasterizes the board's quads into a character screen.
package tetris

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetris/internal/board"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/geometry"
)

const (
	defaultTickRate = 60
	hudHeight       = 2 // HUD line plus separator
	cellWidth       = 2 // terminal columns per block
)

// Options configures a Game.
type Options struct {
	// Board holds the field size, gravity and colors. Clock, Source and
	// Logger are supplied by the game on every Reset.
	Board  board.Config
	Logger *log.Logger
}

// Game implements core.Game on top of a board.Board.
type Game struct {
	opts    Options
	board   *board.Board
	clock   *tickClock
	rng     *rand.Rand
	logger  *log.Logger
	session string

	tick     uint64
	tickRate int
	paused   bool
	tooSmall bool

	screenW int
	screenH int
	field   core.Rect // board area including walls, in screen cells
}

// New creates a game. The board configuration is validated here so that
// Reset cannot fail later.
func New(opts Options) (*Game, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if _, err := board.New(opts.Board); err != nil {
		return nil, fmt.Errorf("tetris: %w", err)
	}
	return &Game{opts: opts, logger: opts.Logger}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a new game with a fresh board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = defaultTickRate
	}
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.clock = newTickClock(g.tickRate)
	g.session = uuid.NewString()
	g.logger = g.opts.Logger.With("session", g.session)

	bc := g.opts.Board
	bc.Clock = g.clock
	bc.Source = rand.NewSource(g.rng.Int63())
	bc.Logger = g.logger
	b, err := board.New(bc)
	if err != nil {
		panic(fmt.Sprintf("tetris: board config changed after New: %v", err))
	}
	g.board = b

	g.tick = 0
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	layout := b.Layout()
	g.logger.Info("game started", "seed", cfg.Seed, "rows", layout.Rows, "cols", layout.Cols, "tick_rate", g.tickRate)
}

// Resize recomputes where the field is drawn. The game pauses itself while
// the screen cannot hold the field.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height

	w, h := g.fieldSize()
	g.tooSmall = width < w || height < hudHeight+h
	g.field = core.NewRect((width-w)/2, hudHeight, w, h)
}

// fieldSize returns the board size in screen cells, walls included.
func (g *Game) fieldSize() (w, h int) {
	layout := g.board.Layout()
	return (layout.Cols + 2) * cellWidth, layout.Rows + 1
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	gameOver := g.board.State() == board.StateGameOver
	if in.Has(core.ActionRestart) && gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !gameOver {
		g.paused = !g.paused
	}

	if gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.applyInput(in)
	g.clock.advance()
	g.board.Update()

	return core.StepResult{State: g.State()}
}

// applyInput forwards this tick's actions to the board.
func (g *Game) applyInput(in core.InputFrame) {
	dx, dy := 0, 0
	if in.Has(core.ActionLeft) {
		dx--
	}
	if in.Has(core.ActionRight) {
		dx++
	}
	if in.Has(core.ActionSoftDrop) {
		dy = -1
	}
	if dx != 0 || dy != 0 {
		g.board.SetMoveDirection(dx, dy)
	}
	if in.Has(core.ActionRotate) {
		g.board.Flip()
	}
	if in.Has(core.ActionHardDrop) {
		g.board.Drop()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.board.State() == board.StateGameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// View returns the board's vertex and index buffers.
func (g *Game) View() geometry.View {
	return g.board.View()
}

// Layout returns the board's grid to render-space mapping.
func (g *Game) Layout() geometry.Layout {
	return g.board.Layout()
}

// RenderTo hands the board buffers to a geometry renderer.
func (g *Game) RenderTo(r board.Renderer) error {
	return g.board.Render(r)
}
