package tetris

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/board"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

func newTestGame(t *testing.T, seed int64, w, h int) *Game {
	t.Helper()
	g, err := New(Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: w, ScreenH: h, TickRate: 60})
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func TestNewRejectsInvalidBoard(t *testing.T) {
	_, err := New(Options{Board: board.Config{Rows: 3, Cols: 5}})
	if !errors.Is(err, board.ErrInvalidSize) {
		t.Errorf("New() error = %v, expected ErrInvalidSize", err)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345, 80, 24)
	g2 := newTestGame(t, 12345, 80, 24)

	script := []core.Action{core.ActionLeft, core.ActionRotate, core.ActionRight, core.ActionSoftDrop, core.ActionHardDrop}
	for i := range 2000 {
		var actions []core.Action
		if i%7 == 0 {
			actions = append(actions, script[(i/7)%len(script)])
		}
		step(g1, actions...)
		step(g2, actions...)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("Snapshot mismatch:\n%+v\n%+v", s1, s2)
	}
}

func TestGravityFollowsTickRate(t *testing.T) {
	g := newTestGame(t, 1, 80, 24)
	step(g) // spawns
	start := g.board.ActiveCells()[0]

	// At 60 ticks per second the 500ms interval elapses strictly after 30 ticks.
	for range 30 {
		step(g)
	}
	if got := g.board.ActiveCells()[0]; got != start {
		t.Fatalf("piece moved to %v after 30 ticks, expected %v", got, start)
	}
	step(g)
	if got := g.board.ActiveCells()[0]; got.Row != start.Row+1 {
		t.Errorf("row after 31 ticks = %d, expected %d", got.Row, start.Row+1)
	}
}

func TestHorizontalInput(t *testing.T) {
	g := newTestGame(t, 2, 80, 24)
	step(g)
	before := g.board.ActiveCells()

	step(g, core.ActionLeft)
	after := g.board.ActiveCells()
	for i := range before {
		if after[i].Col != before[i].Col-1 || after[i].Row != before[i].Row {
			t.Fatalf("cell %d = %v after Left, expected col %d", i, after[i], before[i].Col-1)
		}
	}

	// Left and right together cancel out.
	step(g, core.ActionLeft, core.ActionRight)
	for i, c := range g.board.ActiveCells() {
		if c != after[i] {
			t.Errorf("cell %d = %v, expected %v", i, c, after[i])
		}
	}
}

func TestHardDropLocksAndSpawns(t *testing.T) {
	g := newTestGame(t, 3, 80, 24)
	step(g)
	step(g, core.ActionHardDrop)

	snap := g.Snapshot().Board
	if snap.Locked != 4 {
		t.Errorf("Locked = %d, expected 4", snap.Locked)
	}
	if snap.Pieces != 2 {
		t.Errorf("Pieces = %d, expected 2", snap.Pieces)
	}
	if snap.State != board.StateActive {
		t.Errorf("State = %v, expected active", snap.State)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, 4, 80, 24)
	step(g)

	res := step(g, core.ActionPause)
	if !res.State.Paused {
		t.Fatal("expected paused after Pause")
	}
	tick := g.board.Snapshot().Tick
	for range 100 {
		step(g, core.ActionHardDrop)
	}
	if got := g.board.Snapshot().Tick; got != tick {
		t.Errorf("board tick = %d while paused, expected %d", got, tick)
	}

	res = step(g, core.ActionPause)
	if res.State.Paused {
		t.Error("expected running after second Pause")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t, 5, 80, 24)

	// Stacking pieces in the middle never clears a line, so the field tops out.
	for i := 0; i < 1000 && !g.State().GameOver; i++ {
		step(g, core.ActionHardDrop)
	}
	if !g.State().GameOver {
		t.Fatal("expected game over after repeated hard drops")
	}

	// Restart is the only way out.
	step(g, core.ActionPause)
	if !g.State().GameOver || g.paused {
		t.Fatal("Pause must not affect a finished game")
	}

	step(g, core.ActionRestart)
	if g.State().GameOver {
		t.Fatal("expected a new game after Restart")
	}
	if snap := g.board.Snapshot(); snap.Locked != 0 || snap.Pieces != 0 {
		t.Errorf("board after restart = %+v, expected empty", snap)
	}
}

func TestRenderField(t *testing.T) {
	g := newTestGame(t, 6, 80, 24)
	step(g)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// 10 columns plus two walls, two characters each, centered in 80.
	const left, top = 28, hudHeight
	wall := core.RGB(0.5, 0.5, 0.5)

	tests := []struct {
		name string
		x, y int
	}{
		{"left wall top", left, top},
		{"left wall bottom", left, top + 20},
		{"right wall top", left + 22, top},
		{"bottom wall", left + 2, top + 20},
		{"bottom wall last column", left + 20, top + 20},
	}
	for _, tt := range tests {
		cell := screen.GetCell(tt.x, tt.y)
		if cell.Rune != '[' || screen.Get(tt.x+1, tt.y) != ']' {
			t.Errorf("%s: got %q, expected \"[]\"", tt.name, screen.Row(tt.y)[tt.x:tt.x+2])
		}
		if cell.Color != wall {
			t.Errorf("%s: color = %d, expected %d", tt.name, cell.Color, wall)
		}
	}

	for _, c := range g.board.ActiveCells() {
		x, y := left+(c.Col+1)*2, top+c.Row
		if screen.Get(x, y) != '[' {
			t.Errorf("active cell %v not drawn at (%d, %d)", c, x, y)
		}
	}

	// An empty cell far below the spawn area.
	if got := screen.Get(left+3, top+10); got != '.' {
		t.Errorf("empty cell = %q, expected '.'", got)
	}

	if !strings.Contains(screen.Row(0), "Pieces: 1") {
		t.Errorf("HUD = %q, expected piece count", screen.Row(0))
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := newTestGame(t, 7, 20, 10)

	res := step(g)
	if !res.State.Paused || !g.Snapshot().TooSmall {
		t.Fatal("expected the game to hold while the screen is too small")
	}
	if g.board.Snapshot().Tick != 0 {
		t.Error("board advanced on a too-small screen")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small overlay, got:\n%s", screen.String())
	}

	g.Resize(80, 24)
	step(g)
	if g.board.Snapshot().Pieces != 1 {
		t.Error("expected the board to run after resizing")
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(t, 8, 80, 24)
	for i := 0; i < 1000 && !g.State().GameOver; i++ {
		step(g, core.ActionHardDrop)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over") {
		t.Errorf("expected game over overlay, got:\n%s", screen.String())
	}
}
