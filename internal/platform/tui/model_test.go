package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// fakeGame records what the model hands it.
type fakeGame struct {
	resets   int
	steps    []core.InputFrame
	width    int
	height   int
	gameOver bool
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Resize(width, height int) { g.width, g.height = width, height }
func (g *fakeGame) State() core.GameState { return core.GameState{GameOver: g.gameOver} }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.width, g.height = cfg.ScreenW, cfg.ScreenH
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a, ok := range in.Actions {
		if ok {
			frame.Set(a)
		}
	}
	g.steps = append(g.steps, frame)
	return core.StepResult{State: g.State()}
}

func newTestModel(g *fakeGame) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, nil)
}

func TestModelInitResetsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	if cmd := m.Init(); cmd == nil {
		t.Error("Init() returned no tick command")
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
	if g.height != 24-helpHeight {
		t.Errorf("game height = %d, expected %d", g.height, 24-helpHeight)
	}
}

func TestModelForwardsActionsOnTick(t *testing.T) {
	g := &fakeGame{}
	var m tea.Model = newTestModel(g)

	m, _ = m.Update(runeKey('a'))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
	if len(g.steps) != 1 {
		t.Fatalf("steps = %d, expected 1", len(g.steps))
	}
	if !g.steps[0].Has(core.ActionLeft) || !g.steps[0].Has(core.ActionHardDrop) {
		t.Errorf("step input = %v, expected Left and HardDrop", g.steps[0].Actions)
	}

	// Input is cleared between ticks.
	_, _ = m.Update(TickMsg{})
	if len(g.steps[1].Actions) != 0 {
		t.Errorf("second step input = %v, expected none", g.steps[1].Actions)
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &fakeGame{}
	var m tea.Model = newTestModel(g)

	m, _ = m.Update(runeKey('r'))
	m, _ = m.Update(TickMsg{})
	if g.steps[0].Has(core.ActionRestart) {
		t.Error("restart forwarded while the game is running")
	}

	g.gameOver = true
	m, _ = m.Update(TickMsg{}) // model learns about game over
	m, _ = m.Update(runeKey('r'))
	_, _ = m.Update(TickMsg{})
	if !g.steps[2].Has(core.ActionRestart) {
		t.Error("restart not forwarded after game over")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&fakeGame{})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if next.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestModelResizeAndHelp(t *testing.T) {
	g := &fakeGame{}
	var m tea.Model = newTestModel(g)

	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.width != 100 || g.height != 40-helpHeight {
		t.Errorf("game size = %dx%d, expected 100x%d", g.width, g.height, 40-helpHeight)
	}

	// Full help takes three lines.
	_, _ = m.Update(runeKey('?'))
	if g.height != 37 {
		t.Errorf("game height with full help = %d, expected 37", g.height)
	}
}
