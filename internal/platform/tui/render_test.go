package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestStyleFor(t *testing.T) {
	tests := []struct {
		color  core.Color
		styled bool
	}{
		{core.ColorDefault, false},
		{core.ColorRed, true},
		{core.ColorGray, true},
		{core.RGB(1, 0.5, 0), true},
		{core.Color(300), false},
	}

	for _, tt := range tests {
		_, unset := styleFor(tt.color).GetForeground().(lipgloss.NoColor)
		if set := !unset; set != tt.styled {
			t.Errorf("styleFor(%d) styled = %v, expected %v", tt.color, set, tt.styled)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "[]", core.ColorCyan)
	s.DrawTextColored(0, 1, "xy", core.RGB(1, 1, 0))

	// Tests run without a terminal, so lipgloss emits no escape codes.
	if got, expected := RenderScreen(s), s.String(); got != expected {
		t.Errorf("RenderScreen() = %q, expected %q", got, expected)
	}
}
