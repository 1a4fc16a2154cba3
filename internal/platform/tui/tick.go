// Package tui runs a core.Game inside a Bubble Tea program. It owns the tick
// loop, key bindings and the conversion of the screen buffer into styled text.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Supported simulation rates.
const (
	MinTickRate = 1
	MaxTickRate = 240
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(core.Clamp(tickRate, MinTickRate, MaxTickRate))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
