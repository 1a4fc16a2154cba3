package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// colorStyles holds one foreground style per ANSI-256 color.
var colorStyles = func() [256]lipgloss.Style {
	var styles [256]lipgloss.Style
	for i := range styles {
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(i)))
	}
	return styles
}()

var defaultStyle = lipgloss.NewStyle()

// styleFor returns the style for a screen color. ColorDefault and values
// outside the palette render unstyled.
func styleFor(c core.Color) lipgloss.Style {
	if c < 0 || int(c) >= len(colorStyles) {
		return defaultStyle
	}
	return colorStyles[c]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
