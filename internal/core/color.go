package core

// Color is the foreground color of a screen cell, as an ANSI 256-color code.
// ColorDefault leaves the terminal's own color in place.
type Color int16

// Predefined colors for HUD and overlay elements.
const (
	ColorDefault Color = -1

	ColorRed    Color = 1
	ColorYellow Color = 3
	ColorCyan   Color = 6
	ColorGray   Color = 245
)

// RGB maps a color with components in [0, 1] onto the 6x6x6 ANSI color cube.
func RGB(r, g, b float32) Color {
	level := func(v float32) int {
		return Clamp(int(v*5+0.5), 0, 5)
	}
	return Color(16 + 36*level(r) + 6*level(g) + level(b))
}
