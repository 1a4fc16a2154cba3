package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/board"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/geometry"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		w, h := g.fieldSize()
		g.renderOverlay(dst, core.ColorYellow, "Window too small", fmt.Sprintf("Need %dx%d", w, h+hudHeight))
		return
	}

	g.renderField(dst)

	switch {
	case g.board.State() == board.StateGameOver:
		g.renderOverlay(dst, core.ColorRed, "Game Over", fmt.Sprintf("Lines: %d  Press R to restart", g.board.LinesCleared()))
	case g.paused:
		g.renderOverlay(dst, core.ColorYellow, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	const title = " Tetris"
	dst.DrawTextColored(0, 0, title, core.ColorCyan)
	dst.DrawText(len(title), 0, fmt.Sprintf(" | Lines: %d  Pieces: %d  Shape: %s",
		g.board.LinesCleared(), g.board.PiecesSpawned(), g.board.Shape()))
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderField draws the empty cells, then every quad of the board's view.
// Walls sit at column -1, column cols and row rows.
func (g *Game) renderField(dst *core.Screen) {
	layout := g.board.Layout()
	for row := range layout.Rows {
		for col := range layout.Cols {
			x, y := g.cellOrigin(row, col)
			dst.DrawTextColored(x, y, " .", core.ColorGray)
		}
	}

	g.board.View().EachQuad(func(tl geometry.Vertex) {
		row, col := layout.YIndex(tl.Y), layout.XIndex(tl.X)
		x, y := g.cellOrigin(row, col)
		dst.DrawTextColored(x, y, "[]", core.RGB(tl.R, tl.G, tl.B))
	})
}

// cellOrigin returns the screen position of the left half of a block.
func (g *Game) cellOrigin(row, col int) (x, y int) {
	return g.field.X + (col+1)*cellWidth, g.field.Y + row
}

// renderOverlay draws a centered box with a colored title and a hint line.
func (g *Game) renderOverlay(dst *core.Screen, c core.Color, title, hint string) {
	boxW := max(len(title), len(hint)) + 4
	box := dst.Bounds().Centered(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColored(box.X+(box.W-len(title))/2, box.Y+1, title, c)
	dst.DrawTextCentered(box.Y+3, hint)
}
