// Package window runs the game in an Ebitengine window. The board's vertex
// and index buffers are drawn directly with DrawTriangles, so the window shows
// exactly the quads the board produced.
package window

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/geometry"
)

// Defaults for Options.
const (
	DefaultWidth  = 480
	DefaultHeight = 480
	DefaultScale  = 1
)

var background = color.RGBA{R: 0x12, G: 0x12, B: 0x1a, A: 0xff}

// Options configures the window.
type Options struct {
	Width    int // logical screen width in pixels
	Height   int // logical screen height in pixels
	Scale    int // window size multiplier
	TickRate int
	Title    string
	Logger   *log.Logger
}

func (o *Options) setDefaults() {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if o.TickRate <= 0 {
		o.TickRate = ebiten.DefaultTPS
	}
	if o.Title == "" {
		o.Title = "Tetris"
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}

// Game implements ebiten.Game around a tetris.Game.
type Game struct {
	game   *tetris.Game
	opts   Options
	logger *log.Logger
	input  *keyboard

	block    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// New creates the window game. The tetris game must already be Reset.
func New(game *tetris.Game, opts Options) *Game {
	opts.setDefaults()
	return &Game{
		game:   game,
		opts:   opts,
		logger: opts.Logger,
		input:  newKeyboard(),
	}
}

// Update advances the game by one tick.
func (g *Game) Update() error {
	frame, quit := g.input.poll()
	if quit {
		g.logger.Info("window closed by user")
		return ebiten.Termination
	}
	g.game.Step(frame)
	return nil
}

// Draw renders the board's triangles and a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.block == nil {
		g.block = newBlockImage(blockTextureSize)
	}
	screen.Fill(background)

	if err := g.game.RenderTo(g); err != nil {
		g.logger.Error("render failed", "error", err)
		return
	}
	screen.DrawTriangles(g.vertices, g.indices, g.block, &ebiten.DrawTrianglesOptions{})

	snap := g.game.Snapshot()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lines: %d  Pieces: %d", snap.Board.LinesCleared, snap.Board.Pieces), 4, 4)
	switch state := g.game.State(); {
	case state.GameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press R", 4, 20)
	case state.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", 4, 20)
	}
}

// Layout returns the fixed logical screen size; Ebitengine scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Width, g.opts.Height
}

// Render converts the board's buffers into Ebitengine vertices. It implements
// board.Renderer and is called from Draw.
func (g *Game) Render(view geometry.View) error {
	g.vertices = toScreenVertices(g.vertices[:0], view, float32(g.opts.Width), float32(g.opts.Height), blockTextureSize)
	indices, err := toIndices16(g.indices[:0], view.Indices)
	if err != nil {
		return err
	}
	g.indices = indices
	return nil
}

// toScreenVertices maps NDC positions to pixels and UVs to texels.
// y grows downward on screen and t grows upward in the texture.
func toScreenVertices(dst []ebiten.Vertex, view geometry.View, w, h float32, texSize int) []ebiten.Vertex {
	ts := float32(texSize)
	for i := range view.VertexCount() {
		v := view.Vertex(i)
		dst = append(dst, ebiten.Vertex{
			DstX:   (v.X + 1) / 2 * w,
			DstY:   (1 - v.Y) / 2 * h,
			SrcX:   v.S * ts,
			SrcY:   (1 - v.T) * ts,
			ColorR: v.R,
			ColorG: v.G,
			ColorB: v.B,
			ColorA: 1,
		})
	}
	return dst
}

// toIndices16 narrows the board's indices to the width DrawTriangles accepts.
func toIndices16(dst []uint16, src []uint32) ([]uint16, error) {
	for _, idx := range src {
		if idx > math.MaxUint16 {
			return dst, fmt.Errorf("window: vertex index %d exceeds 16 bits", idx)
		}
		dst = append(dst, uint16(idx))
	}
	return dst, nil
}

// Run opens the window and blocks until it is closed.
func Run(game *tetris.Game, cfg core.RuntimeConfig, opts Options) error {
	opts.setDefaults()
	if cfg.TickRate > 0 {
		opts.TickRate = cfg.TickRate
	}
	cfg.TickRate = opts.TickRate
	// The terminal-only field size check never triggers on a pixel canvas.
	cfg.ScreenW, cfg.ScreenH = opts.Width, opts.Height
	game.Reset(cfg)

	ebiten.SetWindowSize(opts.Width*opts.Scale, opts.Height*opts.Scale)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(opts.TickRate)

	opts.Logger.Info("window starting", "width", opts.Width, "height", opts.Height, "scale", opts.Scale, "tps", opts.TickRate)
	if err := ebiten.RunGame(New(game, opts)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
