// Package board implements the playing-field state machine: spawning,
// gravity, collision against locked cells, movement, rotation, locking and
// line clears. All geometry lives in a single mesh owned by the Board;
// renderers only ever see the View produced at the end of a tick.
package board

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/geometry"
	"github.com/vovakirdan/tui-tetris/internal/grid"
	"github.com/vovakirdan/tui-tetris/internal/piece"
)

// Default board dimensions and gravity.
const (
	DefaultRows            = 20
	DefaultCols            = 10
	DefaultGravityInterval = 500 * time.Millisecond

	// MinRows and MinCols are the smallest fields that can hold every spawn layout.
	MinRows = 4
	MinCols = 7
)

// DefaultWallColor is the color of the frame quads.
var DefaultWallColor = geometry.RGB{R: 0.5, G: 0.5, B: 0.5}

var (
	// ErrSpawnCollision means a new piece's cells were already occupied.
	ErrSpawnCollision = errors.New("board: spawn position occupied")
	// ErrInvalidSize means the field cannot hold the spawn layouts.
	ErrInvalidSize = errors.New("board: invalid size")
)

// State is the lifecycle stage of the board.
type State int

const (
	StateEmpty    State = iota // no active piece
	StateActive                // a piece is falling
	StateGameOver              // a spawn collided; terminal until Reset
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateActive:
		return "active"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Clock supplies the time used for gravity.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the monotonic wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Renderer draws the board's buffers. It must not retain or modify the view.
type Renderer interface {
	Render(view geometry.View) error
}

// Config holds the board's construction parameters.
// Zero values fall back to the defaults above.
type Config struct {
	Rows            int
	Cols            int
	GravityInterval time.Duration

	// Clock drives gravity. Defaults to SystemClock.
	Clock Clock
	// Source supplies random bits for shape selection.
	// Defaults to a time-seeded source.
	Source rand.Source

	// Colors overrides per-shape colors.
	Colors    map[piece.Shape]geometry.RGB
	WallColor *geometry.RGB

	Logger *log.Logger
}

// Board is the playing field. It is not safe for concurrent use.
type Board struct {
	cfg    Config
	layout geometry.Layout
	mesh   *geometry.Mesh
	grid   *grid.Grid
	picker *piece.Picker
	clock  Clock
	logger *log.Logger

	state            State
	shape            piece.Shape
	firstPieceQuad   int // start of the dynamic region
	currentPieceQuad int // first quad of the active piece, -1 if none

	// Pending input, consumed by the next Update.
	moveX, moveY int
	flip         bool
	drop         bool

	lastDrop      time.Time
	tick          uint64
	linesCleared  int
	piecesSpawned int

	view geometry.View
}

// New creates a board with the frame built and no active piece.
// The first Update spawns a piece.
func New(cfg Config) (*Board, error) {
	if cfg.Rows == 0 {
		cfg.Rows = DefaultRows
	}
	if cfg.Cols == 0 {
		cfg.Cols = DefaultCols
	}
	if cfg.Rows < MinRows || cfg.Cols < MinCols {
		return nil, fmt.Errorf("%w: %dx%d (minimum %dx%d)", ErrInvalidSize, cfg.Rows, cfg.Cols, MinRows, MinCols)
	}
	if cfg.GravityInterval <= 0 {
		cfg.GravityInterval = DefaultGravityInterval
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.Source == nil {
		cfg.Source = rand.NewSource(time.Now().UnixNano())
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	layout := geometry.NewLayout(cfg.Rows, cfg.Cols)
	b := &Board{
		cfg:    cfg,
		layout: layout,
		grid:   grid.New(cfg.Rows, cfg.Cols),
		picker: piece.NewPicker(cfg.Source),
		clock:  cfg.Clock,
		logger: cfg.Logger,
	}
	b.Reset()
	return b, nil
}

// Reset clears the field and rebuilds the frame. The shape sequence continues
// from the random source.
func (b *Board) Reset() {
	b.mesh = geometry.NewMesh(b.layout.BlockLength())
	b.buildFrame()
	b.firstPieceQuad = b.mesh.QuadCount()
	b.currentPieceQuad = -1
	b.grid.Clear()

	b.state = StateEmpty
	b.shape = 0
	b.moveX, b.moveY = 0, 0
	b.flip, b.drop = false, false
	b.tick = 0
	b.linesCleared = 0
	b.piecesSpawned = 0
	b.lastDrop = b.clock.Now()

	b.syncView()
}

// buildFrame appends the left wall, right wall and bottom wall, in that order.
func (b *Board) buildFrame() {
	c := DefaultWallColor
	if b.cfg.WallColor != nil {
		c = *b.cfg.WallColor
	}
	for row := 0; row <= b.cfg.Rows; row++ {
		b.mesh.AppendQuad(b.layout.LeftWallX(), b.layout.YPosition(row), c)
	}
	for row := 0; row <= b.cfg.Rows; row++ {
		b.mesh.AppendQuad(b.layout.RightWallX(), b.layout.YPosition(row), c)
	}
	for col := range b.cfg.Cols {
		b.mesh.AppendQuad(b.layout.XPosition(col), b.layout.YPosition(b.cfg.Rows), c)
	}
}

// SetMoveDirection sets the displacement applied on the next Update.
// dx moves the piece sideways; dy = -1 requests one row down. Pieces never
// move up, so a positive dy is ignored.
func (b *Board) SetMoveDirection(dx, dy int) {
	b.moveX = clampUnit(dx)
	b.moveY = min(clampUnit(dy), 0)
}

// Flip requests a counter-clockwise rotation on the next Update.
func (b *Board) Flip() {
	b.flip = true
}

// Drop requests a hard drop: on the next Update the piece falls until it is
// blocked and locks immediately.
func (b *Board) Drop() {
	b.drop = true
}

// Update advances the board by one tick.
func (b *Board) Update() {
	b.tick++
	if b.state == StateGameOver {
		b.clearPending()
		return
	}

	now := b.clock.Now()
	if b.state == StateActive {
		if now.Sub(b.lastDrop) > b.cfg.GravityInterval {
			b.moveY = -1
			b.lastDrop = now
		}

		b.applyHorizontal()
		b.applyVertical()
		if b.flip && b.state == StateActive {
			b.rotate()
		}
	}
	b.clearPending()

	if b.state == StateEmpty {
		b.spawnNext(now)
	}

	b.syncView()
}

func (b *Board) clearPending() {
	b.moveX, b.moveY = 0, 0
	b.flip, b.drop = false, false
}

// applyHorizontal moves the piece sideways if every destination is legal.
func (b *Board) applyHorizontal() {
	dx := b.moveX
	b.moveX = 0
	if dx == 0 || !b.canShift(0, dx) {
		return
	}
	bl := b.layout.BlockLength()
	b.mesh.TranslateQuads(b.currentPieceQuad, b.currentPieceQuad+4, float32(dx)*bl, 0)
}

// applyVertical moves the piece one row down, or locks it when blocked.
func (b *Board) applyVertical() {
	if b.moveY != -1 && !b.drop {
		return
	}
	b.moveY = 0
	bl := b.layout.BlockLength()

	if b.drop {
		b.drop = false
		for b.canShift(1, 0) {
			b.mesh.TranslateQuads(b.currentPieceQuad, b.currentPieceQuad+4, 0, -bl)
		}
		b.lock()
		return
	}

	if b.canShift(1, 0) {
		b.mesh.TranslateQuads(b.currentPieceQuad, b.currentPieceQuad+4, 0, -bl)
		return
	}
	b.lock()
}

// canShift reports whether every active cell moved by (dRow, dCol) is inside
// the field and free.
func (b *Board) canShift(dRow, dCol int) bool {
	for i := range 4 {
		row, col := b.mesh.Quad(b.currentPieceQuad + i).Cell(b.layout)
		if !b.free(row+dRow, col+dCol) {
			return false
		}
	}
	return true
}

// free reports whether a cell is in bounds and not locked.
func (b *Board) free(row, col int) bool {
	return b.grid.InBounds(row, col) && !b.grid.IsOccupied(row, col)
}

// lock converts the active piece into locked cells and runs the line clear.
func (b *Board) lock() {
	var cells [4]piece.Cell
	for i := range 4 {
		row, col := b.mesh.Quad(b.currentPieceQuad + i).Cell(b.layout)
		b.grid.SetOccupied(row, col)
		cells[i] = piece.Cell{Row: row, Col: col}
	}
	b.logger.Debug("piece locked", "shape", b.shape, "cells", cells, "tick", b.tick)

	b.currentPieceQuad = -1
	b.state = StateEmpty
	b.clearLines()
}

// spawnNext spawns a random shape, ending the game if it does not fit.
func (b *Board) spawnNext(now time.Time) {
	shape := b.picker.Next()
	if err := b.spawn(shape, now); err != nil {
		b.state = StateGameOver
		b.logger.Info("game over", "error", err, "pieces", b.piecesSpawned, "lines", b.linesCleared)
	}
}

// spawn appends the four quads of shape at its spawn position.
func (b *Board) spawn(shape piece.Shape, now time.Time) error {
	cells := piece.Spawn(shape, b.cfg.Cols)
	for _, c := range cells {
		if b.grid.IsOccupied(c.Row, c.Col) {
			return fmt.Errorf("%w: %s at row %d col %d", ErrSpawnCollision, shape, c.Row, c.Col)
		}
	}

	color := b.color(shape)
	first := b.mesh.QuadCount()
	for _, c := range cells {
		b.mesh.AppendQuad(b.layout.XPosition(c.Col), b.layout.YPosition(c.Row), color)
	}

	b.currentPieceQuad = first
	b.shape = shape
	b.state = StateActive
	b.lastDrop = now
	b.piecesSpawned++
	b.logger.Debug("piece spawned", "shape", shape, "tick", b.tick)
	return nil
}

func (b *Board) color(shape piece.Shape) geometry.RGB {
	if c, ok := b.cfg.Colors[shape]; ok {
		return c
	}
	return piece.Color(shape)
}

func (b *Board) syncView() {
	b.mesh.View(&b.view)
}

// View returns the buffers as of the last Update. The slices are reused on
// the next tick and must not be modified.
func (b *Board) View() geometry.View {
	return b.view
}

// Render hands the current buffers to r.
func (b *Board) Render(r Renderer) error {
	return r.Render(b.view)
}

// Layout returns the grid to render-space mapping.
func (b *Board) Layout() geometry.Layout {
	return b.layout
}

// State returns the lifecycle state.
func (b *Board) State() State {
	return b.state
}

// Shape returns the active piece's shape, or 0 when none is active.
func (b *Board) Shape() piece.Shape {
	if b.state != StateActive {
		return 0
	}
	return b.shape
}

// Occupied reports whether a locked block sits at (row, col).
func (b *Board) Occupied(row, col int) bool {
	return b.grid.IsOccupied(row, col)
}

// Occupancy returns an ASCII dump of the locked cells.
func (b *Board) Occupancy() string {
	return b.grid.String()
}

// ActiveCells returns the active piece's cells in quad order, or nil.
func (b *Board) ActiveCells() []piece.Cell {
	if b.currentPieceQuad < 0 {
		return nil
	}
	cells := make([]piece.Cell, 4)
	for i := range cells {
		row, col := b.mesh.Quad(b.currentPieceQuad + i).Cell(b.layout)
		cells[i] = piece.Cell{Row: row, Col: col}
	}
	return cells
}

// LinesCleared returns the number of rows removed since the last Reset.
func (b *Board) LinesCleared() int {
	return b.linesCleared
}

// PiecesSpawned returns the number of pieces spawned since the last Reset.
func (b *Board) PiecesSpawned() int {
	return b.piecesSpawned
}

func clampUnit(v int) int {
	return max(-1, min(1, v))
}
