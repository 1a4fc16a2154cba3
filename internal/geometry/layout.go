// Package geometry converts board grid coordinates into render-space quads.
// Positions are normalized device coordinates: x and y span [-1, 1] with y
// pointing up, so row 0 is the top of the playing field.
package geometry

import "math"

// Layout maps grid cells to NDC positions for a board of the given size.
// Walls occupy column -1, column Cols and row Rows.
type Layout struct {
	Rows int
	Cols int

	blockLength float32
	leftX       float32
	rightX      float32
}

// NewLayout creates the layout for a rows x cols playing field.
// The block size is derived from the viewport height so the field plus the
// bottom wall fills it exactly.
func NewLayout(rows, cols int) Layout {
	bl := 2 / float32(rows+1)
	left := -float32(cols/2) * bl
	return Layout{
		Rows:        rows,
		Cols:        cols,
		blockLength: bl,
		leftX:       left,
		rightX:      left + float32(cols+1)*bl,
	}
}

// BlockLength returns the side of one block in NDC units.
func (l Layout) BlockLength() float32 {
	return l.blockLength
}

// LeftWallX returns the x of the left wall's top-left vertices.
func (l Layout) LeftWallX() float32 {
	return l.leftX
}

// RightWallX returns the x of the right wall's top-left vertices.
func (l Layout) RightWallX() float32 {
	return l.rightX
}

// XPosition returns the top-left x of a block in the given column.
func (l Layout) XPosition(col int) float32 {
	return l.leftX + l.blockLength + float32(col)*l.blockLength
}

// YPosition returns the top-left y of a block in the given row.
func (l Layout) YPosition(row int) float32 {
	return 1 - float32(row)*l.blockLength
}

// XIndex is the rounded inverse of XPosition.
// Rounding absorbs the drift left by repeated float translation.
func (l Layout) XIndex(x float32) int {
	return int(math.Round(float64((x - l.leftX - l.blockLength) / l.blockLength)))
}

// YIndex is the rounded inverse of YPosition.
func (l Layout) YIndex(y float32) int {
	return int(math.Round(float64((1 - y) / l.blockLength)))
}
