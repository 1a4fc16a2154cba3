package board

import "github.com/vovakirdan/tui-tetris/internal/geometry"

// rotate turns the active piece 90° counter-clockwise about the center of
// its second quad. The rotation is all-or-nothing: if any rotated cell leaves
// the field or lands on a locked block, the piece is left untouched.
func (b *Board) rotate() {
	if !b.shape.Rotates() {
		return
	}

	bl := b.layout.BlockLength()
	pivot := b.mesh.Quad(b.currentPieceQuad + 1)[geometry.TopLeft]
	px := pivot.X + bl/2
	py := pivot.Y - bl/2

	var rotated [4][geometry.VerticesPerQuad]geometry.Vertex
	for i := range rotated {
		q := b.mesh.Quad(b.currentPieceQuad + i)

		var turned [geometry.VerticesPerQuad]geometry.Vertex
		for j, v := range q {
			v.X, v.Y = -(v.Y-py)+px, (v.X-px)+py
			turned[j] = v
		}

		// A quarter turn moves each corner to the next slot; restore the
		// top-left, top-right, bottom-left, bottom-right order.
		rotated[i] = [geometry.VerticesPerQuad]geometry.Vertex{
			geometry.TopLeft:     turned[geometry.TopRight],
			geometry.TopRight:    turned[geometry.BottomRight],
			geometry.BottomLeft:  turned[geometry.TopLeft],
			geometry.BottomRight: turned[geometry.BottomLeft],
		}

		row := b.layout.YIndex(rotated[i][geometry.TopLeft].Y)
		col := b.layout.XIndex(rotated[i][geometry.TopLeft].X)
		if !b.free(row, col) {
			b.logger.Debug("rotation blocked", "shape", b.shape, "row", row, "col", col)
			return
		}
	}

	for i := range rotated {
		q := b.mesh.Quad(b.currentPieceQuad + i)
		copy(q, rotated[i][:])
		q.ResetUV()
	}
}
