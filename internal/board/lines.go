package board

// clearLines removes every full row from the dynamic region, drops the quads
// above each cleared row and rebuilds the grid from vertex positions.
// It runs only after a lock, when the dynamic region holds locked quads only.
func (b *Board) clearLines() {
	full := b.grid.FullRows()
	if len(full) == 0 {
		return
	}

	cleared := make([]bool, b.cfg.Rows)
	for _, r := range full {
		cleared[r] = true
	}

	// Decide survivors before compacting so the filter never reads moved data.
	n := b.mesh.QuadCount()
	keep := make([]bool, n)
	for q := range n {
		if q < b.firstPieceQuad {
			keep[q] = true
			continue
		}
		row, _ := b.mesh.Quad(q).Cell(b.layout)
		keep[q] = row < 0 || row >= b.cfg.Rows || !cleared[row]
	}
	removed := b.mesh.Compact(func(q int) bool { return keep[q] })

	// Each survivor falls by the number of cleared rows beneath it.
	bl := b.layout.BlockLength()
	for q := b.firstPieceQuad; q < b.mesh.QuadCount(); q++ {
		quad := b.mesh.Quad(q)
		row, _ := quad.Cell(b.layout)
		drop := 0
		for _, r := range full {
			if r > row {
				drop++
			}
		}
		if drop > 0 {
			quad.Translate(0, -float32(drop)*bl)
		}
	}

	b.rebuildGrid()
	b.linesCleared += len(full)
	b.logger.Debug("lines cleared", "rows", full, "quads_removed", removed, "total", b.linesCleared)
}

// rebuildGrid recomputes occupancy from the locked quads' positions.
func (b *Board) rebuildGrid() {
	b.grid.Clear()
	end := b.mesh.QuadCount()
	if b.currentPieceQuad >= 0 {
		end = b.currentPieceQuad
	}
	for q := b.firstPieceQuad; q < end; q++ {
		row, col := b.mesh.Quad(q).Cell(b.layout)
		b.grid.SetOccupied(row, col)
	}
}
