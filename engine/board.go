package engine

// Board is the grid of locked cells. Row 0 is the top of the hidden band;
// rows [HiddenRows, Rows) are visible. Only Lock and ClearLines mutate it.
type Board struct {
	grid [Rows][Cols]Cell
}

// Cell returns the cell at (x, y). Out-of-range coordinates read as empty.
func (b *Board) Cell(x, y int) Cell {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return CellEmpty
	}
	return b.grid[y][x]
}

// Collides reports whether any occupied cell of the piece leaves the side
// or bottom bounds or overlaps a locked cell. Cells above row 0 are in the
// spawn buffer and never collide.
func (b *Board) Collides(p Piece) bool {
	for _, c := range p.Cells() {
		x, y := c[0], c[1]
		if y < 0 {
			continue
		}
		if x < 0 || x >= Cols || y >= Rows {
			return true
		}
		if b.grid[y][x] != CellEmpty {
			return true
		}
	}
	return false
}

// Lock writes the piece's kind into every in-bounds cell it occupies.
// Cells above the grid are silently dropped.
func (b *Board) Lock(p Piece) {
	for _, c := range p.Cells() {
		x, y := c[0], c[1]
		if x >= 0 && x < Cols && y >= 0 && y < Rows {
			b.grid[y][x] = CellOf(p.Kind)
		}
	}
}

// ClearLines removes every full row, shifting the rows above each down by
// one and inserting an empty row at the top, preserving the relative order
// of the remaining rows. It returns the number of rows removed and their
// original indices, top to bottom; only the first n entries of rows are
// meaningful. The indices feed the clear flash, nothing else.
func (b *Board) ClearLines() (n int, rows [4]int) {
	for y := 0; y < Rows; y++ {
		full := true
		for x := 0; x < Cols; x++ {
			if b.grid[y][x] == CellEmpty {
				full = false
				break
			}
		}
		if !full {
			continue
		}
		if n < len(rows) {
			rows[n] = y
		}
		n++
		// Rows below a full row never move, so indices found later in this
		// ascending sweep are still original indices.
		copy(b.grid[1:y+1], b.grid[:y])
		b.grid[0] = [Cols]Cell{}
	}
	return n, rows
}

// ToppedOut reports whether any locked cell sits in the hidden band above
// the visible playfield.
func (b *Board) ToppedOut() bool {
	for y := 0; y < HiddenRows; y++ {
		for x := 0; x < Cols; x++ {
			if b.grid[y][x] != CellEmpty {
				return true
			}
		}
	}
	return false
}
