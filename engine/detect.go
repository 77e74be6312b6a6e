package engine

// classifySpin runs the three-corner T-spin test after a lock: the piece's
// rotation center is its box anchor offset by (+1, +1), and a diagonal
// corner counts as occupied when it holds a locked cell or lies outside
// the board. The test only applies to a T piece whose last state change
// was a rotation, and only when at least one line cleared. The board must
// already be line-compacted; the classifier reads the post-clear grid.
//
// The mini variant requires exactly one occupied "front" corner — the pair
// on the side the point faces, keyed directly by rotation state (0 top,
// 1 right, 2 bottom, 3 left) — and exactly one cleared line. The mapping
// deliberately ignores kick-induced translation.
func classifySpin(b *Board, p Piece, cleared int) (spin, mini bool) {
	if p.Kind != KindT || p.Last != ActionRotated || cleared <= 0 {
		return false, false
	}

	cx, cy := p.X+1, p.Y+1
	corners := [4][2]int{
		{cx - 1, cy - 1}, {cx + 1, cy - 1},
		{cx - 1, cy + 1}, {cx + 1, cy + 1},
	}
	occ := 0
	for _, c := range corners {
		if cornerOccupied(b, c[0], c[1]) {
			occ++
		}
	}
	if occ < 3 {
		return false, false
	}

	var front [2][2]int
	switch p.Rot {
	case 0:
		front = [2][2]int{{cx - 1, cy - 1}, {cx + 1, cy - 1}}
	case 1:
		front = [2][2]int{{cx + 1, cy - 1}, {cx + 1, cy + 1}}
	case 2:
		front = [2][2]int{{cx - 1, cy + 1}, {cx + 1, cy + 1}}
	case 3:
		front = [2][2]int{{cx - 1, cy - 1}, {cx - 1, cy + 1}}
	}
	focc := 0
	for _, c := range front {
		if cornerOccupied(b, c[0], c[1]) {
			focc++
		}
	}
	return true, focc == 1 && cleared == 1
}

// cornerOccupied treats anything outside the board as solid wall.
func cornerOccupied(b *Board, x, y int) bool {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return true
	}
	return b.grid[y][x] != CellEmpty
}
