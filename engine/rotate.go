package engine

// offset is a kick displacement in grid cells. y grows downward, so these
// tables are the SRS data with the vertical axis flipped to match the grid.
type offset struct{ dx, dy int }

// kick table index for the two quarter-turn directions.
const (
	kickCW  = 0
	kickCCW = 1
)

// jlstzKicks is the shared wall-kick table for the J, L, S, T and Z kinds,
// indexed by from-state and turn direction. Each transition tries five
// offsets in order; the first placement that does not collide wins.
var jlstzKicks = [4][2][5]offset{
	0: {
		kickCW:  {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},  // 0→1
		kickCCW: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},     // 0→3
	},
	1: {
		kickCW:  {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},    // 1→2
		kickCCW: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},    // 1→0
	},
	2: {
		kickCW:  {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},     // 2→3
		kickCCW: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},  // 2→1
	},
	3: {
		kickCW:  {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, // 3→0
		kickCCW: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, // 3→2
	},
}

// iKicks is the I kind's own wall-kick table, same indexing.
var iKicks = [4][2][5]offset{
	0: {
		kickCW:  {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}}, // 0→1
		kickCCW: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}}, // 0→3
	},
	1: {
		kickCW:  {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}}, // 1→2
		kickCCW: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}}, // 1→0
	},
	2: {
		kickCW:  {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}}, // 2→3
		kickCCW: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}}, // 2→1
	},
	3: {
		kickCW:  {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}}, // 3→0
		kickCCW: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}}, // 3→2
	},
}

// halfKicks is the offset list tried for 180° turns, in order. This is
// not a published kick table; keep the list exactly as is.
var halfKicks = [7]offset{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}, {2, 0}, {-2, 0}}

// tryRotate attempts a rotation (CW, CCW or Half) against the board,
// searching the kick offsets for the transition. On success the piece is
// tagged ActionRotated; on failure it is left bit-for-bit unchanged.
func tryRotate(b *Board, p *Piece, dir int) bool {
	if p.Kind == KindO && dir != Half {
		// Shape is rotation-invariant: take the bare rotation, no kicks.
		old := p.Rot
		p.Rot = uint8((int(p.Rot) + dir + 4) % 4)
		if b.Collides(*p) {
			p.Rot = old
			return false
		}
		p.Last = ActionRotated
		return true
	}

	if dir == Half {
		old := *p
		p.Rot = (p.Rot + 2) % 4
		for _, k := range halfKicks {
			p.X = old.X + k.dx
			p.Y = old.Y + k.dy
			if !b.Collides(*p) {
				p.Last = ActionRotated
				return true
			}
		}
		*p = old
		return false
	}

	old := *p
	table := &jlstzKicks
	if p.Kind == KindI {
		table = &iKicks
	}
	di := kickCW
	to := (p.Rot + 1) % 4
	if dir == CCW {
		di = kickCCW
		to = (p.Rot + 3) % 4
	}
	p.Rot = to
	for _, k := range table[old.Rot][di] {
		p.X = old.X + k.dx
		p.Y = old.Y + k.dy
		if !b.Collides(*p) {
			p.Last = ActionRotated
			return true
		}
	}
	*p = old
	return false
}
