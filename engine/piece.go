package engine

// Piece is the active falling tetromino. It is a plain value type: probing
// a speculative position (ghost row, grounded check, kick search) is a
// struct copy, never a shared reference.
type Piece struct {
	Kind Kind
	Rot  uint8 // rotation state 0..3, 0 = spawn orientation
	X    int   // 4×4 box anchor column
	Y    int   // 4×4 box anchor row; negative is above the grid
	Last Action
}

// Spawn anchors. The O piece sits one row higher so its visible cells line
// up with the other spawns.
const (
	spawnX  = 3
	spawnY  = -1
	spawnYO = -HiddenRows
)

// spawnPiece returns a piece of the given kind at its spawn anchor.
func spawnPiece(k Kind) Piece {
	p := Piece{Kind: k, X: spawnX, Y: spawnY}
	if k == KindO {
		p.Y = spawnYO
	}
	return p
}

// shapeMasks holds the 4×4 occupancy of every (kind, rotation state) pair
// as a 16-bit mask, bit r*4+c set when row r, column c of the box is
// filled. Immutable shared data; never written after init.
var shapeMasks = [NumKinds][4]uint16{
	KindI: {0x00F0, 0x4444, 0x0F00, 0x2222},
	KindJ: {0x0071, 0x0226, 0x0470, 0x0322},
	KindL: {0x0074, 0x0622, 0x0170, 0x0223},
	KindO: {0x0066, 0x0066, 0x0066, 0x0066},
	KindS: {0x0036, 0x0462, 0x0360, 0x0231},
	KindT: {0x0072, 0x0262, 0x0270, 0x0232},
	KindZ: {0x0063, 0x0264, 0x0630, 0x0132},
}

// Mask returns the occupancy mask for the piece's current rotation state.
func (p Piece) Mask() uint16 { return shapeMasks[p.Kind][p.Rot] }

// KindCells returns a kind's spawn-orientation cells relative to a zero
// anchor, for rendering preview and hold boxes.
func KindCells(k Kind) [4][2]int {
	return Piece{Kind: k}.Cells()
}

// Cells returns the grid coordinates of the piece's four occupied cells.
func (p Piece) Cells() [4][2]int {
	var out [4][2]int
	n := 0
	m := p.Mask()
	for i := 0; i < 16; i++ {
		if m&(1<<uint(i)) != 0 {
			out[n] = [2]int{p.X + i%4, p.Y + i/4}
			n++
		}
	}
	return out
}
