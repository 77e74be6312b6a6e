// Package engine implements the rules of a guideline-style falling-block
// game: 7-bag piece randomization, SRS rotation with wall kicks, bounded
// lock-delay, line clearing, T-spin detection and scoring.
//
// The package is pure game logic driven by a fixed external tick. Rendering,
// keyboard repeat and score persistence live in the shell (cmd/tetrad and
// the internal packages); the engine never touches graphics or files.
package engine

// Board geometry. The top HiddenRows rows sit above the visible playfield
// and buffer freshly spawned pieces.
const (
	Cols        = 10
	Rows        = 22
	HiddenRows  = 2
	VisibleRows = Rows - HiddenRows
)

// Kind identifies one of the 7 tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ

	NumKinds = 7
)

// String returns the canonical one-letter shape name.
func (k Kind) String() string {
	if k >= NumKinds {
		return "?"
	}
	return string("IJLOSTZ"[k])
}

// Cell is one board cell: CellEmpty, or the kind that locked there plus one.
type Cell uint8

// CellEmpty marks an unoccupied cell.
const CellEmpty Cell = 0

// CellOf returns the cell tag for a locked kind.
func CellOf(k Kind) Cell { return Cell(k) + 1 }

// Kind returns the kind stored in a non-empty cell.
func (c Cell) Kind() Kind { return Kind(c - 1) }

// Action tags the last state-changing thing that happened to the active
// piece. The spin classifier only fires when that was a rotation.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoved
	ActionRotated
)

// Rotation directions accepted by Game.Rotate.
const (
	CW   = 1  // clockwise quarter turn
	CCW  = -1 // counterclockwise quarter turn
	Half = 2  // 180° turn
)
