package engine

// Snapshot is a read-only projection of the session for the presentation
// layer: everything a renderer needs, nothing it can mutate through.
type Snapshot struct {
	Cells [Rows][Cols]Cell

	ActiveKind  Kind
	ActiveCells [4][2]int
	GhostCells  [4][2]int

	HasHold  bool
	HoldKind Kind
	HoldUsed bool

	Preview []Kind

	Score     int
	Lines     int
	Level     int
	Combo     int
	B2B       bool
	LastClear ClearKind

	Paused bool
	Over   bool

	// ClearFraction is the remaining share of the line-clear flash, 1 just
	// after a clear down to 0; ClearRows holds the first ClearCount cleared
	// row indices of that clear.
	ClearFraction float64
	ClearRows     [4]int
	ClearCount    int
}

// Snapshot assembles the current view.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Cells:      g.Board.grid,
		ActiveKind: g.Piece.Kind,
		HasHold:    g.HasHold,
		HoldKind:   g.Hold,
		HoldUsed:   g.HoldUsed,
		Preview:    g.Queue.Preview(),
		Score:      g.Score,
		Lines:      g.Lines,
		Level:      g.Level,
		Combo:      g.Combo,
		B2B:        g.B2B,
		LastClear:  g.LastClear,
		Paused:     g.Paused(),
		Over:       g.Over(),
		ClearRows:  g.clearRows,
		ClearCount: g.clearCount,
	}
	s.ActiveCells = g.Piece.Cells()
	ghost := g.Piece
	ghost.Y = g.GhostY
	s.GhostCells = ghost.Cells()
	if g.Rules.ClearAnim > 0 {
		s.ClearFraction = g.clearTimer / g.Rules.ClearAnim
	}
	return s
}
