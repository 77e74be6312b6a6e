package engine

// Player intents. Each applies synchronously, outside the timed update,
// and reports whether it took effect. Intents are rejected outright while
// the session is paused or over.

// tryShift attempts to translate the active piece by (dx, dy). A success
// while the lock-delay timer is armed resets the timer, bounded by the
// per-piece reset budget.
func (g *Game) tryShift(dx, dy int) bool {
	probe := g.Piece
	probe.X += dx
	probe.Y += dy
	if g.Board.Collides(probe) {
		return false
	}
	probe.Last = ActionMoved
	g.Piece = probe
	g.resetLockTimer()
	return true
}

// resetLockTimer grants a grounded move or rotation another full lock
// delay, at most MaxLockResets times per piece. Once the budget is spent
// the timer keeps running and the piece locks on schedule.
func (g *Game) resetLockTimer() {
	if g.lockArmed && g.lockResets < g.Rules.MaxLockResets {
		g.lockTimer = 0
		g.lockResets++
	}
}

// Move shifts the piece one column; dx is -1 or +1.
func (g *Game) Move(dx int) bool {
	if !g.active() {
		return false
	}
	if !g.tryShift(dx, 0) {
		return false
	}
	g.GhostY = g.ghostY()
	return true
}

// SoftDrop nudges the piece one row down. Each cell travelled banks one
// point of drop credit, paid out at lock time.
func (g *Game) SoftDrop() bool {
	if !g.active() {
		return false
	}
	if !g.tryShift(0, 1) {
		return false
	}
	g.softCredit++
	return true
}

// HardDrop sends the piece straight down and locks it in the same frame,
// bypassing the lock-delay timer entirely. Each cell travelled banks two
// points of drop credit.
func (g *Game) HardDrop() {
	if !g.active() {
		return
	}
	for g.tryShift(0, 1) {
		g.hardCredit++
	}
	g.lockPiece()
}

// Rotate attempts a CW, CCW or Half turn via the kick tables. A success
// counts against the bounded lock-delay resets and refreshes the ghost.
func (g *Game) Rotate(dir int) bool {
	if !g.active() {
		return false
	}
	if !tryRotate(&g.Board, &g.Piece, dir) {
		return false
	}
	g.resetLockTimer()
	g.GhostY = g.ghostY()
	return true
}

// HoldSwap stashes the active piece's kind, swapping with a previously
// held kind if there is one. Usable once per spawn cycle. A swapped-in
// piece respawns at its anchor in spawn orientation; if it overlaps the
// stack, the game is over.
func (g *Game) HoldSwap() bool {
	if !g.active() || g.HoldUsed {
		return false
	}
	if !g.HasHold {
		g.Hold = g.Piece.Kind
		g.HasHold = true
		g.spawn()
	} else {
		k := g.Piece.Kind
		g.Piece = spawnPiece(g.Hold)
		g.Hold = k
		if g.Board.Collides(g.Piece) {
			g.flags |= FlagOver
		}
	}
	g.HoldUsed = true
	g.lockArmed = false
	g.lockResets = 0
	g.GhostY = g.ghostY()
	return true
}
