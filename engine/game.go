package engine

import "math"

// Session state flags.
const (
	FlagPaused uint8 = 1 << 0
	FlagOver   uint8 = 1 << 1
)

// Game owns the playfield, the active piece, the queue and all session
// bookkeeping. One Game is one session: a restart is a fresh NewGame, not
// a partial unwind. All methods run on a single logical thread of control;
// the shell calls Update once per fixed tick and applies intents between
// ticks, so no partial intent is ever observable.
type Game struct {
	Board Board
	Queue Queue
	Piece Piece
	Rules Rules

	Hold     Kind
	HasHold  bool
	HoldUsed bool // hold already taken since the last spawn

	Score     int
	Lines     int
	Level     int
	Combo     int // -1 = no active chain
	B2B       bool
	LastClear ClearKind

	// GhostY is the row the piece would land on under a hard drop,
	// refreshed after every state change that can move the piece.
	GhostY int

	softCredit int // cells soft-dropped since the last lock, 1 point each
	hardCredit int // cells hard-dropped since the last lock, 2 points each

	gravityAcc float64
	lockArmed  bool
	lockTimer  float64
	lockResets uint8

	clearTimer float64
	clearRows  [4]int
	clearCount int

	flags uint8
}

// NewGame constructs a session. The seed drives the piece sequence; inject
// a fixed value for reproducible games. Invalid rules fail construction.
func NewGame(seed uint64, rules Rules) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	q, err := NewQueue(seed, rules.Preview)
	if err != nil {
		return nil, err
	}
	g := &Game{
		Queue: q,
		Rules: rules,
		Level: 1,
		Combo: -1,
	}
	g.Piece = spawnPiece(g.Queue.Pop())
	g.GhostY = g.ghostY()
	return g, nil
}

// Over reports whether the session has reached its terminal state.
func (g *Game) Over() bool { return g.flags&FlagOver != 0 }

// Paused reports whether the session is frozen.
func (g *Game) Paused() bool { return g.flags&FlagPaused != 0 }

// active reports whether timed updates and intents apply.
func (g *Game) active() bool { return g.flags == 0 }

// TogglePause flips the paused flag. Ignored once the game is over.
func (g *Game) TogglePause() {
	if g.Over() {
		return
	}
	g.flags ^= FlagPaused
}

// gravityInterval returns seconds per gravity row at the given level.
func gravityInterval(level int) float64 {
	return math.Max(0.05, 0.8*math.Pow(0.85, float64(level-1)))
}

// grounded reports whether the active piece cannot descend one more row.
func (g *Game) grounded() bool {
	probe := g.Piece
	probe.Y++
	return g.Board.Collides(probe)
}

// ghostY returns the lowest non-colliding row reachable straight down.
func (g *Game) ghostY() int {
	probe := g.Piece
	for {
		probe.Y++
		if g.Board.Collides(probe) {
			return probe.Y - 1
		}
	}
}

// Update advances timed state by dt seconds: the cosmetic clear flash,
// gravity, and the lock-delay countdown. It is a no-op while paused or
// over — a frozen world.
func (g *Game) Update(dt float64) {
	if !g.active() {
		return
	}

	if g.clearTimer > 0 {
		g.clearTimer -= dt
		if g.clearTimer < 0 {
			g.clearTimer = 0
		}
	}

	interval := gravityInterval(g.Level)
	g.gravityAcc += dt
	for g.gravityAcc >= interval {
		g.gravityAcc -= interval
		if !g.tryShift(0, 1) && !g.lockArmed {
			g.lockArmed = true
			g.lockTimer = 0
		}
	}

	// Grounded state is re-evaluated independently of the gravity step: a
	// horizontal move onto an overhang grounds the piece with no gravity
	// tick involved. Losing support ends the grace period.
	if g.grounded() {
		if !g.lockArmed {
			g.lockArmed = true
			g.lockTimer = 0
		} else {
			g.lockTimer += dt
			if g.lockTimer >= g.Rules.LockDelay {
				g.lockPiece()
			}
		}
	} else {
		g.lockArmed = false
	}

	g.GhostY = g.ghostY()
}

// lockPiece commits the active piece: board write, drop credit, line
// clears, spin classification, scoring, then the next spawn. Triggered by
// lock-delay expiry or a hard drop.
func (g *Game) lockPiece() {
	g.Board.Lock(g.Piece)

	g.Score += g.softCredit + 2*g.hardCredit
	g.softCredit, g.hardCredit = 0, 0

	cleared, rows := g.Board.ClearLines()
	spin, mini := classifySpin(&g.Board, g.Piece, cleared)
	g.LastClear = g.applyClear(cleared, spin, mini)
	if g.LastClear != ClearNone {
		g.clearTimer = g.Rules.ClearAnim
		g.clearRows = rows
		g.clearCount = cleared
	}

	if g.Board.ToppedOut() {
		g.flags |= FlagOver
		return
	}
	g.spawn()
}

// spawn pops the next piece and re-arms the per-piece bookkeeping. A spawn
// that immediately overlaps locked cells ends the game.
func (g *Game) spawn() {
	g.Piece = spawnPiece(g.Queue.Pop())
	g.HoldUsed = false
	g.lockArmed = false
	g.lockResets = 0
	if g.Board.Collides(g.Piece) {
		g.flags |= FlagOver
	}
	g.GhostY = g.ghostY()
}
