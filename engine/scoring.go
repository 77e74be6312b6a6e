package engine

// ClearKind classifies a clearing lock for scoring.
type ClearKind uint8

const (
	ClearNone ClearKind = iota
	ClearSingle
	ClearDouble
	ClearTriple
	ClearTetris
	ClearSpinMiniSingle
	ClearSpinSingle
	ClearSpinDouble
	ClearSpinTriple
)

// baseScores holds the fixed point value per classification, before
// back-to-back and combo adjustment.
var baseScores = [...]int{
	ClearNone:           0,
	ClearSingle:         100,
	ClearDouble:         300,
	ClearTriple:         500,
	ClearTetris:         800,
	ClearSpinMiniSingle: 200,
	ClearSpinSingle:     800,
	ClearSpinDouble:     1200,
	ClearSpinTriple:     1600,
}

// classifyClear maps a cleared-line count and the spin test result to a
// ClearKind.
func classifyClear(cleared int, spin, mini bool) ClearKind {
	if spin {
		switch cleared {
		case 1:
			if mini {
				return ClearSpinMiniSingle
			}
			return ClearSpinSingle
		case 2:
			return ClearSpinDouble
		case 3:
			return ClearSpinTriple
		}
		return ClearNone
	}
	switch cleared {
	case 1:
		return ClearSingle
	case 2:
		return ClearDouble
	case 3:
		return ClearTriple
	case 4:
		return ClearTetris
	}
	return ClearNone
}

// Score returns the classification's base point value.
func (c ClearKind) Score() int { return baseScores[c] }

// BackToBack reports whether this clear sustains the back-to-back chain:
// a tetris or any spin variant.
func (c ClearKind) BackToBack() bool { return c >= ClearTetris }

// String names the classification for the HUD and logs.
func (c ClearKind) String() string {
	switch c {
	case ClearSingle:
		return "single"
	case ClearDouble:
		return "double"
	case ClearTriple:
		return "triple"
	case ClearTetris:
		return "tetris"
	case ClearSpinMiniSingle:
		return "t-spin mini single"
	case ClearSpinSingle:
		return "t-spin single"
	case ClearSpinDouble:
		return "t-spin double"
	case ClearSpinTriple:
		return "t-spin triple"
	}
	return "none"
}

// applyClear updates score, combo, back-to-back, line total and level for
// one lock and returns the classification.
func (g *Game) applyClear(cleared int, spin, mini bool) ClearKind {
	kind := classifyClear(cleared, spin, mini)
	if kind == ClearNone {
		// No lines: the combo chain breaks, back-to-back survives.
		g.Combo = -1
		return kind
	}

	base := kind.Score()
	if kind.BackToBack() && g.B2B {
		base = base * 3 / 2 // ×1.5, truncated
	}
	g.B2B = kind.BackToBack()

	if g.Combo >= 0 {
		g.Combo++
	} else {
		g.Combo = 0
	}
	base += 50 * g.Combo

	g.Score += base
	g.Lines += cleared
	g.Level = 1 + g.Lines/10
	return kind
}
