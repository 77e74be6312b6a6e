package engine

import "fmt"

// Rules holds configurable session settings. Zero values are not usable;
// start from DefaultRules and adjust.
type Rules struct {
	Preview       uint8   // upcoming kinds shown to the player, 1..MaxPreview
	LockDelay     float64 // seconds a grounded piece may rest before locking
	MaxLockResets uint8   // grounded move/rotate timer resets allowed per piece
	ClearAnim     float64 // cosmetic line-clear flash duration, seconds
}

// DefaultRules returns the standard settings: 5-piece preview, 0.5 s lock
// delay with at most 15 resets, 0.15 s clear flash.
func DefaultRules() Rules {
	return Rules{
		Preview:       5,
		LockDelay:     0.5,
		MaxLockResets: 15,
		ClearAnim:     0.15,
	}
}

// Validate reports a descriptive error for out-of-range settings. Session
// construction fails fast rather than producing undefined board geometry.
func (r *Rules) Validate() error {
	if r.Preview < 1 || r.Preview > MaxPreview {
		return fmt.Errorf("engine: preview depth %d out of range [1, %d]", r.Preview, MaxPreview)
	}
	if r.LockDelay <= 0 {
		return fmt.Errorf("engine: lock delay %v must be positive", r.LockDelay)
	}
	if r.ClearAnim < 0 {
		return fmt.Errorf("engine: clear animation duration %v must not be negative", r.ClearAnim)
	}
	return nil
}
