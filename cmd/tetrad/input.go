package main

// Auto-repeat timings for held movement keys, in seconds.
const (
	repeatDelay = 0.15
	repeatRate  = 0.03
)

// repeater turns a held key into a stream of repeats: one on the press
// edge, then a steady rate after the initial delay. Pure state machine,
// fed from the frame loop.
type repeater struct {
	delay float64
	rate  float64

	held  bool
	timer float64
}

func newRepeater() repeater {
	return repeater{delay: repeatDelay, rate: repeatRate}
}

// step advances the repeater by dt and returns how many times the bound
// action should fire this frame.
func (r *repeater) step(held bool, dt float64) int {
	if !held {
		r.held = false
		return 0
	}
	if !r.held {
		r.held = true
		r.timer = 0
		return 1
	}
	r.timer += dt
	n := 0
	for r.timer >= r.delay {
		r.timer -= r.rate
		n++
	}
	return n
}
