package ramp

import (
	"time"

	"rgbcal/x/mathx"
)

// Step sets the new logical level in [0..top].
type Step func(level uint32)

// Tick waits for d and reports whether to continue (false => cancelled).
type Tick func(d time.Duration) bool

// Linear runs a synchronous (caller-driven) integer ramp from cur to to over
// duration, in at most steps updates. Tick handles timing and cancellation.
// steps==0 or duration==0 snaps to 'to'. It reports false if tick cancelled.
func Linear(cur, to, top uint32, duration time.Duration, steps uint32, tick Tick, set Step) bool {
	to = mathx.Min(to, top)
	if steps == 0 || duration <= 0 {
		set(to)
		return true
	}
	d := int64(to) - int64(cur)
	st := int64(steps)
	acc := int64(0)
	cur64 := int64(cur)
	stepDur := duration / time.Duration(steps)
	if stepDur <= 0 {
		stepDur = time.Millisecond
	}

	for i := uint32(1); i < steps; i++ {
		if !tick(stepDur) {
			return false
		}
		acc += d
		inc := acc / st
		if inc != 0 {
			acc -= inc * st
			cur64 = mathx.Clamp(cur64+inc, 0, int64(top))
			set(uint32(cur64))
		}
	}
	if !tick(stepDur) {
		return false
	}
	set(to)
	return true
}
