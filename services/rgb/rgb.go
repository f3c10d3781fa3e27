// Package rgb renders the shared colour on three LEDs with software PWM.
//
// A frame drives the channels one after another. Each channel owns a slice
// of Levels ticks: level ticks on, then Levels-level ticks off, so a frame
// lasts 3*Levels ticks whatever the brightness values are.
package rgb

import (
	"context"
	"sync/atomic"
	"time"

	"rgbcal/services/state"
	"rgbcal/types"
	"rgbcal/x/logx"
	"rgbcal/x/mathx"
	"rgbcal/x/timex"
)

// Pin is a digital output owned by the renderer.
type Pin interface {
	Set(high bool)
}

// TickTime returns the PWM quantum for frameRate: 1s / (3 * frameRate * Levels).
// A zero rate is coerced to FrameRateMin.
func TickTime(frameRate uint64) time.Duration {
	if frameRate == 0 {
		frameRate = types.FrameRateMin
	}
	return time.Second / time.Duration(types.Channels*frameRate*types.Levels)
}

type Renderer struct {
	pins   [types.Channels]Pin
	shared *state.Shared
	log    *logx.Logger
	sleep  timex.Sleeper

	// Refreshed at the top of every frame.
	levels    [types.Channels]uint32
	tick      time.Duration
	frameRate uint64

	frames atomic.Uint64 // completed frames
}

// New takes ownership of pins and drives them low.
func New(pins [types.Channels]Pin, shared *state.Shared, frameRate uint64, log *logx.Logger) *Renderer {
	for _, p := range pins {
		p.Set(false)
	}
	return &Renderer{
		pins:      pins,
		shared:    shared,
		log:       log,
		sleep:     timex.NewSleeper(),
		tick:      TickTime(frameRate),
		frameRate: frameRate,
	}
}

// Run renders frames until ctx is done.
func (r *Renderer) Run(ctx context.Context) {
	for r.frame(ctx) {
	}
}

// Frames returns the number of completed frames.
func (r *Renderer) Frames() uint64 { return r.frames.Load() }

func (r *Renderer) frame(ctx context.Context) bool {
	r.levels = r.shared.GetLevels()

	if fr := r.shared.GetFrameRate(); fr != r.frameRate {
		r.frameRate = fr
		r.tick = TickTime(fr)
		r.log.Uint("RGB: Frame rate updated to ", fr, " fps")
	}
	for led := range r.pins {
		if !r.step(ctx, led) {
			return false
		}
	}
	r.frames.Add(1)
	return true
}

// step runs one channel slice. The pin is always left low, also on cancellation.
func (r *Renderer) step(ctx context.Context, led int) bool {
	level := mathx.Min(r.levels[led], types.Levels)
	if level > 0 {
		r.pins[led].Set(true)
		ok := r.sleep.Sleep(ctx, time.Duration(level)*r.tick)
		r.pins[led].Set(false)
		if !ok {
			return false
		}
	}
	if off := mathx.SatSub(types.Levels, level); off > 0 {
		return r.sleep.Sleep(ctx, time.Duration(off)*r.tick)
	}
	return ctx.Err() == nil
}
