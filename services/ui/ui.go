// Package ui is the two-button, one-knob control loop.
//
// Buttons select the parameter the knob edits:
//
//	none  -> frame rate (10..160 fps)
//	A     -> blue
//	B     -> green
//	A + B -> red
package ui

import (
	"context"

	"rgbcal/services/state"
	"rgbcal/types"
	"rgbcal/x/conv"
	"rgbcal/x/logx"
	"rgbcal/x/timex"
)

// Knob returns the current quantized knob position in [0, Levels-1].
type Knob interface {
	Measure() uint32
}

// Button reports the logical (already inverted) pressed state.
type Button interface {
	Pressed() bool
}

// uiState caches what the controller last applied. It is the source of the
// show block and of change detection.
type uiState struct {
	levels    [types.Channels]uint32
	frameRate uint64
	current   types.Parameter
}

func defaultState() uiState {
	return uiState{
		levels:    [types.Channels]uint32{types.Levels - 1, types.Levels - 1, types.Levels - 1},
		frameRate: types.DefaultFrameRate,
		current:   types.ParamFrameRate,
	}
}

type Controller struct {
	knob    Knob
	buttonA Button
	buttonB Button
	shared  *state.Shared
	log     *logx.Logger
	sleep   timex.Sleeper

	st uiState
}

// New takes ownership of the knob and both buttons.
func New(k Knob, a, b Button, shared *state.Shared, log *logx.Logger) *Controller {
	return &Controller{
		knob:    k,
		buttonA: a,
		buttonB: b,
		shared:  shared,
		log:     log,
		sleep:   timex.NewSleeper(),
		st:      defaultState(),
	}
}

// Run seeds the blue channel from the knob, then polls every UIPollPeriod
// until ctx is done.
func (c *Controller) Run(ctx context.Context) {
	c.seed()
	for {
		c.poll()
		if !c.sleep.Sleep(ctx, types.UIPollPeriod) {
			return
		}
	}
}

func (c *Controller) seed() {
	q := c.knob.Measure()
	c.st.levels[types.Blue] = q
	c.shared.SetLevels(func(l *[types.Channels]uint32) { l[types.Blue] = q })
	c.show()
}

// poll runs one controller tick. At most one parameter, the selected one,
// changes per tick.
func (c *Controller) poll() {
	p := c.readButtons()
	if p != c.st.current {
		c.st.current = p
		c.log.Line("Now controlling: " + p.String())
		c.show()
	}

	v := mapKnob(c.knob.Measure(), p)
	if !c.apply(p, v) {
		return
	}
	c.show()
	c.publish(p)
}

func (c *Controller) readButtons() types.Parameter {
	switch a, b := c.buttonA.Pressed(), c.buttonB.Pressed(); {
	case a && b:
		return types.ParamRed
	case a:
		return types.ParamBlue
	case b:
		return types.ParamGreen
	default:
		return types.ParamFrameRate
	}
}

// mapKnob converts a knob step to the value range of p.
func mapKnob(q uint32, p types.Parameter) uint32 {
	if p == types.ParamFrameRate {
		return types.FrameRateMin + q*types.FrameRateStep
	}
	return q
}

// apply stores v in the cache and reports whether it changed.
func (c *Controller) apply(p types.Parameter, v uint32) bool {
	if ch, ok := p.Channel(); ok {
		if c.st.levels[ch] == v {
			return false
		}
		c.st.levels[ch] = v
		return true
	}
	if c.st.frameRate == uint64(v) {
		return false
	}
	c.st.frameRate = uint64(v)
	return true
}

func (c *Controller) publish(p types.Parameter) {
	if ch, ok := p.Channel(); ok {
		v := c.st.levels[ch]
		c.shared.SetLevels(func(l *[types.Channels]uint32) { l[ch] = v })
		return
	}
	fr := c.st.frameRate
	c.shared.SetFrameRate(func(fps *uint64) { *fps = fr })
	c.log.Uint("Frame rate changed to : ", fr, " fps")
}

func (c *Controller) show() {
	c.log.Block(
		"",
		types.ChannelNames[types.Red]+": "+conv.Utoa(uint64(c.st.levels[types.Red])),
		types.ChannelNames[types.Green]+": "+conv.Utoa(uint64(c.st.levels[types.Green])),
		types.ChannelNames[types.Blue]+": "+conv.Utoa(uint64(c.st.levels[types.Blue])),
		"frame rate: "+conv.Utoa(c.st.frameRate),
	)
}
