// cmd/boardtest/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"tinygo.org/x/drivers"

	"rgbcal/bus"
	"rgbcal/services/config"
	"rgbcal/services/hal"
	"rgbcal/services/knob"
	"rgbcal/services/rgb"
	"rgbcal/services/state"
	"rgbcal/types"
	"rgbcal/x/logx"
	"rgbcal/x/ramp"
	"rgbcal/x/timex"
)

// ---------- Configuration ----------

const (
	deviceID      = "pico"
	configTimeout = 5 * time.Second

	// Sequencing timing
	rampTime  = 1500 * time.Millisecond
	dwellTop  = 500 * time.Millisecond
	frameRate = 100

	// Cycles: 0 = loop forever
	cyclesToRun = 0
)

// ---------- Minimal output to console + board log ----------

type out struct {
	w io.Writer
}

func (o *out) println(a ...any) {
	line := fmt.Sprintln(a...)
	print(line)
	if o.w != nil {
		_, _ = io.WriteString(o.w, line)
	}
}

// ---------- Helpers ----------

func waitBoardConfig(c *bus.Connection, d time.Duration) (types.BoardConfig, bool) {
	sub := c.Subscribe(config.Topic("board"))
	defer c.Unsubscribe(sub)

	select {
	case m := <-sub.Channel():
		cfg, err := types.DecodeBoardConfig(m.Payload)
		if err != nil {
			println("[boardtest] bad board config:", err.Error())
			return types.BoardConfig{}, false
		}
		return cfg, true
	case <-time.After(d):
		return types.BoardConfig{}, false
	}
}

// report prints the knob and buttons whenever they change.
func report(ctx context.Context, o *out, k *knob.Knob, a, b *hal.Button) {
	sl := timex.NewSleeper()
	lastLevel, lastA, lastB := uint32(types.Levels), false, false
	for sl.Sleep(ctx, types.UIPollPeriod) {
		if err := k.Update(drivers.Voltage); err != nil {
			continue
		}
		pa, pb := a.Pressed(), b.Pressed()
		if k.Level() == lastLevel && pa == lastA && pb == lastB {
			continue
		}
		lastLevel, lastA, lastB = k.Level(), pa, pb
		o.println("knob: raw", k.Raw(), "level", lastLevel, "| A", pa, "| B", pb)
	}
}

// sweep ramps one channel up and back down, everything else off.
func sweep(ctx context.Context, shared *state.Shared, ch int) bool {
	sl := timex.NewSleeper()
	tick := func(d time.Duration) bool { return sl.Sleep(ctx, d) }
	set := func(l uint32) {
		shared.SetLevels(func(levels *[types.Channels]uint32) {
			*levels = [types.Channels]uint32{}
			levels[ch] = l
		})
	}
	top := uint32(types.Levels - 1)
	if !ramp.Linear(0, top, top, rampTime, top, tick, set) {
		return false
	}
	if !tick(dwellTop) {
		return false
	}
	return ramp.Linear(top, 0, top, rampTime, top, tick, set)
}

// ---------- Main ----------

func main() {
	ctx := context.WithValue(context.Background(), config.CtxDeviceKey, deviceID)

	b := bus.NewBus(8)
	config.NewConfigService().Start(ctx, b.NewConnection("config"))

	cfg, ok := waitBoardConfig(b.NewConnection("boardtest"), configTimeout)
	if !ok {
		panic("[boardtest] no board config")
	}
	board, err := hal.Open(cfg, hal.DefaultFactories())
	if err != nil {
		panic("[boardtest] hal: " + err.Error())
	}
	o := &out{w: board.Log}

	k, err := knob.New(board.Knob)
	if err != nil {
		panic("[boardtest] knob: " + err.Error())
	}

	shared := state.New()
	stateConn := b.NewConnection("state")
	shared.Observe(stateConn)
	shared.SetFrameRate(func(fps *uint64) { *fps = frameRate })

	var pins [types.Channels]rgb.Pin
	for i, p := range board.LEDs {
		pins[i] = p
	}
	r := rgb.New(pins, shared, frameRate, logx.New(board.Log))
	go r.Run(ctx)
	go report(ctx, o, k, board.ButtonA, board.ButtonB)

	// Echo every level change published by the shared state.
	levelSub := stateConn.Subscribe(bus.T("state", "levels"))
	go func() {
		for m := range levelSub.Channel() {
			if v, ok := m.Payload.(types.LevelsValue); ok {
				print("levels: ", v.Levels[types.Red], " ", v.Levels[types.Green], " ", v.Levels[types.Blue], "\n")
			}
		}
	}()

	cycle := 0
	for {
		cycle++
		o.println("=== boardtest: cycle", cycle, "===")

		for ch := range types.ChannelNames {
			o.println("sweep:", types.ChannelNames[ch])
			if !sweep(ctx, shared, ch) {
				return
			}
		}
		o.println("[DONE] frames rendered:", r.Frames())

		if cyclesToRun > 0 && cycle >= cyclesToRun {
			o.println("completed", cycle, "cycles; halting")
			return
		}
	}
}
