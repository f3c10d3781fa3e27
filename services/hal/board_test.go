//go:build !rp2040 && !rp2350

package hal

import (
	"bytes"
	"testing"

	"rgbcal/errcode"
	"rgbcal/services/hal/internal/platform"
	"rgbcal/types"
)

type hostBoard struct {
	pins *platform.HostPinFactory
	adcs *platform.HostADCFactory
	out  *bytes.Buffer
}

func newHost() (*hostBoard, Factories) {
	h := &hostBoard{
		pins: &platform.HostPinFactory{},
		adcs: &platform.HostADCFactory{},
		out:  &bytes.Buffer{},
	}
	return h, Factories{Pins: h.pins, ADCs: h.adcs, Logs: platform.HostLogFactory{W: h.out}}
}

func picoConfig() types.BoardConfig {
	return types.BoardConfig{
		LEDs:      [types.Channels]int{13, 14, 15},
		Knob:      26,
		ButtonA:   16,
		ButtonB:   17,
		ActiveLow: true,
	}
}

func TestOpen_ConfiguresPeripherals(t *testing.T) {
	h, f := newHost()
	b, err := Open(picoConfig(), f)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	for i, n := range []int{13, 14, 15} {
		p, ok := h.pins.Get(n)
		if !ok {
			t.Fatalf("led %d: pin %d not created", i, n)
		}
		if !p.IsOutput() || p.Get() {
			t.Fatalf("led %d: output=%v level=%v, want low output", i, p.IsOutput(), p.Get())
		}
		if b.LEDs[i].Number() != n {
			t.Fatalf("led %d: number %d", i, b.LEDs[i].Number())
		}
	}
	for _, n := range []int{16, 17} {
		p, _ := h.pins.Get(n)
		if p.IsOutput() || p.Pull() != PullUp {
			t.Fatalf("button pin %d: output=%v pull=%v", n, p.IsOutput(), p.Pull())
		}
	}
	if owner, ok := b.Owner(26); !ok || owner != "knob" {
		t.Fatalf("owner(26) = %q, %v", owner, ok)
	}

	h.adcs.Get(26).SetRaw(5000)
	if got := b.Knob.Sample(); got != 5000 {
		t.Fatalf("knob sample = %d", got)
	}

	if _, err := b.Log.Write([]byte("x\n")); err != nil || h.out.String() != "x\n" {
		t.Fatalf("log write: %v %q", err, h.out.String())
	}
}

func TestOpen_ButtonsAreActiveLow(t *testing.T) {
	h, f := newHost()
	b, err := Open(picoConfig(), f)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if b.ButtonA.Pressed() || b.ButtonB.Pressed() {
		t.Fatal("idle pulled-up buttons read as pressed")
	}
	pa, _ := h.pins.Get(16)
	pa.Set(false)
	if !b.ButtonA.Pressed() {
		t.Fatal("button A low should read pressed")
	}
	if b.ButtonB.Pressed() {
		t.Fatal("button B should be unaffected")
	}
}

func TestOpen_Errors(t *testing.T) {
	cases := []struct {
		name string
		mod  func(c *types.BoardConfig)
		want errcode.Code
	}{
		{"led shares button pin", func(c *types.BoardConfig) { c.LEDs[types.Green] = 16 }, errcode.PinInUse},
		{"duplicate led", func(c *types.BoardConfig) { c.LEDs[types.Blue] = 13 }, errcode.PinInUse},
		{"pin out of range", func(c *types.BoardConfig) { c.ButtonB = 40 }, errcode.UnknownPin},
		{"knob without adc", func(c *types.BoardConfig) { c.Knob = 2 }, errcode.UnknownPin},
		{"knob on led pin", func(c *types.BoardConfig) { c.LEDs[types.Red] = 26 }, errcode.PinInUse},
		{"uart tx on led pin", func(c *types.BoardConfig) {
			c.Log = types.LogConfig{UART: "uart0", TX: 13, RX: 1}
		}, errcode.PinInUse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, f := newHost()
			cfg := picoConfig()
			tc.mod(&cfg)
			_, err := Open(cfg, f)
			if got := errcode.Of(err); got != tc.want {
				t.Fatalf("err = %v (code %q), want %q", err, got, tc.want)
			}
		})
	}
}

func TestOpen_MissingFactories(t *testing.T) {
	if _, err := Open(picoConfig(), Factories{}); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("err = %v", err)
	}
}

func TestButton_Inversion(t *testing.T) {
	p := &platform.FakePin{}
	for _, tc := range []struct {
		invert, level, want bool
	}{
		{false, false, false},
		{false, true, true},
		{true, false, true},
		{true, true, false},
	} {
		_ = p.ConfigureOutput(tc.level)
		if got := NewButton(p, tc.invert).Pressed(); got != tc.want {
			t.Fatalf("invert=%v level=%v: pressed=%v", tc.invert, tc.level, got)
		}
	}
}
