// services/hal/internal/platform/factories_rp2xxx.go
//go:build rp2040 || rp2350

package platform

import (
	"io"
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"rgbcal/errcode"
	halcore "rgbcal/services/hal/internal/halcore"
	"rgbcal/services/hal/internal/platform/boards"
	"rgbcal/types"
)

// -----------------------------------------------------------------------------
// Defaults used by hal.Open on Raspberry Pi Pico / Pico 2 (RP2 family)
// -----------------------------------------------------------------------------

const defaultBaud = 115200

// DefaultPinFactory returns a GPIO factory that maps logical numbers directly
// to machine.Pin(n). This matches Pico/Pico 2 GP numbering.
func DefaultPinFactory() halcore.PinFactory { return rp2PinFactory{} }

// DefaultADCFactory enables the ADC block and hands out the GP26..GP29 inputs.
func DefaultADCFactory() halcore.ADCFactory {
	machine.InitADC()
	return rp2ADCFactory{}
}

// DefaultLogFactory writes to USB CDC or to one of the hardware UARTs.
func DefaultLogFactory() halcore.LogFactory { return rp2LogFactory{} }

// ---- GPIO implementation ----

type rp2PinFactory struct{}

func (rp2PinFactory) ByNumber(n int) (halcore.GPIOPin, bool) {
	if !boards.Pico.HasGPIO(n) {
		return nil, false
	}
	return &rp2Pin{p: machine.Pin(n), n: n}, true
}

type rp2Pin struct {
	p machine.Pin
	n int
}

func (r *rp2Pin) ConfigureInput(pull halcore.Pull) error {
	var mode machine.PinMode
	switch pull {
	case halcore.PullUp:
		mode = machine.PinInputPullup
	case halcore.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *rp2Pin) Set(level bool) { r.p.Set(level) }
func (r *rp2Pin) Get() bool      { return r.p.Get() }

func (r *rp2Pin) Toggle() {
	if r.p.Get() {
		r.p.Low()
	} else {
		r.p.High()
	}
}

func (r *rp2Pin) Number() int { return r.n }

// ---- ADC implementation ----

type rp2ADCFactory struct{}

func (rp2ADCFactory) ByPin(n int) (halcore.ADCChannel, bool) {
	if !boards.Pico.HasADC(n) {
		return nil, false
	}
	a := machine.ADC{Pin: machine.Pin(n)}
	a.Configure(machine.ADCConfig{})
	return &rp2ADC{a: a}, true
}

type rp2ADC struct {
	a machine.ADC
}

// Sample returns the conversion as a 14-bit count. machine.ADC.Get scales
// the 12-bit result to 16 bits.
func (r *rp2ADC) Sample() int16 { return int16(r.a.Get() >> 2) }

// ---- Log implementation ----

type rp2LogFactory struct{}

func (rp2LogFactory) Open(cfg types.LogConfig) (io.Writer, error) {
	var u *uartx.UART
	switch cfg.UART {
	case "":
		return machine.Serial, nil
	case "uart0":
		u = uartx.UART0
	case "uart1":
		u = uartx.UART1
	}
	if u == nil || !boards.Pico.HasUART(cfg.UART) {
		return nil, &errcode.E{C: errcode.InvalidConfig, Op: "log", Msg: "unknown uart " + cfg.UART}
	}
	baud := cfg.Baud
	if baud == 0 {
		baud = defaultBaud
	}
	if err := u.Configure(uartx.UARTConfig{
		BaudRate: baud,
		TX:       machine.Pin(cfg.TX),
		RX:       machine.Pin(cfg.RX),
	}); err != nil {
		return nil, errcode.Wrap(errcode.Error, "log", err)
	}
	return u, nil
}
