// services/hal/internal/platform/factories_host.go
//go:build !rp2040 && !rp2350

package platform

import (
	"io"
	"os"
	"sync"

	"rgbcal/services/hal/internal/halcore"
	"rgbcal/services/hal/internal/platform/boards"
	"rgbcal/types"
)

// Host fakes use the Pico numbering so that configs validate the same way.
var board = boards.Pico

// ----------------------------- GPIO (host) -----------------------------------

// FakePin implements GPIOPin for host-side tests. It counts rising edges so
// tests can observe output activity.
type FakePin struct {
	mu      sync.RWMutex
	number  int
	level   bool
	modeOut bool
	pull    halcore.Pull
	rises   int
}

func (p *FakePin) ConfigureInput(pull halcore.Pull) error {
	p.mu.Lock()
	p.modeOut = false
	p.pull = pull
	// An idle pulled-up input reads high.
	p.level = pull == halcore.PullUp
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.modeOut = true
	p.level = initial
	p.mu.Unlock()
	return nil
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	if level && !p.level {
		p.rises++
	}
	p.level = level
	p.mu.Unlock()
}

func (p *FakePin) Get() bool {
	p.mu.RLock()
	v := p.level
	p.mu.RUnlock()
	return v
}

func (p *FakePin) Toggle() { p.Set(!p.Get()) }

func (p *FakePin) Number() int { return p.number }

// IsOutput reports whether the pin was last configured as an output.
func (p *FakePin) IsOutput() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.modeOut
}

// Pull returns the pull configured by the last ConfigureInput.
func (p *FakePin) Pull() halcore.Pull {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pull
}

// Rises returns the number of low-to-high transitions seen by Set.
func (p *FakePin) Rises() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.rises
}

// HostPinFactory returns stable *FakePin instances per number.
type HostPinFactory struct {
	mu   sync.Mutex
	pins map[int]*FakePin
}

func (f *HostPinFactory) ByNumber(n int) (halcore.GPIOPin, bool) {
	if !board.HasGPIO(n) {
		return nil, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pins == nil {
		f.pins = make(map[int]*FakePin)
	}
	p, ok := f.pins[n]
	if !ok {
		p = &FakePin{number: n}
		f.pins[n] = p
	}
	return p, true
}

// Get exposes the underlying *FakePin for tests (e.g. to press a button).
func (f *HostPinFactory) Get(n int) (*FakePin, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pins[n]
	return p, ok
}

// DefaultPinFactory provides a host GPIO factory.
func DefaultPinFactory() halcore.PinFactory {
	return &HostPinFactory{pins: make(map[int]*FakePin)}
}

// ----------------------------- ADC (host) ------------------------------------

// FakeADC is a settable analog input. CalibrateErr, when set, is returned by
// Calibrate.
type FakeADC struct {
	mu           sync.Mutex
	raw          int16
	calibrated   bool
	CalibrateErr error
}

func (a *FakeADC) Sample() int16 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.raw
}

// SetRaw sets the value returned by subsequent samples.
func (a *FakeADC) SetRaw(v int16) {
	a.mu.Lock()
	a.raw = v
	a.mu.Unlock()
}

func (a *FakeADC) Calibrate() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.CalibrateErr != nil {
		return a.CalibrateErr
	}
	a.calibrated = true
	return nil
}

// Calibrated reports whether Calibrate has succeeded.
func (a *FakeADC) Calibrated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calibrated
}

// HostADCFactory returns stable *FakeADC instances per pin.
type HostADCFactory struct {
	mu    sync.Mutex
	chans map[int]*FakeADC
}

func (f *HostADCFactory) ByPin(n int) (halcore.ADCChannel, bool) {
	if !board.HasADC(n) {
		return nil, false
	}
	return f.Get(n), true
}

// Get returns the fake for pin n, creating it on first use.
func (f *HostADCFactory) Get(n int) *FakeADC {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.chans == nil {
		f.chans = make(map[int]*FakeADC)
	}
	a, ok := f.chans[n]
	if !ok {
		a = &FakeADC{}
		f.chans[n] = a
	}
	return a
}

// DefaultADCFactory provides a host ADC factory.
func DefaultADCFactory() halcore.ADCFactory {
	return &HostADCFactory{chans: make(map[int]*FakeADC)}
}

// ----------------------------- Log (host) ------------------------------------

// HostLogFactory writes every log to W, or to stdout when W is nil.
// The UART selection is ignored.
type HostLogFactory struct {
	W io.Writer
}

func (f HostLogFactory) Open(_ types.LogConfig) (io.Writer, error) {
	if f.W == nil {
		return os.Stdout, nil
	}
	return f.W, nil
}

// DefaultLogFactory provides the stdout log factory.
func DefaultLogFactory() halcore.LogFactory { return HostLogFactory{} }
