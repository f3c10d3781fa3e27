// services/hal/internal/halcore/types.go
package halcore

import (
	"io"

	"rgbcal/types"
)

// ---- GPIO abstractions ----

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

type GPIOPin interface {
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
	Toggle()
	Number() int
}

// PinFactory supplies GPIO pins by the configured number scheme.
type PinFactory interface {
	ByNumber(n int) (GPIOPin, bool)
}

// ---- ADC abstractions ----

// ADCChannel samples one analog input as a 14-bit count. Implementations
// that need an offset calibration also implement Calibrate() error.
type ADCChannel interface {
	Sample() int16
}

// ADCFactory supplies ADC channels by GPIO number.
type ADCFactory interface {
	ByPin(n int) (ADCChannel, bool)
}

// ---- Diagnostic log ----

// LogFactory opens the writer behind the diagnostic log.
type LogFactory interface {
	Open(cfg types.LogConfig) (io.Writer, error)
}
