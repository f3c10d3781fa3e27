// services/hal/types.go
package hal

import (
	"rgbcal/services/hal/internal/halcore"
	"rgbcal/services/hal/internal/platform"
)

// Re-exports so callers outside hal need not import internal packages.
type (
	Pull       = halcore.Pull
	GPIOPin    = halcore.GPIOPin
	PinFactory = halcore.PinFactory
	ADCChannel = halcore.ADCChannel
	ADCFactory = halcore.ADCFactory
	LogFactory = halcore.LogFactory
)

const (
	PullNone = halcore.PullNone
	PullUp   = halcore.PullUp
	PullDown = halcore.PullDown
)

// Factories bundles the platform capabilities Open draws from.
type Factories struct {
	Pins PinFactory
	ADCs ADCFactory
	Logs LogFactory
}

// DefaultFactories returns the factories of the platform being built for:
// machine and uartx on RP2, in-memory fakes and stdout on the host.
func DefaultFactories() Factories {
	return Factories{
		Pins: platform.DefaultPinFactory(),
		ADCs: platform.DefaultADCFactory(),
		Logs: platform.DefaultLogFactory(),
	}
}
