//go:build !rp2040 && !rp2350

package hal

import "rgbcal/services/hal/internal/platform"

// Host fakes, exported for tests in other packages.
type (
	FakePin        = platform.FakePin
	FakeADC        = platform.FakeADC
	HostPinFactory = platform.HostPinFactory
	HostADCFactory = platform.HostADCFactory
	HostLogFactory = platform.HostLogFactory
)
