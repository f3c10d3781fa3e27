// services/hal/registry.go
package hal

import (
	"sync"

	"rgbcal/errcode"
	"rgbcal/x/conv"
)

// registry records which function owns each pin so that a board config can
// never hand one pin to two users.
type registry struct {
	mu     sync.Mutex
	pins   PinFactory
	owners map[int]string // pin -> owner
}

func newRegistry(pins PinFactory) *registry {
	return &registry{pins: pins, owners: make(map[int]string)}
}

// reserve marks n as owned by devID without touching the hardware.
func (r *registry) reserve(devID string, n int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if owner, inUse := r.owners[n]; inUse {
		return &errcode.E{C: errcode.PinInUse, Op: devID, Msg: "gpio" + conv.Utoa(uint64(n)) + " owned by " + owner}
	}
	r.owners[n] = devID
	return nil
}

// claimGPIO reserves n and returns its GPIO view.
func (r *registry) claimGPIO(devID string, n int) (GPIOPin, error) {
	if n < 0 {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: devID}
	}
	p, ok := r.pins.ByNumber(n)
	if !ok {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: devID, Msg: "gpio" + conv.Utoa(uint64(n))}
	}
	if err := r.reserve(devID, n); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *registry) owner(n int) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.owners[n]
	return o, ok
}
