package hal

// Button reads a push button, reporting the logical pressed state.
type Button struct {
	pin    GPIOPin
	invert bool
}

// NewButton wraps pin; invert is set for active-low wiring.
func NewButton(pin GPIOPin, invert bool) *Button {
	return &Button{pin: pin, invert: invert}
}

func (b *Button) Pressed() bool {
	return b.logicalPressed(b.pin.Get())
}

func (b *Button) logicalPressed(level bool) bool {
	if b.invert {
		return !level
	}
	return level
}
