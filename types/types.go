package types

import "time"

// ---- Rendering constants ----

const (
	// Levels is the number of brightness steps per channel (0..Levels-1).
	Levels = 16
	// Channels is the number of LED channels driven by the renderer.
	Channels = 3

	FrameRateStep    = 10
	FrameRateMin     = 10
	FrameRateMax     = FrameRateMin + (Levels-1)*FrameRateStep
	DefaultFrameRate = 100

	// UIPollPeriod is the controller's knob/button sampling period.
	UIPollPeriod = 50 * time.Millisecond
)

// Channel indices.
const (
	Red   = 0
	Green = 1
	Blue  = 2
)

// ChannelNames are the log names of the channels, in channel order.
var ChannelNames = [Channels]string{"red", "green", "blue"}

// ---- Control parameter ----

// Parameter is the value the knob currently edits.
type Parameter uint8

const (
	ParamFrameRate Parameter = iota
	ParamRed
	ParamGreen
	ParamBlue
)

func (p Parameter) String() string {
	switch p {
	case ParamRed:
		return "Red"
	case ParamGreen:
		return "Green"
	case ParamBlue:
		return "Blue"
	default:
		return "FrameRate"
	}
}

// Channel returns the LED channel edited by p; ok is false for ParamFrameRate.
func (p Parameter) Channel() (ch int, ok bool) {
	switch p {
	case ParamRed:
		return Red, true
	case ParamGreen:
		return Green, true
	case ParamBlue:
		return Blue, true
	default:
		return 0, false
	}
}

// ---- State snapshots (retained on "state/...") ----

type LevelsValue struct {
	Levels [Channels]uint32 `json:"levels"`
}

type FrameRateValue struct {
	FPS uint64 `json:"fps"`
}
