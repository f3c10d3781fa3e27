package types

import (
	"rgbcal/errcode"
	"rgbcal/x/jsonx"
)

// Board configuration supplied retained on topic "config/board".

type BoardConfig struct {
	LEDs      [Channels]int `json:"leds"`       // red, green, blue output pins
	Knob      int           `json:"knob"`       // ADC-capable input pin
	ButtonA   int           `json:"button_a"`   // selects blue
	ButtonB   int           `json:"button_b"`   // selects green
	ActiveLow bool          `json:"active_low"` // buttons pull the pin low when pressed
	Log       LogConfig     `json:"log"`
}

// LogConfig selects the diagnostic log transport. An empty UART means the
// platform console (USB CDC on the target, stdout on the host).
type LogConfig struct {
	UART string `json:"uart,omitempty"` // "uart0" | "uart1"
	Baud uint32 `json:"baud,omitempty"`
	TX   int    `json:"tx,omitempty"`
	RX   int    `json:"rx,omitempty"`
}

// HeartbeatConfig is supplied on topic "config/heartbeat".
type HeartbeatConfig struct {
	Interval float64 `json:"interval"` // seconds; 0 disables
}

// DecodeBoardConfig converts a decoded config document into a BoardConfig
// and checks that every pin number is plausible.
func DecodeBoardConfig(v any) (BoardConfig, error) {
	var c BoardConfig
	if err := jsonx.Decode(v, &c); err != nil {
		return BoardConfig{}, &errcode.E{C: errcode.InvalidConfig, Op: "board", Err: err}
	}
	pins := []int{c.LEDs[Red], c.LEDs[Green], c.LEDs[Blue], c.Knob, c.ButtonA, c.ButtonB}
	for _, p := range pins {
		if p < 0 {
			return BoardConfig{}, &errcode.E{C: errcode.InvalidConfig, Op: "board", Msg: "negative pin"}
		}
	}
	switch c.Log.UART {
	case "", "uart0", "uart1":
	default:
		return BoardConfig{}, &errcode.E{C: errcode.InvalidConfig, Op: "board", Msg: "unknown uart " + c.Log.UART}
	}
	return c, nil
}

// DecodeHeartbeatConfig converts a decoded config document into a HeartbeatConfig.
func DecodeHeartbeatConfig(v any) (HeartbeatConfig, error) {
	var c HeartbeatConfig
	if err := jsonx.Decode(v, &c); err != nil {
		return HeartbeatConfig{}, &errcode.E{C: errcode.InvalidConfig, Op: "heartbeat", Err: err}
	}
	if c.Interval < 0 {
		c.Interval = 0
	}
	return c, nil
}
