package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: device ID (same value placed in ctx under CtxDeviceKey)
// Val: raw JSON bytes for that device
// -----------------------------------------------------------------------------

// Pico wiring: LEDs on GP18..GP20 through 330R, pot wiper on GP26 (ADC0),
// buttons to ground on GP16/GP17. The log goes to USB CDC.
const cfgPico = `{
  "board": {
    "leds": [18, 19, 20],
    "knob": 26,
    "button_a": 16,
    "button_b": 17,
    "active_low": true
  },
  "heartbeat": {
    "interval": 0
  }
}`

// Same wiring, log on UART0 (GP0/GP1) and a 5 s heartbeat.
const cfgPicoDev = `{
  "board": {
    "leds": [18, 19, 20],
    "knob": 26,
    "button_a": 16,
    "button_b": 17,
    "active_low": true,
    "log": {"uart": "uart0", "baud": 115200, "tx": 0, "rx": 1}
  },
  "heartbeat": {
    "interval": 5
  }
}`

var embeddedConfigs = map[string][]byte{
	"pico":     []byte(cfgPico),
	"pico-dev": []byte(cfgPicoDev),
}
