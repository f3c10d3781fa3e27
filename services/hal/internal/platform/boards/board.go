package boards

// Board describes what the SoC can do (GPIO range, ADC inputs, UARTs).
// It must not include wiring choices (pins) or operating parameters.
type Board struct {
	Name             string
	GPIOMin, GPIOMax int
	ADCMin, ADCMax   int // GPIOs routed to the ADC mux

	// Controllers present (identities only, e.g. "uart0", "uart1").
	UART []string
}

func (b Board) HasGPIO(n int) bool { return n >= b.GPIOMin && n <= b.GPIOMax }

func (b Board) HasADC(n int) bool { return n >= b.ADCMin && n <= b.ADCMax }

func (b Board) HasUART(id string) bool {
	for _, u := range b.UART {
		if u == id {
			return true
		}
	}
	return false
}

// Pico covers the Pico and Pico 2: user GPIOs GP0..GP28, ADC0..ADC3 on
// GP26..GP29 (GP29 is the VSYS divider on both boards).
var Pico = Board{
	Name:    "pico",
	GPIOMin: 0,
	GPIOMax: 28,
	ADCMin:  26,
	ADCMax:  29,
	UART:    []string{"uart0", "uart1"},
}
