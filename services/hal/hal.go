// services/hal/hal.go
package hal

import (
	"io"

	"rgbcal/errcode"
	"rgbcal/types"
	"rgbcal/x/conv"
)

// Board is the set of claimed, configured peripherals. LEDs belong to the
// renderer; the knob and buttons belong to the controller.
type Board struct {
	LEDs    [types.Channels]GPIOPin
	Knob    ADCChannel
	ButtonA *Button
	ButtonB *Button
	Log     io.Writer

	reg *registry
}

// Open claims and configures every peripheral named by cfg. LED outputs start
// low and buttons are pulled up. Each pin may be claimed once.
func Open(cfg types.BoardConfig, f Factories) (*Board, error) {
	if f.Pins == nil || f.ADCs == nil || f.Logs == nil {
		return nil, errcode.InvalidParams
	}
	b := &Board{reg: newRegistry(f.Pins)}

	for i, n := range cfg.LEDs {
		p, err := b.reg.claimGPIO("led_"+types.ChannelNames[i], n)
		if err != nil {
			return nil, err
		}
		if err := p.ConfigureOutput(false); err != nil {
			return nil, errcode.Wrap(errcode.Error, "led_"+types.ChannelNames[i], err)
		}
		b.LEDs[i] = p
	}

	var err error
	if b.ButtonA, err = b.openButton("button_a", cfg.ButtonA, cfg.ActiveLow); err != nil {
		return nil, err
	}
	if b.ButtonB, err = b.openButton("button_b", cfg.ButtonB, cfg.ActiveLow); err != nil {
		return nil, err
	}

	adc, ok := f.ADCs.ByPin(cfg.Knob)
	if !ok {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "knob", Msg: "no adc on gpio" + conv.Utoa(uint64(cfg.Knob))}
	}
	if err := b.reg.reserve("knob", cfg.Knob); err != nil {
		return nil, err
	}
	b.Knob = adc

	if cfg.Log.UART != "" {
		if err := b.reg.reserve("log_tx", cfg.Log.TX); err != nil {
			return nil, err
		}
		if err := b.reg.reserve("log_rx", cfg.Log.RX); err != nil {
			return nil, err
		}
	}
	if b.Log, err = f.Logs.Open(cfg.Log); err != nil {
		return nil, err
	}

	println("[hal] board open: leds",
		cfg.LEDs[types.Red], cfg.LEDs[types.Green], cfg.LEDs[types.Blue],
		"knob", cfg.Knob, "buttons", cfg.ButtonA, cfg.ButtonB)
	return b, nil
}

func (b *Board) openButton(devID string, n int, activeLow bool) (*Button, error) {
	p, err := b.reg.claimGPIO(devID, n)
	if err != nil {
		return nil, err
	}
	if err := p.ConfigureInput(PullUp); err != nil {
		return nil, errcode.Wrap(errcode.Error, devID, err)
	}
	return NewButton(p, activeLow), nil
}

// Owner reports which function claimed pin n.
func (b *Board) Owner(n int) (string, bool) { return b.reg.owner(n) }
