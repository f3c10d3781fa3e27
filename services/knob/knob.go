// Package knob turns raw potentiometer samples into brightness steps.
package knob

import (
	"math"

	"tinygo.org/x/drivers"

	"rgbcal/errcode"
	"rgbcal/types"
	"rgbcal/x/mathx"
)

// ADC samples the wiper channel. Samples are 14-bit signed counts; small
// negative values are possible near ground.
type ADC interface {
	Sample() int16
}

// calibrator is implemented by ADCs that need an offset calibration before use.
type calibrator interface {
	Calibrate() error
}

const rawMax = 0x7fff

// Quantize maps one raw sample to [0, Levels-1]. The mapping leaves small
// dead zones at both mechanical ends of the pot so the extremes are reachable.
func Quantize(raw int16) uint32 {
	r := mathx.Clamp(int32(raw), 0, rawMax)
	scaled := float32(r) / 10_000.0
	q := mathx.Clamp(float32(types.Levels+2)*scaled-2.0, 0, types.Levels-1)
	return uint32(math.Floor(float64(q)))
}

// Knob implements drivers.Sensor over an ADC channel.
type Knob struct {
	adc   ADC
	raw   int16
	level uint32
}

var _ drivers.Sensor = (*Knob)(nil)

// New calibrates adc when it supports calibration.
func New(adc ADC) (*Knob, error) {
	if adc == nil {
		return nil, errcode.InvalidParams
	}
	if c, ok := adc.(calibrator); ok {
		if err := c.Calibrate(); err != nil {
			return nil, errcode.Wrap(errcode.ADCCalibration, "knob", err)
		}
	}
	return &Knob{adc: adc}, nil
}

// Update samples the ADC when which includes drivers.Voltage.
func (k *Knob) Update(which drivers.Measurement) error {
	if which&drivers.Voltage == 0 {
		return nil
	}
	k.raw = k.adc.Sample()
	k.level = Quantize(k.raw)
	return nil
}

// Raw returns the last sampled count.
func (k *Knob) Raw() int16 { return k.raw }

// Level returns the last quantized reading.
func (k *Knob) Level() uint32 { return k.level }

// Measure samples once and returns the quantized reading.
func (k *Knob) Measure() uint32 {
	_ = k.Update(drivers.Voltage)
	return k.level
}
