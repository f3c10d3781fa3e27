package types

import "testing"

func TestFrameRateBounds(t *testing.T) {
	if FrameRateMin != 10 || FrameRateMax != 160 {
		t.Fatalf("frame rate bounds = [%d, %d], want [10, 160]", FrameRateMin, FrameRateMax)
	}
}

func TestParameterStringAndChannel(t *testing.T) {
	for _, c := range []struct {
		p      Parameter
		name   string
		ch     int
		chanOK bool
	}{
		{ParamFrameRate, "FrameRate", 0, false},
		{ParamRed, "Red", Red, true},
		{ParamGreen, "Green", Green, true},
		{ParamBlue, "Blue", Blue, true},
	} {
		if got := c.p.String(); got != c.name {
			t.Fatalf("String() = %q, want %q", got, c.name)
		}
		ch, ok := c.p.Channel()
		if ok != c.chanOK || (ok && ch != c.ch) {
			t.Fatalf("%s.Channel() = (%d, %v), want (%d, %v)", c.name, ch, ok, c.ch, c.chanOK)
		}
	}
}
