package boards

import "testing"

func TestPico_Capabilities(t *testing.T) {
	b := Pico
	for _, tc := range []struct {
		n         int
		gpio, adc bool
	}{
		{-1, false, false},
		{0, true, false},
		{25, true, false},
		{26, true, true},
		{28, true, true},
		{29, false, true},
		{30, false, false},
	} {
		if got := b.HasGPIO(tc.n); got != tc.gpio {
			t.Fatalf("HasGPIO(%d) = %v", tc.n, got)
		}
		if got := b.HasADC(tc.n); got != tc.adc {
			t.Fatalf("HasADC(%d) = %v", tc.n, got)
		}
	}
	if !b.HasUART("uart1") || b.HasUART("uart2") {
		t.Fatal("uart set mismatch")
	}
}
