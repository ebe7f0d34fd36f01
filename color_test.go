package inkpad

import (
	"math"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"six digit", "#ff0000", RGBA{R: 1, A: 1}},
		{"no hash", "00ff00", RGBA{G: 1, A: 1}},
		{"three digit", "#fff", RGBA{R: 1, G: 1, B: 1, A: 1}},
		{"eight digit with alpha", "#0000ffb3", RGBA{B: 1, A: 0.7}},
		{"malformed yields opaque black", "nonsense", RGBA{A: 1}},
		{"non-hex at six digits", "zzzzzz", RGBA{A: 1}},
		{"non-hex at three digits", "#ggg", RGBA{A: 1}},
		{"partially hex", "#12345z", RGBA{A: 1}},
		{"wrong length", "#1234", RGBA{A: 1}},
		{"empty yields opaque black", "", RGBA{A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			if !colorClose(got, tt.want) {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestHexString(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"dark blue", "#16213e"},
		{"black", "#000000"},
		{"white", "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.in).HexString(); got != tt.in {
				t.Errorf("HexString round-trip = %q, want %q", got, tt.in)
			}
		})
	}
}

func TestWithAlpha(t *testing.T) {
	c := Hex("#16213e").WithAlpha(0.7)
	if c.A != 0.7 {
		t.Errorf("alpha = %v, want 0.7", c.A)
	}
	base := Hex("#16213e")
	if c.R != base.R || c.G != base.G || c.B != base.B {
		t.Errorf("WithAlpha changed color components: %+v vs %+v", c, base)
	}
}

func colorClose(a, b RGBA) bool {
	const eps = 0.005
	return math.Abs(a.R-b.R) < eps &&
		math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps &&
		math.Abs(a.A-b.A) < eps
}
