package analyzer

import (
	"math"
	"testing"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		name     string
		r, g, b  float64
		expected float64
	}{
		{"black", 0, 0, 0, 0},
		{"white", 255, 255, 255, 255},
		{"pure red", 255, 0, 0, 0.299 * 255},
		{"pure green", 0, 255, 0, 0.587 * 255},
		{"pure blue", 0, 0, 255, 0.114 * 255},
		{"mid gray", 128, 128, 128, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Luminance(tt.r, tt.g, tt.b)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Luminance(%v,%v,%v) = %v, expected %v", tt.r, tt.g, tt.b, got, tt.expected)
			}
		})
	}
}

func TestContrastRatio(t *testing.T) {
	black := RGB{}
	white := RGB{R: 255, G: 255, B: 255}

	// Maximum possible contrast under this formula.
	if got := ContrastRatio(black, white); math.Abs(got-21) > 1e-9 {
		t.Errorf("black vs white contrast = %v, expected 21", got)
	}

	// Symmetry.
	a := RGB{R: 10, G: 200, B: 30}
	b := RGB{R: 240, G: 12, B: 99}
	if ContrastRatio(a, b) != ContrastRatio(b, a) {
		t.Error("contrast ratio is not symmetric")
	}

	// Identity.
	if got := ContrastRatio(a, a); got != 1 {
		t.Errorf("contrast of a colour with itself = %v, expected 1", got)
	}

	// Always >= 1.
	colors := []RGB{black, white, a, b, {R: 1, G: 1, B: 1}}
	for _, c1 := range colors {
		for _, c2 := range colors {
			if got := ContrastRatio(c1, c2); got < 1 {
				t.Errorf("ContrastRatio(%v, %v) = %v < 1", c1, c2, got)
			}
		}
	}
}
