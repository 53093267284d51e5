package analyzer

// Luminance returns the perceived brightness of an 8-bit RGB colour on the
// 0-255 scale, using the classic BT.601 weighting.
func Luminance(r, g, b float64) float64 {
	return 0.299*r + 0.587*g + 0.114*b
}

// contrastOffset is WCAG's 0.05 scaled from the 0-1 luminance range to 0-255.
const contrastOffset = 0.05 * 255

// ContrastRatio returns a WCAG-style contrast ratio between two colours,
// computed over raw (non-linearised) luminance. The result is always >= 1
// and tops out at 21 for black against white.
//
// This is intentionally not the standards-exact sRGB formula: the selection
// thresholds and expected outputs throughout this package are tuned against
// this approximation.
func ContrastRatio(c1, c2 RGB) float64 {
	l1 := Luminance(c1.R, c1.G, c1.B)
	l2 := Luminance(c2.R, c2.G, c2.B)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + contrastOffset) / (l2 + contrastOffset)
}
