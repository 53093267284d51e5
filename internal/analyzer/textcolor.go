package analyzer

import "math"

// cellColorMinContrast is the contrast ratio a covered cell's average colour
// must beat against the rectangle background before it is preferred over the
// plain black/white rule.
const cellColorMinContrast = 2.5

// SelectTextColor chooses the text colour for a chosen rectangle and returns
// it together with the contrast ratio against the rectangle background.
//
// Without preferCellColor the choice is binary: black on light backgrounds
// (luminance > 128), white otherwise. With it, the covered cells are scanned
// for the average colour with maximum contrast against the background; that
// colour is used when it clears cellColorMinContrast, otherwise the binary
// rule applies.
//
// The returned contrast is computed against the resolved colour, i.e. after
// rounding channels to integers. Rounding must happen before this final
// figure is produced; scoring during the scan uses the unrounded values.
func SelectTextColor(rect *RectCandidate, stats *GridStats, preferCellColor bool) (TextColor, float64) {
	bg := rect.AvgColor.Round()

	if preferCellColor {
		bestContrast := 0.0
		var bestColor RGB
		found := false
		for r := rect.RStart; r < rect.RStart+rect.Shape.Rows; r++ {
			for c := rect.CStart; c < rect.CStart+rect.Shape.Cols; c++ {
				cell := stats.Cell(r, c)
				if math.IsInf(cell.Busyness, 1) {
					continue // degenerate cell, avg colour is a sentinel
				}
				cr := ContrastRatio(cell.AvgColor, rect.AvgColor)
				if cr > bestContrast {
					bestContrast = cr
					bestColor = cell.AvgColor
					found = true
				}
			}
		}
		if found && bestContrast > cellColorMinContrast {
			tc := TextColor{RGB: bestColor.Round()}
			return tc, ContrastRatio(tc.RGB, bg)
		}
	}

	if Luminance(bg.R, bg.G, bg.B) > 128 {
		tc := TextColor{Name: "black", RGB: RGB{}}
		return tc, ContrastRatio(tc.RGB, bg)
	}
	tc := TextColor{Name: "white", RGB: RGB{R: 255, G: 255, B: 255}}
	return tc, ContrastRatio(tc.RGB, bg)
}

// SuggestFontSize proposes an initial font size for the rectangle. The
// layout engine may shrink it further while fitting the wrapped text.
func SuggestFontSize(rect *RectCandidate) float64 {
	cellH := float64(rect.Height) / float64(rect.Shape.Rows)
	size := math.Min(cellH*0.6, math.Min(float64(rect.Height)*0.3, float64(rect.Width)*0.2))
	if size < 12 {
		size = 12
	}
	return size
}
