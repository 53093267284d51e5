// Package layout wraps, sizes and positions caption text inside a placement
// rectangle, and decides whether a translucent scrim is needed behind it.
package layout

import "image/color"

// Surface is the rendering capability the layout engine needs. Any backend
// implementing these primitives is acceptable; the engine itself never
// touches pixels.
type Surface interface {
	// SetFont selects the font size (in pixels) used by MeasureText and
	// FillText.
	SetFont(sizePx float64) error

	// MeasureText returns the advance width of text at the current font.
	MeasureText(text string) float64

	// FillRect fills the given rectangle, alpha-blending c over the
	// existing content.
	FillRect(x, y, w, h float64, c color.NRGBA)

	// FillText draws one line of text. y is the top of the em box; the
	// backend applies its own ascent.
	FillText(text string, x, y float64, c color.NRGBA)
}
