// Package canvas provides a rendering surface backend over an RGBA buffer,
// using the x/image font stack for measurement and drawing.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ImageCanvas implements the layout Surface over an *image.RGBA. Faces are
// cached per font size so repeated fit searches stay cheap. Not safe for
// concurrent use; give each worker its own canvas.
type ImageCanvas struct {
	dst   *image.RGBA
	fnt   *opentype.Font
	face  font.Face
	faces map[float64]font.Face
}

// New creates a canvas drawing into dst. ttf selects the font; nil falls
// back to the embedded Go Regular.
func New(dst *image.RGBA, ttf []byte) (*ImageCanvas, error) {
	if ttf == nil {
		ttf = goregular.TTF
	}
	fnt, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	c := &ImageCanvas{
		dst:   dst,
		fnt:   fnt,
		faces: make(map[float64]font.Face),
	}
	if err := c.SetFont(12); err != nil {
		return nil, err
	}
	return c, nil
}

// Image returns the underlying buffer.
func (c *ImageCanvas) Image() *image.RGBA {
	return c.dst
}

// SetFont selects the face for the given pixel size, creating and caching it
// on first use.
func (c *ImageCanvas) SetFont(sizePx float64) error {
	if face, ok := c.faces[sizePx]; ok {
		c.face = face
		return nil
	}
	face, err := opentype.NewFace(c.fnt, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("create face at %gpx: %w", sizePx, err)
	}
	c.faces[sizePx] = face
	c.face = face
	return nil
}

// MeasureText returns the advance width of text at the current face.
func (c *ImageCanvas) MeasureText(text string) float64 {
	return fixedToFloat(font.MeasureString(c.face, text))
}

// FillRect alpha-blends the colour over the rectangle.
func (c *ImageCanvas) FillRect(x, y, w, h float64, col color.NRGBA) {
	r := image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	)
	draw.Draw(c.dst, r.Intersect(c.dst.Bounds()), image.NewUniform(col), image.Point{}, draw.Over)
}

// FillText draws one line of text. y is the top of the em box; the face
// ascent converts it to the baseline.
func (c *ImageCanvas) FillText(text string, x, y float64, col color.NRGBA) {
	drawer := &font.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot: fixed.Point26_6{
			X: floatToFixed(x),
			Y: floatToFixed(y) + c.face.Metrics().Ascent,
		},
	}
	drawer.DrawString(text)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
