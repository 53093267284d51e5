package canvas

import (
	"fmt"
	"image"
	"image/draw"

	qrcode "github.com/skip2/go-qrcode"
)

// Corner identifies one corner of the canvas.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// qrMargin keeps the stamp off the canvas edge.
const qrMargin = 10

// StampQR composites a QR code for content into the given corner of dst.
// size is the rendered edge length in pixels; it is clamped so the stamp
// plus margin always fits the canvas.
func StampQR(dst *image.RGBA, content string, size int, corner Corner) error {
	if content == "" {
		return fmt.Errorf("empty QR content")
	}
	bounds := dst.Bounds()
	maxSize := min(bounds.Dx(), bounds.Dy()) - 2*qrMargin
	if maxSize < 21 { // smallest QR version is 21 modules
		return fmt.Errorf("canvas %dx%d too small for a QR stamp", bounds.Dx(), bounds.Dy())
	}
	if size > maxSize {
		size = maxSize
	}

	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("encode QR: %w", err)
	}
	img := qr.Image(size)
	// qr.Image treats negative sizes as module scale; re-read the actual
	// rendered dimensions.
	size = img.Bounds().Dx()

	var origin image.Point
	switch corner {
	case TopLeft:
		origin = image.Pt(bounds.Min.X+qrMargin, bounds.Min.Y+qrMargin)
	case TopRight:
		origin = image.Pt(bounds.Max.X-qrMargin-size, bounds.Min.Y+qrMargin)
	case BottomLeft:
		origin = image.Pt(bounds.Min.X+qrMargin, bounds.Max.Y-qrMargin-size)
	default:
		origin = image.Pt(bounds.Max.X-qrMargin-size, bounds.Max.Y-qrMargin-size)
	}

	target := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(size, size))}
	draw.Draw(dst, target.Intersect(bounds), img, img.Bounds().Min, draw.Src)
	return nil
}
