package layout

import (
	"fmt"
	"image/color"
	"math"

	"github.com/FrediBach/text-placement-image-analyzer/internal/analyzer"
)

const (
	// Padding is the fixed inset between the rectangle and the text block.
	Padding = 10.0

	// LineHeightFactor converts a font size into a line height.
	LineHeightFactor = 1.2

	// MinFitSize is the smallest font size the fit search will try. Below
	// this the text is drawn best-effort rather than omitted.
	MinFitSize = 8

	// Scrim thresholds: a scrim goes under the text whenever contrast or
	// busyness leaves legibility at risk.
	scrimContrastThreshold = 4.0
	scrimBusynessThreshold = 500.0
)

// HAlign is the horizontal alignment of the text block.
type HAlign string

// VAlign is the vertical alignment of the text block.
type VAlign string

const (
	AlignLeft   HAlign = "left"
	AlignCenter HAlign = "center"
	AlignRight  HAlign = "right"

	AlignTop    VAlign = "top"
	AlignMiddle VAlign = "middle"
	AlignBottom VAlign = "bottom"
)

// Scrim describes the translucent rectangle drawn under the text. White
// backs dark text, black backs light text.
type Scrim struct {
	White   bool
	Opacity float64
}

// Color returns the scrim fill colour with its alpha applied.
func (s *Scrim) Color() color.NRGBA {
	a := uint8(s.Opacity * 255)
	if s.White {
		return color.NRGBA{R: 255, G: 255, B: 255, A: a}
	}
	return color.NRGBA{A: a}
}

// TextLayout is the computed plan for one caption: wrapped lines at a fitted
// font size, alignment and an optional scrim. Fits reports whether the block
// actually fits the padded rectangle; when false the smallest size is used
// best-effort.
type TextLayout struct {
	FontSize   int
	Lines      []string
	LineWidths []float64
	HAlign     HAlign
	VAlign     VAlign
	Scrim      *Scrim
	Fits       bool
}

// Compute wraps and sizes the text for the analysed rectangle. The surface
// is only used for measurement; nothing is drawn.
func Compute(s Surface, text string, res *analyzer.AnalysisResult, canvasW, canvasH int) (*TextLayout, error) {
	availW := float64(res.Rect.Width) - 2*Padding
	availH := float64(res.Rect.Height) - 2*Padding

	// The suggested size is capped so a single glyph row can plausibly fit
	// before the descent even starts.
	maxSize := math.Min(res.FontSize, math.Min(float64(res.Rect.Height)-2*Padding, (float64(res.Rect.Width)-2*Padding)/2))
	start := int(maxSize)
	if start < MinFitSize {
		start = MinFitSize
	}

	var lines []string
	size := start
	fits := false
	for size = start; size >= MinFitSize; size-- {
		if err := s.SetFont(float64(size)); err != nil {
			return nil, fmt.Errorf("set font %d: %w", size, err)
		}
		lines = WrapText(s, text, availW)
		if linesFit(s, lines, size, availW, availH) {
			fits = true
			break
		}
	}
	if !fits {
		// Loop ran past MinFitSize; keep its wrap result best-effort.
		size = MinFitSize
		if err := s.SetFont(float64(size)); err != nil {
			return nil, fmt.Errorf("set font %d: %w", size, err)
		}
	}

	widths := make([]float64, len(lines))
	for i, line := range lines {
		widths[i] = s.MeasureText(line)
	}

	hAlign, vAlign := DecideAlignment(res.Rect, canvasW, canvasH)

	return &TextLayout{
		FontSize:   size,
		Lines:      lines,
		LineWidths: widths,
		HAlign:     hAlign,
		VAlign:     vAlign,
		Scrim:      decideScrim(res),
		Fits:       fits,
	}, nil
}

func linesFit(s Surface, lines []string, size int, availW, availH float64) bool {
	blockH := float64(len(lines)) * float64(size) * LineHeightFactor
	if blockH > availH {
		return false
	}
	for _, line := range lines {
		if s.MeasureText(line) > availW {
			return false
		}
	}
	return true
}

// DecideAlignment places the text block according to where the rectangle's
// centre falls relative to the canvas thirds (35%/65% cutoffs).
func DecideAlignment(rect analyzer.Rect, canvasW, canvasH int) (HAlign, VAlign) {
	centerX := float64(rect.X) + float64(rect.Width)/2
	centerY := float64(rect.Y) + float64(rect.Height)/2

	h := AlignCenter
	switch {
	case centerX < 0.35*float64(canvasW):
		h = AlignLeft
	case centerX > 0.65*float64(canvasW):
		h = AlignRight
	}

	v := AlignMiddle
	switch {
	case centerY < 0.35*float64(canvasH):
		v = AlignTop
	case centerY > 0.65*float64(canvasH):
		v = AlignBottom
	}

	return h, v
}

// decideScrim returns the scrim to draw under the text, or nil when contrast
// and busyness are both safe.
func decideScrim(res *analyzer.AnalysisResult) *Scrim {
	if res.TextContrastRatio >= scrimContrastThreshold && res.RectBusyness <= scrimBusynessThreshold {
		return nil
	}
	tc := res.TextColor.RGB
	scrim := &Scrim{
		// Dark text gets a white scrim, light text a black one.
		White: analyzer.Luminance(tc.R, tc.G, tc.B) <= 128,
	}
	switch {
	case res.TextContrastRatio < 2.5:
		scrim.Opacity = 0.7
	case res.TextContrastRatio < 3.5:
		scrim.Opacity = 0.6
	default:
		scrim.Opacity = 0.5
	}
	return scrim
}

// Draw renders the computed layout onto the surface: scrim first, then the
// text block line by line at lineHeight = fontSize x 1.2.
func Draw(s Surface, l *TextLayout, res *analyzer.AnalysisResult) error {
	if len(l.Lines) == 0 {
		return nil
	}
	if err := s.SetFont(float64(l.FontSize)); err != nil {
		return fmt.Errorf("set font %d: %w", l.FontSize, err)
	}

	rect := res.Rect
	if l.Scrim != nil {
		s.FillRect(float64(rect.X), float64(rect.Y), float64(rect.Width), float64(rect.Height), l.Scrim.Color())
	}

	lineHeight := float64(l.FontSize) * LineHeightFactor
	blockH := float64(len(l.Lines)) * lineHeight

	var top float64
	switch l.VAlign {
	case AlignTop:
		top = float64(rect.Y) + Padding
	case AlignBottom:
		top = float64(rect.Y) + float64(rect.Height) - Padding - blockH
	default:
		top = float64(rect.Y) + (float64(rect.Height)-blockH)/2
	}

	textColor := res.TextColor.RGB.RGBA()
	fill := color.NRGBA{R: textColor.R, G: textColor.G, B: textColor.B, A: 255}

	for i, line := range l.Lines {
		var x float64
		switch l.HAlign {
		case AlignLeft:
			x = float64(rect.X) + Padding
		case AlignRight:
			x = float64(rect.X) + float64(rect.Width) - Padding - l.LineWidths[i]
		default:
			x = float64(rect.X) + (float64(rect.Width)-l.LineWidths[i])/2
		}
		s.FillText(line, x, top+float64(i)*lineHeight, fill)
	}
	return nil
}
