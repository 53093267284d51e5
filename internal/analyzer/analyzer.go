// Package analyzer locates the best region of a raster image to overlay
// user-supplied text: it scores grid cells by visual busyness, searches
// candidate rectangle shapes for the calmest placement and picks a text
// colour with maximum contrast against it.
package analyzer

import (
	"fmt"
	"image"
)

// Analyzer is the interface for placement analysis strategies.
type Analyzer interface {
	// Analyze runs one full pass over the image. A nil result with a nil
	// error never happens; recoverable conditions return one of the
	// sentinel errors from this package alongside any hover data that was
	// already computed.
	Analyze(img image.Image, opts Options) (*AnalysisResult, *HoverData, error)
}

// NewAnalyzer creates an analyzer for the specified variant.
func NewAnalyzer(variant string) (Analyzer, error) {
	switch variant {
	case "busyness", "":
		return NewBusynessAnalyzer(), nil
	case "saliency":
		return nil, fmt.Errorf("saliency analyzer not yet implemented")
	case "edge":
		return nil, fmt.Errorf("edge analyzer not yet implemented")
	default:
		return nil, fmt.Errorf("unknown analyzer variant: %s", variant)
	}
}

// BusynessAnalyzer implements placement by luminance-variance minimisation.
// It keeps no cross-call state: every Analyze call is a pure function of its
// inputs, so repeated calls with identical inputs return identical results.
type BusynessAnalyzer struct{}

// NewBusynessAnalyzer creates the default analyzer.
func NewBusynessAnalyzer() *BusynessAnalyzer {
	return &BusynessAnalyzer{}
}

// Analyze computes grid statistics, searches for the least busy rectangle
// and selects a text colour and initial font size for it.
func (a *BusynessAnalyzer) Analyze(img image.Image, opts Options) (*AnalysisResult, *HoverData, error) {
	warnf := opts.Warnf
	if warnf == nil {
		warnf = func(string, ...any) {}
	}

	if opts.TargetArea < 1 {
		err := fmt.Errorf("%w: target area must be at least 1, got %d", ErrInvalidInput, opts.TargetArea)
		warnf("[!] %v", err)
		return nil, nil, err
	}
	if opts.BorderExclusion < 0 {
		err := fmt.Errorf("%w: negative border exclusion %d", ErrInvalidInput, opts.BorderExclusion)
		warnf("[!] %v", err)
		return nil, nil, err
	}

	stats, err := ComputeGridStats(img, opts.Grid)
	if err != nil {
		warnf("[!] %v", err)
		return nil, nil, err
	}
	hover := stats.Hover()

	maxRows := opts.Grid.Rows - 2*opts.BorderExclusion
	maxCols := opts.Grid.Cols - 2*opts.BorderExclusion
	shapes := GenerateShapeCandidates(opts.TargetArea, maxRows, maxCols)
	if len(shapes) == 0 {
		err := fmt.Errorf("%w: target area %d with border %d does not fit a %dx%d grid",
			ErrNoCandidateShapes, opts.TargetArea, opts.BorderExclusion, opts.Grid.Rows, opts.Grid.Cols)
		warnf("[!] %v", err)
		return nil, hover, err
	}

	rect, err := FindBestRect(stats, shapes, opts.BorderExclusion)
	if err != nil {
		warnf("[!] %v", err)
		return nil, hover, err
	}

	textColor, contrast := SelectTextColor(rect, stats, opts.PreferCellColor)

	result := &AnalysisResult{
		Rect:               Rect{X: rect.X, Y: rect.Y, Width: rect.Width, Height: rect.Height},
		TextColor:          textColor,
		FontSize:           SuggestFontSize(rect),
		AvgBackgroundColor: rect.AvgColor.Round(),
		AspectRatioName:    rect.Shape.Name,
		ActualCells:        GridConfig{Rows: rect.Shape.Rows, Cols: rect.Shape.Cols},
		RectBusyness:       rect.AvgBusyness,
		TextContrastRatio:  contrast,
	}
	return result, hover, nil
}
