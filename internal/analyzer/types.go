package analyzer

import (
	"image/color"
	"math"
)

// RGB is an 8-bit-per-channel colour kept as float64 so that cell averages
// survive without precision loss until they are deliberately rounded.
type RGB struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

// Round snaps each channel to the nearest integer value.
func (c RGB) Round() RGB {
	return RGB{R: math.Round(c.R), G: math.Round(c.G), B: math.Round(c.B)}
}

// RGBA converts to a stdlib colour with full opacity. Channels are clamped
// to the 0-255 range.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: clampByte(c.R), G: clampByte(c.G), B: clampByte(c.B), A: 255}
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// GridConfig defines the cell partition of an image.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// CellStat holds the per-cell statistics the search operates on. Busyness is
// the variance of pixel luminance within the cell; +Inf marks a degenerate
// cell that covered zero pixels and must never win the minimisation.
type CellStat struct {
	AvgColor RGB     `yaml:"avg_color"`
	Busyness float64 `yaml:"busyness"`
}

// GridStats is the immutable product of one statistics pass: the flat
// row-major cell sequence plus the fractional cell size needed to map grid
// coordinates back to pixels.
type GridStats struct {
	Config       GridConfig
	Cells        []CellStat
	CellWidthPx  float64
	CellHeightPx float64
	Width        int
	Height       int
}

// Cell returns the statistics for grid position (row, col).
func (g *GridStats) Cell(row, col int) CellStat {
	return g.Cells[row*g.Config.Cols+col]
}

// Hover returns a diagnostic snapshot of the computed statistics.
func (g *GridStats) Hover() *HoverData {
	return &HoverData{
		CellStats:    g.Cells,
		GridConfig:   g.Config,
		CellWidthPx:  g.CellWidthPx,
		CellHeightPx: g.CellHeightPx,
		CanvasWidth:  g.Width,
		CanvasHeight: g.Height,
	}
}

// AspectName is the qualitative label assigned to a candidate shape.
type AspectName string

const (
	AspectSquare     AspectName = "square"
	AspectNearSquare AspectName = "near-square"
	AspectLandscape  AspectName = "landscape"
	AspectPortrait   AspectName = "portrait"
)

// ShapeCandidate is a trial rectangle size in grid cells.
type ShapeCandidate struct {
	Name AspectName `yaml:"name"`
	Rows int        `yaml:"rows"`
	Cols int        `yaml:"cols"`
}

// RectCandidate is a concrete placement of a shape, produced and consumed
// within one search pass.
type RectCandidate struct {
	X, Y          int
	Width, Height int
	AvgColor      RGB
	RStart        int
	CStart        int
	AvgBusyness   float64
	Shape         ShapeCandidate
}

// Rect is a pixel-space rectangle.
type Rect struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TextColor is either a named colour ("black"/"white") or an explicit
// triple. RGB always carries the resolved channels so contrast can be
// recomputed losslessly against it.
type TextColor struct {
	Name string `yaml:"name,omitempty"`
	RGB  RGB    `yaml:"rgb"`
}

// AnalysisResult is the externally visible outcome of one analysis run.
// It is immutable once produced and superseded wholesale by the next run.
type AnalysisResult struct {
	Rect               Rect       `yaml:"rect"`
	TextColor          TextColor  `yaml:"text_color"`
	FontSize           float64    `yaml:"font_size"`
	AvgBackgroundColor RGB        `yaml:"avg_background_color"`
	AspectRatioName    AspectName `yaml:"aspect_ratio_name"`
	ActualCells        GridConfig `yaml:"actual_cells"`
	RectBusyness       float64    `yaml:"rect_busyness"`
	TextContrastRatio  float64    `yaml:"text_contrast_ratio"`
}

// HoverData lets an external caller visualise per-cell statistics. It is not
// consumed by the core itself.
type HoverData struct {
	CellStats    []CellStat `yaml:"cell_stats"`
	GridConfig   GridConfig `yaml:"grid_config"`
	CellWidthPx  float64    `yaml:"cell_width_px"`
	CellHeightPx float64    `yaml:"cell_height_px"`
	CanvasWidth  int        `yaml:"canvas_width"`
	CanvasHeight int        `yaml:"canvas_height"`
}

// Options is the input contract of one analysis run.
type Options struct {
	Grid            GridConfig
	TargetArea      int
	PreferCellColor bool
	BorderExclusion int

	// Warnf receives non-fatal advisory messages (no valid shapes, no
	// candidate rectangle, zero-dimension buffer). Nil means silent.
	Warnf func(format string, args ...any)
}
