package engine

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/FrediBach/text-placement-image-analyzer/internal/analyzer"
)

// drawDebugGrid shades every cell red in proportion to its busyness and
// outlines the chosen rectangle, turning the hover diagnostics into a
// visible heatmap.
func drawDebugGrid(dst *image.RGBA, hover *analyzer.HoverData, res *analyzer.AnalysisResult) {
	maxBusy := 0.0
	for _, cell := range hover.CellStats {
		if !math.IsInf(cell.Busyness, 1) && cell.Busyness > maxBusy {
			maxBusy = cell.Busyness
		}
	}

	for row := 0; row < hover.GridConfig.Rows; row++ {
		y0 := int(float64(row) * hover.CellHeightPx)
		y1 := int(float64(row+1) * hover.CellHeightPx)
		for col := 0; col < hover.GridConfig.Cols; col++ {
			x0 := int(float64(col) * hover.CellWidthPx)
			x1 := int(float64(col+1) * hover.CellWidthPx)
			cell := hover.CellStats[row*hover.GridConfig.Cols+col]

			var alpha uint8
			switch {
			case math.IsInf(cell.Busyness, 1):
				alpha = 0
			case maxBusy > 0:
				alpha = uint8(cell.Busyness / maxBusy * 120)
			}
			if alpha > 0 {
				overlay := image.NewUniform(color.NRGBA{R: 255, A: alpha})
				draw.Draw(dst, image.Rect(x0, y0, x1, y1), overlay, image.Point{}, draw.Over)
			}
			// Thin grid line along the cell's top and left edges.
			gridLine := image.NewUniform(color.NRGBA{R: 128, G: 128, B: 128, A: 90})
			draw.Draw(dst, image.Rect(x0, y0, x1, y0+1), gridLine, image.Point{}, draw.Over)
			draw.Draw(dst, image.Rect(x0, y0, x0+1, y1), gridLine, image.Point{}, draw.Over)
		}
	}

	if res != nil {
		outlineRect(dst, res.Rect, 2, color.NRGBA{G: 255, A: 255})
	}
}

func outlineRect(dst *image.RGBA, r analyzer.Rect, thickness int, c color.NRGBA) {
	u := image.NewUniform(c)
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.Width, r.Y+r.Height
	b := dst.Bounds()
	draw.Draw(dst, image.Rect(x0, y0, x1, y0+thickness).Intersect(b), u, image.Point{}, draw.Over)
	draw.Draw(dst, image.Rect(x0, y1-thickness, x1, y1).Intersect(b), u, image.Point{}, draw.Over)
	draw.Draw(dst, image.Rect(x0, y0, x0+thickness, y1).Intersect(b), u, image.Point{}, draw.Over)
	draw.Draw(dst, image.Rect(x1-thickness, y0, x1, y1).Intersect(b), u, image.Point{}, draw.Over)
}
