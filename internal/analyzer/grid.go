package analyzer

import (
	"fmt"
	"image"
	"image/draw"
	"math"
)

// ComputeGridStats partitions the image into cfg.Rows x cfg.Cols cells and
// computes average colour and busyness per cell.
//
// Cell pixel boundaries come from floor-sampling the fractional cell edges,
// so the cells partition the buffer exactly with no gap or overlap; sizes may
// differ by at most one pixel across cells. A cell that ends up covering zero
// pixels gets busyness = +Inf and a black average, a sentinel the minimiser
// never selects.
func ComputeGridStats(img image.Image, cfg GridConfig) (*GridStats, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidInput)
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: zero-area image %dx%d", ErrInvalidInput, width, height)
	}
	if cfg.Rows < 1 || cfg.Cols < 1 {
		return nil, fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidInput, cfg.Rows, cfg.Cols)
	}

	rgba := toRGBA(img)

	cellW := float64(width) / float64(cfg.Cols)
	cellH := float64(height) / float64(cfg.Rows)

	stats := &GridStats{
		Config:       cfg,
		Cells:        make([]CellStat, cfg.Rows*cfg.Cols),
		CellWidthPx:  cellW,
		CellHeightPx: cellH,
		Width:        width,
		Height:       height,
	}

	// Reused across cells; sized for the largest possible cell.
	lums := make([]float64, 0, (int(cellW)+1)*(int(cellH)+1))

	for row := 0; row < cfg.Rows; row++ {
		y0 := int(float64(row) * cellH)
		y1 := int(float64(row+1) * cellH)
		if row == cfg.Rows-1 {
			y1 = height // guard against float rounding at the last edge
		}
		for col := 0; col < cfg.Cols; col++ {
			x0 := int(float64(col) * cellW)
			x1 := int(float64(col+1) * cellW)
			if col == cfg.Cols-1 {
				x1 = width
			}

			var sumR, sumG, sumB float64
			lums = lums[:0]
			for y := y0; y < y1; y++ {
				i := rgba.PixOffset(x0, y)
				for x := x0; x < x1; x++ {
					r := float64(rgba.Pix[i])
					g := float64(rgba.Pix[i+1])
					b := float64(rgba.Pix[i+2])
					sumR += r
					sumG += g
					sumB += b
					lums = append(lums, Luminance(r, g, b))
					i += 4
				}
			}

			cell := &stats.Cells[row*cfg.Cols+col]
			n := float64(len(lums))
			if n == 0 {
				cell.Busyness = math.Inf(1)
				continue
			}
			cell.AvgColor = RGB{R: sumR / n, G: sumG / n, B: sumB / n}

			meanLum := 0.0
			for _, l := range lums {
				meanLum += l
			}
			meanLum /= n

			variance := 0.0
			for _, l := range lums {
				d := l - meanLum
				variance += d * d
			}
			cell.Busyness = variance / n
		}
	}

	return stats, nil
}

// toRGBA normalises any image to a zero-origin RGBA buffer with a standard
// stride, converting only when needed.
func toRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != bounds.Dx()*4 || rgba.Rect.Min.X != 0 || rgba.Rect.Min.Y != 0 {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}
	return rgba
}
