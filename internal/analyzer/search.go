package analyzer

import "fmt"

// FindBestRect slides every candidate shape over the grid, respecting the
// border-exclusion margin, and returns the placement with the lowest average
// busyness across all shapes.
//
// The search is deliberately exhaustive: O(shapes x positions x shapeArea)
// with no pruning. Grids are interactive-scale (tens by tens of cells), and
// determinism matters more than runtime here. Ties are broken by encounter
// order: positions row-major within a shape, shapes in generation order.
func FindBestRect(stats *GridStats, shapes []ShapeCandidate, borderExclusion int) (*RectCandidate, error) {
	if borderExclusion < 0 {
		return nil, fmt.Errorf("%w: negative border exclusion %d", ErrInvalidInput, borderExclusion)
	}

	rows, cols := stats.Config.Rows, stats.Config.Cols

	var best *RectCandidate
	for _, shape := range shapes {
		cand := bestPositionForShape(stats, shape, borderExclusion, rows, cols)
		if cand == nil {
			continue // shape does not fit the bounded grid
		}
		// Strict < keeps the first-seen candidate on exact ties.
		if best == nil || cand.AvgBusyness < best.AvgBusyness {
			best = cand
		}
	}

	if best == nil {
		return nil, fmt.Errorf("%w: no shape fits a %dx%d grid with border %d",
			ErrNoCandidateRectangle, rows, cols, borderExclusion)
	}
	return best, nil
}

func bestPositionForShape(stats *GridStats, shape ShapeCandidate, border, rows, cols int) *RectCandidate {
	var best *RectCandidate
	for rStart := border; rStart+shape.Rows <= rows-border; rStart++ {
		for cStart := border; cStart+shape.Cols <= cols-border; cStart++ {
			var busySum float64
			var sumR, sumG, sumB float64
			for r := rStart; r < rStart+shape.Rows; r++ {
				for c := cStart; c < cStart+shape.Cols; c++ {
					cell := stats.Cell(r, c)
					busySum += cell.Busyness
					sumR += cell.AvgColor.R
					sumG += cell.AvgColor.G
					sumB += cell.AvgColor.B
				}
			}
			n := float64(shape.Rows * shape.Cols)
			avgBusy := busySum / n

			if best == nil || avgBusy < best.AvgBusyness {
				best = &RectCandidate{
					X:           int(float64(cStart) * stats.CellWidthPx),
					Y:           int(float64(rStart) * stats.CellHeightPx),
					Width:       int(float64(shape.Cols) * stats.CellWidthPx),
					Height:      int(float64(shape.Rows) * stats.CellHeightPx),
					AvgColor:    RGB{R: sumR / n, G: sumG / n, B: sumB / n},
					RStart:      rStart,
					CStart:      cStart,
					AvgBusyness: avgBusy,
					Shape:       shape,
				}
			}
		}
	}
	return best
}
