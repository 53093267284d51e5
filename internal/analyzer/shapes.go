package analyzer

import "math"

// areaTolerance lets a candidate undershoot the target cell area by 20%
// before it is discarded.
const areaTolerance = 0.8

// landscapeBias is the width:height cell ratio the landscape candidate aims
// for; the portrait candidate is its mirror.
const landscapeBias = 1.8

// GenerateShapeCandidates enumerates the deduplicated set of rectangle
// shapes (rows x cols of cells) worth testing for a target cell area within
// the given grid bounds. The bounds are expected to be already reduced by
// twice the border-exclusion margin.
//
// The construction order is fixed: a square-ish attempt and its transpose, a
// landscape candidate biased toward landscapeBias and its portrait mirror,
// the 1xN / Nx1 extremes when the target area fits a single row or column,
// and two one-cell-larger square variants. Later ties in the search are
// broken by this order, so it must stay stable.
//
// An empty result is a valid outcome: no shape satisfies the bounds and area
// tolerance with the current configuration.
func GenerateShapeCandidates(targetArea, maxRows, maxCols int) []ShapeCandidate {
	if targetArea < 1 || maxRows < 1 || maxCols < 1 {
		return nil
	}

	area := float64(targetArea)

	sqRows := int(math.Round(math.Sqrt(area)))
	if sqRows < 1 {
		sqRows = 1
	}
	sqCols := int(math.Ceil(area / float64(sqRows)))

	lRows := int(math.Round(math.Sqrt(area / landscapeBias)))
	if lRows < 1 {
		lRows = 1
	}
	lCols := int(math.Round(float64(lRows) * landscapeBias))
	if lRows*lCols < targetArea {
		lCols++
	}

	g := shapeSet{targetArea: targetArea, maxRows: maxRows, maxCols: maxCols}

	g.add(sqRows, sqCols)
	g.add(sqCols, sqRows)
	g.add(lRows, lCols)
	g.add(lCols, lRows)
	if targetArea <= maxCols {
		g.add(1, targetArea)
	}
	if targetArea <= maxRows {
		g.add(targetArea, 1)
	}
	g.add(sqRows+1, sqCols)
	g.add(sqRows, sqCols+1)

	return g.shapes
}

// shapeSet deduplicates candidates by (rows, cols) while preserving
// insertion order. The first name assigned for a given size wins.
type shapeSet struct {
	targetArea int
	maxRows    int
	maxCols    int
	shapes     []ShapeCandidate
}

func (s *shapeSet) add(rows, cols int) {
	// Clip to bounds, then re-check the area tolerance against the clipped
	// size.
	if rows > s.maxRows {
		rows = s.maxRows
	}
	if cols > s.maxCols {
		cols = s.maxCols
	}
	if rows < 1 || cols < 1 {
		return
	}
	if float64(rows*cols) < float64(s.targetArea)*areaTolerance {
		return
	}
	for _, sc := range s.shapes {
		if sc.Rows == rows && sc.Cols == cols {
			return
		}
	}
	s.shapes = append(s.shapes, ShapeCandidate{
		Name: classifyAspect(rows, cols),
		Rows: rows,
		Cols: cols,
	})
}

// classifyAspect assigns the qualitative aspect-ratio label.
func classifyAspect(rows, cols int) AspectName {
	minDim := rows
	if cols < minDim {
		minDim = cols
	}
	diff := math.Abs(float64(rows - cols))
	if diff <= math.Max(1, 0.25*float64(minDim)) {
		return AspectSquare
	}
	if float64(cols) > 1.25*float64(rows) {
		return AspectLandscape
	}
	if float64(rows) > 1.25*float64(cols) {
		return AspectPortrait
	}
	return AspectNearSquare
}
