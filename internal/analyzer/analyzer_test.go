package analyzer

import (
	"errors"
	"image"
	"image/color"
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestBusynessAnalyzerBlackImage(t *testing.T) {
	img := uniformImage(100, 100, color.RGBA{A: 255})
	a := NewBusynessAnalyzer()

	result, hover, err := a.Analyze(img, Options{
		Grid:       GridConfig{Rows: 10, Cols: 10},
		TargetArea: 12,
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if hover == nil {
		t.Fatal("expected hover data")
	}

	if result.RectBusyness != 0 {
		t.Errorf("rect busyness = %v, expected 0", result.RectBusyness)
	}
	if result.TextColor.Name != "white" {
		t.Errorf("text colour = %q, expected white", result.TextColor.Name)
	}
	if result.AvgBackgroundColor != (RGB{}) {
		t.Errorf("avg background = %+v, expected black", result.AvgBackgroundColor)
	}
	if math.Abs(result.TextContrastRatio-21) > 1e-9 {
		t.Errorf("contrast = %v, expected 21", result.TextContrastRatio)
	}

	// Everything ties at zero busyness, so the first generated shape wins
	// at the first scanned position: 3x4 cells anchored at the origin.
	if result.ActualCells != (GridConfig{Rows: 3, Cols: 4}) {
		t.Errorf("cells = %+v, expected 3x4", result.ActualCells)
	}
	if result.AspectRatioName != AspectSquare {
		t.Errorf("aspect = %s, expected square", result.AspectRatioName)
	}
	if result.Rect != (Rect{X: 0, Y: 0, Width: 40, Height: 30}) {
		t.Errorf("rect = %+v, expected (0,0 40x30)", result.Rect)
	}
	if result.FontSize != 12 {
		t.Errorf("font size = %v, expected the 12px floor", result.FontSize)
	}
}

func TestBusynessAnalyzerDeterministic(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 80, 60))
	for y := 0; y < 60; y++ {
		for x := 0; x < 80; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 3), G: uint8(y * 4), B: uint8((x + y) % 256), A: 255})
		}
	}

	a := NewBusynessAnalyzer()
	opts := Options{
		Grid:            GridConfig{Rows: 6, Cols: 8},
		TargetArea:      8,
		BorderExclusion: 1,
		PreferCellColor: true,
	}

	r1, h1, err := a.Analyze(img, opts)
	if err != nil {
		t.Fatalf("first Analyze failed: %v", err)
	}
	r2, h2, err := a.Analyze(img, opts)
	if err != nil {
		t.Fatalf("second Analyze failed: %v", err)
	}

	if !reflect.DeepEqual(r1, r2) {
		t.Errorf("results differ across runs:\n%+v\n%+v", r1, r2)
	}
	if !reflect.DeepEqual(h1, h2) {
		t.Errorf("hover data differs across runs")
	}
}

func TestBusynessAnalyzerErrors(t *testing.T) {
	a := NewBusynessAnalyzer()

	t.Run("zero-dimension image", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 0, 0))
		result, hover, err := a.Analyze(img, Options{Grid: GridConfig{Rows: 4, Cols: 4}, TargetArea: 4})
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
		if result != nil || hover != nil {
			t.Error("expected nil result and hover before statistics exist")
		}
	})

	t.Run("bad target area", func(t *testing.T) {
		img := uniformImage(10, 10, color.RGBA{A: 255})
		_, _, err := a.Analyze(img, Options{Grid: GridConfig{Rows: 2, Cols: 2}, TargetArea: 0})
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("border eats the grid", func(t *testing.T) {
		// A 2x2 grid with a 1-cell border leaves no interior at all.
		img := uniformImage(10, 10, color.RGBA{A: 255})
		result, hover, err := a.Analyze(img, Options{
			Grid:            GridConfig{Rows: 2, Cols: 2},
			TargetArea:      4,
			BorderExclusion: 1,
		})
		if !errors.Is(err, ErrNoCandidateShapes) {
			t.Errorf("expected ErrNoCandidateShapes, got %v", err)
		}
		if result != nil {
			t.Error("expected nil result")
		}
		if hover == nil {
			t.Error("hover data must survive a failed shape generation")
		}
	})
}

func TestBusynessAnalyzerWarnf(t *testing.T) {
	img := uniformImage(10, 10, color.RGBA{A: 255})
	var warnings []string
	_, _, err := NewBusynessAnalyzer().Analyze(img, Options{
		Grid:            GridConfig{Rows: 2, Cols: 2},
		TargetArea:      4,
		BorderExclusion: 1,
		Warnf: func(format string, args ...any) {
			warnings = append(warnings, format)
		},
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if len(warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %d", len(warnings))
	}
	if !strings.HasPrefix(warnings[0], "[!]") {
		t.Errorf("warning %q missing the [!] prefix", warnings[0])
	}
}

func TestNewAnalyzerVariants(t *testing.T) {
	tests := []struct {
		variant string
		ok      bool
	}{
		{"busyness", true},
		{"", true},
		{"saliency", false},
		{"edge", false},
		{"bogus", false},
	}
	for _, tt := range tests {
		a, err := NewAnalyzer(tt.variant)
		if tt.ok && (err != nil || a == nil) {
			t.Errorf("NewAnalyzer(%q) failed: %v", tt.variant, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("NewAnalyzer(%q) should have failed", tt.variant)
		}
	}
}
