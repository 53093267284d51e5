package layout

import (
	"image/color"
	"strings"
	"testing"
)

// fakeSurface measures text at 0.6 x size per character and records draw
// calls, which is enough to exercise wrapping, fitting and positioning
// without a real font.
type fakeSurface struct {
	size  float64
	rects []fakeRect
	texts []fakeText
}

type fakeRect struct {
	x, y, w, h float64
	c          color.NRGBA
}

type fakeText struct {
	text string
	x, y float64
}

func (f *fakeSurface) SetFont(sizePx float64) error { f.size = sizePx; return nil }

func (f *fakeSurface) MeasureText(text string) float64 {
	return float64(len(text)) * f.size * 0.6
}

func (f *fakeSurface) FillRect(x, y, w, h float64, c color.NRGBA) {
	f.rects = append(f.rects, fakeRect{x, y, w, h, c})
}

func (f *fakeSurface) FillText(text string, x, y float64, _ color.NRGBA) {
	f.texts = append(f.texts, fakeText{text, x, y})
}

func TestWrapTextRoundTrip(t *testing.T) {
	s := &fakeSurface{size: 10}
	tests := []struct {
		name     string
		text     string
		maxWidth float64
	}{
		{"short sentence", "hello wrapped world", 100},
		{"tight width", "the quick brown fox jumps over the lazy dog", 60},
		{"single word per line", "alpha beta gamma", 6},
		{"messy whitespace", "  spaced\t\tout\n words  ", 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(s, tt.text, tt.maxWidth)
			got := strings.Join(lines, " ")
			want := strings.Join(strings.Fields(tt.text), " ")
			if got != want {
				t.Errorf("rejoined lines = %q, expected %q", got, want)
			}
			for _, line := range lines {
				if line == "" {
					t.Error("empty line emitted")
				}
			}
		})
	}
}

func TestWrapTextEmpty(t *testing.T) {
	s := &fakeSurface{size: 10}
	for _, text := range []string{"", "   ", "\t\n"} {
		if lines := WrapText(s, text, 100); lines != nil {
			t.Errorf("WrapText(%q) = %v, expected nil", text, lines)
		}
	}
}

func TestWrapTextOverlongWord(t *testing.T) {
	s := &fakeSurface{size: 10}
	// "incomprehensibilities" measures far past 50; it must still land on
	// its own line and wrapping must continue afterwards.
	lines := WrapText(s, "an incomprehensibilities word", 50)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %v", lines)
	}
	if lines[1] != "incomprehensibilities" {
		t.Errorf("overlong word not isolated: %v", lines)
	}
}
