package report

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/FrediBach/text-placement-image-analyzer/internal/analyzer"
)

func TestWriteReadRoundTrip(t *testing.T) {
	r := &Report{
		Version: "dev",
		Input:   "testdata/sample.png",
		Pages: []Page{
			{
				Index: 0,
				Result: &analyzer.AnalysisResult{
					Rect:               analyzer.Rect{X: 10, Y: 20, Width: 100, Height: 60},
					TextColor:          analyzer.TextColor{Name: "white", RGB: analyzer.RGB{R: 255, G: 255, B: 255}},
					FontSize:           18,
					AvgBackgroundColor: analyzer.RGB{R: 12, G: 34, B: 56},
					AspectRatioName:    analyzer.AspectLandscape,
					ActualCells:        analyzer.GridConfig{Rows: 2, Cols: 4},
					RectBusyness:       42.5,
					TextContrastRatio:  8.25,
				},
				Hover: &analyzer.HoverData{
					GridConfig:   analyzer.GridConfig{Rows: 2, Cols: 2},
					CellStats:    []analyzer.CellStat{{Busyness: 1}, {Busyness: 2}, {Busyness: 3}, {Busyness: 4}},
					CellWidthPx:  50,
					CellHeightPx: 50,
					CanvasWidth:  100,
					CanvasHeight: 100,
				},
			},
			{Index: 1, Warning: "no placement fits"},
		},
	}

	path := filepath.Join(t.TempDir(), "report.yaml")
	if err := Write(r, path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !reflect.DeepEqual(got, r) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, r)
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestGeneratePath(t *testing.T) {
	path := GeneratePath()
	if filepath.Dir(path) != reportsDir {
		t.Errorf("path %q not under %s/", path, reportsDir)
	}
	base := filepath.Base(path)
	if !strings.HasPrefix(base, "analysis_") || !strings.HasSuffix(base, ".yaml") {
		t.Errorf("unexpected filename %q", base)
	}
}

func TestFindLatest(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.Mkdir(reportsDir, 0755); err != nil {
		t.Fatal(err)
	}

	old := filepath.Join(reportsDir, "analysis_old.yaml")
	newer := filepath.Join(reportsDir, "analysis_new.yaml")
	for _, p := range []string{old, newer} {
		if err := os.WriteFile(p, []byte("version: dev\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatal(err)
	}
	// A non-yaml file must be ignored.
	if err := os.WriteFile(filepath.Join(reportsDir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := FindLatest()
	if err != nil {
		t.Fatalf("FindLatest failed: %v", err)
	}
	if got != newer {
		t.Errorf("FindLatest = %q, expected %q", got, newer)
	}
}

func TestFindLatestEmpty(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := FindLatest(); err == nil {
		t.Error("expected an error with no reports directory")
	}
}
