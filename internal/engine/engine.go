// Package engine runs the batch pipeline: render each source page, analyze
// it for the calmest placement, lay out the caption and encode the result.
package engine

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/FrediBach/text-placement-image-analyzer/internal/analyzer"
	"github.com/FrediBach/text-placement-image-analyzer/internal/canvas"
	"github.com/FrediBach/text-placement-image-analyzer/internal/config"
	"github.com/FrediBach/text-placement-image-analyzer/internal/layout"
	"github.com/FrediBach/text-placement-image-analyzer/internal/report"
	"github.com/FrediBach/text-placement-image-analyzer/internal/source"
	"github.com/FrediBach/text-placement-image-analyzer/internal/system"
)

// Project wires a source, an analyzer and the run configuration.
type Project struct {
	Config   *config.Config
	Source   source.Source
	Analyzer analyzer.Analyzer
	Font     []byte // optional TTF bytes; nil uses the embedded default
}

// NewProject creates a batch captioning project.
func NewProject(cfg *config.Config, src source.Source, an analyzer.Analyzer, font []byte) *Project {
	return &Project{Config: cfg, Source: src, Analyzer: an, Font: font}
}

// Run processes every page. Pages run in parallel up to Config.Workers; the
// analysis of a single page stays sequential. Per-page analysis failures
// downgrade to warnings and still produce an uncaptioned output, so one bad
// page never aborts the batch.
func (p *Project) Run() error {
	start := time.Now()

	pageCount := p.Source.PageCount()
	if pageCount == 0 {
		return fmt.Errorf("source contains no pages")
	}
	if err := os.MkdirAll(p.Config.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	fmt.Printf("[*] Source: %s | Pages: %d\n", p.Config.InputPath, pageCount)
	fmt.Printf("[*] Grid: %dx%d | Target area: %d | Border: %d\n",
		p.Config.GridRows, p.Config.GridCols, p.Config.TargetArea, p.Config.BorderExclusion)

	pages := make([]report.Page, pageCount)
	var done atomic.Int64

	workers := p.Config.Workers
	if workers < 1 {
		workers = 1
	}
	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i := 0; i < pageCount; i++ {
		g.Go(func() error {
			page, err := p.processPage(i)
			if err != nil {
				// Hard failures (render/encode) abort the batch.
				return fmt.Errorf("page %d: %w", i+1, err)
			}
			pages[i] = page
			fmt.Printf("[>] Ready: %d/%d\n", done.Add(1), int64(pageCount))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if p.Config.ReportPath != "" {
		rep := &report.Report{Version: "1.0", Input: p.Config.InputPath, Pages: pages}
		if err := report.Write(rep, p.Config.ReportPath); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("[*] Report saved: %s\n", p.Config.ReportPath)
	}

	if p.Config.ShowStats {
		system.PrintRunStats(p.Config.BuildVersion, pageCount, time.Since(start))
	}
	return nil
}

func (p *Project) processPage(index int) (report.Page, error) {
	img, err := p.Source.RenderPage(index, p.Config.DPI)
	if err != nil {
		return report.Page{}, fmt.Errorf("render: %w", err)
	}

	opts := analyzer.Options{
		Grid:            analyzer.GridConfig{Rows: p.Config.GridRows, Cols: p.Config.GridCols},
		TargetArea:      p.Config.TargetArea,
		PreferCellColor: p.Config.PreferCellColor,
		BorderExclusion: p.Config.BorderExclusion,
		Warnf: func(format string, args ...any) {
			log.Printf("page %d: "+format, append([]any{index + 1}, args...)...)
		},
	}
	res, hover, err := p.Analyzer.Analyze(img, opts)

	page := report.Page{Index: index, Result: res, Hover: hover}
	if err != nil {
		// Recoverable analysis failure: record it and emit the page
		// without a caption.
		page.Warning = err.Error()
	}

	rgba := cloneRGBA(img)
	cv, err := canvas.New(rgba, p.Font)
	if err != nil {
		return report.Page{}, err
	}

	bounds := rgba.Bounds()
	if res != nil {
		tl, err := layout.Compute(cv, p.Config.Text, res, bounds.Dx(), bounds.Dy())
		if err != nil {
			return report.Page{}, fmt.Errorf("layout: %w", err)
		}
		if err := layout.Draw(cv, tl, res); err != nil {
			return report.Page{}, fmt.Errorf("draw: %w", err)
		}
	}

	if p.Config.DebugGrid && hover != nil {
		drawDebugGrid(rgba, hover, res)
	}

	if p.Config.QRContent != "" {
		corner := qrCorner(res, bounds.Dx(), bounds.Dy())
		size := min(bounds.Dx(), bounds.Dy()) / 6
		if err := canvas.StampQR(rgba, p.Config.QRContent, size, corner); err != nil {
			log.Printf("[!] page %d: QR stamp skipped: %v", index+1, err)
		}
	}

	if err := p.encodePage(rgba, index); err != nil {
		return report.Page{}, err
	}
	return page, nil
}

// qrCorner picks the corner farthest from the caption so the stamp never
// fights the text for the calm region.
func qrCorner(res *analyzer.AnalysisResult, canvasW, canvasH int) canvas.Corner {
	if res == nil {
		return canvas.BottomRight
	}
	centerX := float64(res.Rect.X) + float64(res.Rect.Width)/2
	centerY := float64(res.Rect.Y) + float64(res.Rect.Height)/2
	right := centerX < float64(canvasW)/2
	bottom := centerY < float64(canvasH)/2
	switch {
	case right && bottom:
		return canvas.BottomRight
	case right:
		return canvas.TopRight
	case bottom:
		return canvas.BottomLeft
	default:
		return canvas.TopLeft
	}
}

func (p *Project) encodePage(img *image.RGBA, index int) error {
	base := strings.TrimSuffix(filepath.Base(p.Config.InputPath), filepath.Ext(p.Config.InputPath))
	ext := "png"
	if p.Config.Format == "jpg" {
		ext = "jpg"
	}
	outPath := filepath.Join(p.Config.OutputDir, fmt.Sprintf("%s_p%03d.%s", base, index+1, ext))

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	if ext == "jpg" {
		quality := p.Config.Quality
		if quality < 1 || quality > 100 {
			quality = 90
		}
		if err := jpeg.Encode(f, img, &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("encode jpeg: %w", err)
		}
		return nil
	}
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// cloneRGBA copies any image into a fresh zero-origin RGBA buffer the canvas
// can draw on.
func cloneRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}
