package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/FrediBach/text-placement-image-analyzer/internal/analyzer"
	"github.com/FrediBach/text-placement-image-analyzer/internal/config"
	"github.com/FrediBach/text-placement-image-analyzer/internal/engine"
	"github.com/FrediBach/text-placement-image-analyzer/internal/report"
	"github.com/FrediBach/text-placement-image-analyzer/internal/source"
	"github.com/FrediBach/text-placement-image-analyzer/internal/system"
)

var buildVersion = "dev"

func main() {
	// Default working directories, created on first run.
	for _, d := range []string{"input", "output"} {
		os.MkdirAll(d, 0755)
	}

	inputPtr := flag.String("input", "", "Image, image directory or PDF (default: newest image or PDF in input/)")
	outputPtr := flag.String("output", "output", "Output directory")
	textPtr := flag.String("text", "", "Caption text to place (required)")
	rowsPtr := flag.Int("rows", 10, "Grid rows")
	colsPtr := flag.Int("cols", 10, "Grid columns")
	targetAreaPtr := flag.Int("target-area", 12, "Desired placement size in grid cells")
	borderPtr := flag.Int("border", 1, "Cells near the image edge excluded from placement")
	preferCellPtr := flag.Bool("prefer-cell-color", false, "Take the text colour from the highest-contrast covered cell")
	variantPtr := flag.String("variant", "busyness", "Analyzer variant")
	fontPtr := flag.String("font", "", "TTF font file (default: embedded Go Regular)")
	formatPtr := flag.String("format", "png", "Output format: png, jpg")
	qualityPtr := flag.Int("quality", 90, "JPEG quality (1-100)")
	dpiPtr := flag.Int("dpi", 150, "Rasterisation DPI for PDF inputs")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Parallel page workers")
	qrPtr := flag.String("qr", "", "Stamp a QR code with this content on the corner opposite the caption")
	debugGridPtr := flag.Bool("debug-grid", false, "Overlay the busyness heatmap and chosen rectangle")
	reportPtr := flag.String("report", "", "YAML analysis report path ('auto' for a timestamped file under reports/)")
	statsPtr := flag.Bool("stats", false, "Print a performance report after the run")

	flag.Parse()

	if *textPtr == "" {
		log.Fatal("[-] -text is required")
	}

	inputPath := *inputPtr
	if inputPath == "" {
		latest, err := system.FindLatestImage("input")
		if err != nil {
			latest, err = system.FindLatestPDF("input")
		}
		if err != nil {
			log.Fatalf("[-] Error: %v. Put an image or PDF in input/", err)
		}
		inputPath = latest
		fmt.Printf("[*] Selected input: %s\n", inputPath)
	}

	var src source.Source
	var err error
	if strings.HasSuffix(strings.ToLower(inputPath), ".pdf") {
		src, err = source.NewFitzPDFSource(inputPath)
	} else {
		src, err = source.NewImageSource(inputPath)
	}
	if err != nil {
		log.Fatalf("[-] Failed to open source: %v", err)
	}
	defer src.Close()

	an, err := analyzer.NewAnalyzer(*variantPtr)
	if err != nil {
		log.Fatalf("[-] %v", err)
	}

	var font []byte
	if *fontPtr != "" {
		font, err = os.ReadFile(*fontPtr)
		if err != nil {
			log.Fatalf("[-] Failed to read font: %v", err)
		}
	}

	reportPath := *reportPtr
	if reportPath == "auto" {
		reportPath = report.GeneratePath()
	}
	if reportPath != "" {
		os.MkdirAll(filepath.Dir(reportPath), 0755)
	}

	format := *formatPtr
	if format != "png" && format != "jpg" {
		log.Fatalf("[-] Unknown format: %s", format)
	}

	cfg := &config.Config{
		InputPath:       inputPath,
		OutputDir:       *outputPtr,
		Text:            *textPtr,
		GridRows:        *rowsPtr,
		GridCols:        *colsPtr,
		TargetArea:      *targetAreaPtr,
		BorderExclusion: *borderPtr,
		PreferCellColor: *preferCellPtr,
		Variant:         *variantPtr,
		FontPath:        *fontPtr,
		Format:          format,
		Quality:         *qualityPtr,
		DPI:             *dpiPtr,
		Workers:         *workersPtr,
		QRContent:       *qrPtr,
		DebugGrid:       *debugGridPtr,
		ReportPath:      reportPath,
		ShowStats:       *statsPtr,
		BuildVersion:    buildVersion,
	}

	project := engine.NewProject(cfg, src, an, font)
	if err := project.Run(); err != nil {
		log.Fatalf("[-] %v", err)
	}
	fmt.Printf("[+++] Done. Output in %s\n", cfg.OutputDir)
}
