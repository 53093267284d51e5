package config

// Config carries every knob of one captioning run, populated from flags in
// cmd/textplace.
type Config struct {
	InputPath       string
	OutputDir       string
	Text            string
	GridRows        int
	GridCols        int
	TargetArea      int
	BorderExclusion int
	PreferCellColor bool
	Variant         string
	FontPath        string
	Format          string // "png" or "jpg"
	Quality         int    // JPEG quality, 1-100
	DPI             int    // PDF rasterisation DPI
	Workers         int
	QRContent       string
	DebugGrid       bool
	ReportPath      string
	ShowStats       bool
	BuildVersion    string
}
