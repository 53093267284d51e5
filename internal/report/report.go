// Package report persists analysis outcomes as YAML snapshots so placements
// can be inspected or replayed without re-running the search.
package report

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/FrediBach/text-placement-image-analyzer/internal/analyzer"
)

// Report captures one batch run: per-page analysis results and the hover
// diagnostics behind them.
type Report struct {
	Version string `yaml:"version"`
	Input   string `yaml:"input"`
	Pages   []Page `yaml:"pages"`
}

// Page is the outcome for a single page. Result is nil when the page had no
// suitable placement; Warning then carries the advisory message.
type Page struct {
	Index   int                      `yaml:"index"`
	Result  *analyzer.AnalysisResult `yaml:"result,omitempty"`
	Hover   *analyzer.HoverData      `yaml:"hover,omitempty"`
	Warning string                   `yaml:"warning,omitempty"`
}

// Write marshals the report to a YAML file.
func Write(r *Report, path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Read loads a report from a YAML file.
func Read(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
