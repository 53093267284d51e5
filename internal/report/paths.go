package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const reportsDir = "reports"

// GeneratePath creates a timestamped report filename under reports/.
func GeneratePath() string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(reportsDir, fmt.Sprintf("analysis_%s.yaml", timestamp))
}

// FindLatest returns the most recently modified report file.
func FindLatest() (string, error) {
	entries, err := os.ReadDir(reportsDir)
	if err != nil {
		return "", fmt.Errorf("failed to read reports directory: %w", err)
	}

	var reports []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".yaml") {
			reports = append(reports, filepath.Join(reportsDir, entry.Name()))
		}
	}
	if len(reports) == 0 {
		return "", fmt.Errorf("no report files found in %s", reportsDir)
	}

	sort.Slice(reports, func(i, j int) bool {
		infoI, _ := os.Stat(reports[i])
		infoJ, _ := os.Stat(reports[j])
		return infoI.ModTime().After(infoJ.ModTime())
	})
	return reports[0], nil
}
