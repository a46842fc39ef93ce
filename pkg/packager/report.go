package packager

import (
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v2"

	"github.com/mrhapile/distpack/pkg/types"
)

// WriteReport writes the run summary sidecar as YAML next to the archive
// and returns its path. The report is diagnostic output for pipeline
// tooling; it is not added to the archive.
func WriteReport(outputDir string, report types.RunReport) (string, error) {
	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	reportPath := filepath.Join(outputDir, ReportFile)
	if err := os.WriteFile(reportPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", reportPath, err)
	}
	return reportPath, nil
}
