// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/repogem/repogem/internal/contract"
	"github.com/repogem/repogem/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteRanked prints ranked repository results using the configured output format.
func (ow *OutWriter) WriteRanked(results []schema.RepoResult, cfg *contract.Config, duration time.Duration) error {
	return WriteRankedResults(results, cfg, duration)
}

// WriteExport prints the full derived table using the configured output format.
func (ow *OutWriter) WriteExport(results []schema.RepoResult, cfg *contract.Config, duration time.Duration) error {
	return WriteExportResults(results, cfg, duration)
}

// WriteOverrated prints heuristic filter results using the configured output format.
func (ow *OutWriter) WriteOverrated(results []schema.RepoResult, cfg *contract.Config, duration time.Duration) error {
	return WriteOverratedResults(results, cfg, duration)
}

// WriteSummary prints aggregate statistics using the configured output format.
func (ow *OutWriter) WriteSummary(summary schema.Summary, domains []schema.DomainCount, cfg *contract.Config, duration time.Duration) error {
	return WriteSummaryResults(summary, domains, cfg, duration)
}

// getMaxTableNameWidth calculates the maximum width for repo names in table
// output based on terminal width and table configuration.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns with table formatting:
	// Rank + Stars + Quality + Value + Overrated + Category with borders/padding
	baseWidth := 55

	// Reserve space for table borders, separators, and padding
	baseWidth += 10

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable name width
		return 15
	}
	if available > 60 {
		// Maximum name width to prevent overly long repo names
		return 60
	}
	return available
}
