//go:build basic

package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRepogemBasicFlow exercises every pipeline command end to end with the
// history backend disabled.
func TestRepogemBasicFlow(t *testing.T) {
	input := writeFixtureInput(t)
	outDir := t.TempDir()

	// Rank as a plain table
	err := runRepogemCommand(t, "rank", input, "--limit", "3")
	require.NoError(t, err)

	// Summary as JSON
	err = runRepogemCommand(t, "summary", input, "--output", "json")
	require.NoError(t, err)

	// Overrated filter with default thresholds
	err = runRepogemCommand(t, "overrated", input)
	require.NoError(t, err)

	// Export the full table as CSV to a file
	csvPath := filepath.Join(outDir, "scores.csv")
	err = runRepogemCommand(t, "export", input, "--output-file", csvPath)
	require.NoError(t, err)
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "octo/widget")

	// Report and charts land in the output directory
	err = runRepogemCommand(t, "report", input, "--out-dir", outDir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "repo_report.html"))

	err = runRepogemCommand(t, "charts", input, "--out-dir", outDir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "repo_charts.html"))
}
