package outwriter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/repogem/repogem/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteCharts tests the chart page rendering.
func TestWriteCharts(t *testing.T) {
	cfg := testConfig()
	cfg.OutDir = t.TempDir()

	domains := []schema.DomainCount{
		{Domain: "AI", Count: 1},
		{Domain: "Developer Tools", Count: 1},
	}
	err := WriteCharts(testResults(), domains, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(cfg.OutDir, ChartsFileName))
	require.NoError(t, err)
	html := string(data)

	assert.Contains(t, html, "Stars vs overall quality")
	assert.Contains(t, html, "Value score distribution")
	assert.Contains(t, html, "Top project domains")
	assert.Contains(t, html, "widget")
}

// TestBuildScatterChart tests the per-category series split.
func TestBuildScatterChart(t *testing.T) {
	scatter := buildScatterChart(testResults())
	require.NotNil(t, scatter)
	// One series per category present in the input.
	assert.Len(t, scatter.MultiSeries, 2)
}

// TestBuildValueHistogram tests bin assignment including the maximum.
func TestBuildValueHistogram(t *testing.T) {
	t.Run("degenerate input renders empty chart", func(t *testing.T) {
		bar := buildValueHistogram(nil)
		require.NotNil(t, bar)
		assert.Empty(t, bar.MultiSeries)
	})

	t.Run("spread input fills bins", func(t *testing.T) {
		bar := buildValueHistogram(testResults())
		require.NotNil(t, bar)
		assert.Len(t, bar.MultiSeries, 1)
	})
}
