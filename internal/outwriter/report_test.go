package outwriter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/repogem/repogem/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteReport tests the standalone HTML report rendering.
func TestWriteReport(t *testing.T) {
	cfg := testConfig()
	cfg.OutDir = t.TempDir()

	summary := schema.Summary{
		RecordCount:     2,
		DomainCount:     2,
		UnderratedCount: 1,
		OverratedCount:  1,
		TotalStars:      50100,
		MeanQuality:     5.25,
		MedianQuality:   5.25,
		StdDevQuality:   2.25,
		MeanValueScore:  2.157,
	}

	flagged := testResults()[1:]
	err := WriteReport(testResults(), flagged, summary, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(cfg.OutDir, ReportFileName))
	require.NoError(t, err)
	html := string(data)

	assert.Contains(t, html, "octo/widget")
	assert.Contains(t, html, "https://github.com/mega/hype")
	assert.Contains(t, html, "solid docs")
	assert.Contains(t, html, "Flagged underrated (1)")
	assert.Contains(t, html, "Flagged overrated (1)")
	assert.Contains(t, html, "Potentially overrated (1)")
	// The percentile cutoffs from the config show up in the caption.
	assert.Contains(t, html, "P80")
	assert.Contains(t, html, "P40")
	// Flagged rows get highlighted.
	assert.Contains(t, html, `class="underrated"`)
	assert.Contains(t, html, `class="overrated"`)
}

// TestBuildReportModel tests top pick capping and category split.
func TestBuildReportModel(t *testing.T) {
	cfg := testConfig()

	results := make([]schema.RepoResult, 0, 25)
	for i := 0; i < 25; i++ {
		r := testResults()[0]
		r.Category = schema.CategoryNormal
		results = append(results, r)
	}
	model := buildReportModel(results, nil, schema.Summary{RecordCount: 25}, cfg)

	assert.Len(t, model.TopPicks, 20)
	assert.Empty(t, model.UnderratedRepos)
	assert.Empty(t, model.OverratedRepos)
	assert.Empty(t, model.PotentiallyOverrated)
}

// TestBuildReportModelHeuristicTable tests that percentile heuristic hits
// land in their own table regardless of the classifier flags.
func TestBuildReportModelHeuristicTable(t *testing.T) {
	cfg := testConfig()

	results := testResults()
	results[1].Category = schema.CategoryNormal
	flagged := results[1:]

	model := buildReportModel(results, flagged, schema.Summary{RecordCount: 2}, cfg)

	require.Len(t, model.PotentiallyOverrated, 1)
	assert.Equal(t, "mega/hype", model.PotentiallyOverrated[0].RepoName)
	assert.Equal(t, 1, model.PotentiallyOverrated[0].Rank)
	assert.Empty(t, model.OverratedRepos)
}
