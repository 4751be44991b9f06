package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/repogem/repogem/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleScoreRows() []RepoScoreRow {
	results := []schema.RepoResult{
		{
			RepoRecord: schema.RepoRecord{
				GithubURL:        "https://github.com/octo/widget",
				StarCount:        100,
				CodeQuality:      8,
				Innovativeness:   7,
				Usefulness:       9,
				UserFriendliness: 6,
				Motivation:       "solid docs",
				ProjectDomain:    "Developer Tools",
			},
			RepoName:        "octo/widget",
			OverallQuality:  7.5,
			ValueScore:      3.675,
			OverratedScore:  0.272,
			PopularityRatio: 1.778,
			Category:        schema.CategoryNormal,
		},
		{
			RepoRecord: schema.RepoRecord{
				GithubURL: "https://github.com/octo/gadget",
				StarCount: 5,
			},
			RepoName: "octo/gadget",
			Category: schema.CategoryUnderrated,
		},
	}
	return BuildRepoScoreRows(results)
}

func TestRepoScoreRowStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	sch := parquet.SchemaOf(new(RepoScoreRow))
	require.NotNil(t, sch)

	expectedColumns := []string{
		"github_url",
		"repo_name",
		"star_count",
		"code_quality",
		"innovativeness",
		"usefulness",
		"user_friendliness",
		"overall_quality",
		"value_score",
		"overrated_score",
		"popularity_ratio",
		"category",
		"project_domain",
		"motivation",
	}
	for _, colName := range expectedColumns {
		col, ok := sch.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestRunRowStructTags(t *testing.T) {
	sch := parquet.SchemaOf(new(RunRow))
	require.NotNil(t, sch)

	expectedColumns := []string{
		"run_id",
		"start_time",
		"end_time",
		"run_duration_ms",
		"record_count",
		"domain_count",
		"config_params",
	}
	for _, colName := range expectedColumns {
		col, ok := sch.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestBuildRepoScoreRows(t *testing.T) {
	rows := sampleScoreRows()
	require.Len(t, rows, 2)

	assert.Equal(t, "octo/widget", rows[0].RepoName)
	assert.Equal(t, "Normal", rows[0].Category)
	require.NotNil(t, rows[0].Motivation)
	assert.Equal(t, "solid docs", *rows[0].Motivation)

	// Empty motivation maps to a null column, not an empty string.
	assert.Nil(t, rows[1].Motivation)
}

func TestWriteRepoScoresParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "repo_scores.parquet")

	err := WriteRepoScoresParquet(sampleScoreRows(), outputPath)
	require.NoError(t, err)

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	readBack, err := parquet.ReadFile[RepoScoreRow](outputPath)
	require.NoError(t, err)
	require.Len(t, readBack, 2)
	assert.Equal(t, "octo/widget", readBack[0].RepoName)
	assert.Equal(t, int64(100), readBack[0].StarCount)
}

// TestWriteRepoScoresParquetFlushError tests that a failed footer flush
// surfaces as an error instead of leaving a silently truncated file.
func TestWriteRepoScoresParquetFlushError(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("requires /dev/full")
	}

	err := WriteRepoScoresParquet(sampleScoreRows(), "/dev/full")
	require.Error(t, err)
}

func TestWriteRunHistoryParquet(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "runs.parquet")
	end := time.Now()
	durMs := int64(1200)
	params := `{"metric":"value"}`

	data := []RunRow{
		{
			RunID:         1,
			StartTime:     end.Add(-time.Second),
			EndTime:       &end,
			RunDurationMs: &durMs,
			RecordCount:   42,
			DomainCount:   7,
			ConfigParams:  &params,
		},
	}
	err := WriteRunHistoryParquet(data, outputPath)
	require.NoError(t, err)

	readBack, err := parquet.ReadFile[RunRow](outputPath)
	require.NoError(t, err)
	require.Len(t, readBack, 1)
	assert.Equal(t, int64(1), readBack[0].RunID)
	assert.Equal(t, int32(42), readBack[0].RecordCount)
}
