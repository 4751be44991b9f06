// Package parquet provides data structures and functions for exporting
// derived repository scores and run history to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/repogem/repogem/schema"
)

// RepoScoreRow represents one repository in the derived score table.
// This struct maps to the repogem_run_scores database table.
type RepoScoreRow struct {
	// GithubURL is the canonical repository URL from the classifier input
	GithubURL string `parquet:"github_url,snappy"`

	// RepoName is the owner/name pair extracted from the URL
	RepoName string `parquet:"repo_name,snappy"`

	// StarCount is the repository star count at classification time
	StarCount int64 `parquet:"star_count,snappy"`

	// CodeQuality is the classifier sub-score on a 0-10 scale
	CodeQuality float64 `parquet:"code_quality,snappy"`

	// Innovativeness is the classifier sub-score on a 0-10 scale
	Innovativeness float64 `parquet:"innovativeness,snappy"`

	// Usefulness is the classifier sub-score on a 0-10 scale
	Usefulness float64 `parquet:"usefulness,snappy"`

	// UserFriendliness is the classifier sub-score on a 0-10 scale
	UserFriendliness float64 `parquet:"user_friendliness,snappy"`

	// OverallQuality is the mean of the four sub-scores
	OverallQuality float64 `parquet:"overall_quality,snappy"`

	// ValueScore is quality relative to log-scaled popularity
	ValueScore float64 `parquet:"value_score,snappy"`

	// OverratedScore is log-scaled popularity relative to quality
	OverratedScore float64 `parquet:"overrated_score,snappy"`

	// PopularityRatio is stars divided by squared quality
	PopularityRatio float64 `parquet:"popularity_ratio,snappy"`

	// Category is the classifier label: Underrated, Overrated or Normal
	Category string `parquet:"category,snappy"`

	// ProjectDomain is the classifier domain label (defaults to Unknown)
	ProjectDomain string `parquet:"project_domain,snappy"`

	// Motivation is the classifier free-text rationale (nullable)
	Motivation *string `parquet:"motivation,optional,snappy"`
}

// RunRow represents a single pipeline run with metadata.
// This struct maps to the repogem_runs database table.
type RunRow struct {
	// RunID is the unique identifier for this pipeline run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int64 `parquet:"run_duration_ms,optional,snappy"`

	// RecordCount is the number of records derived in this run
	RecordCount int32 `parquet:"record_count,snappy"`

	// DomainCount is the number of distinct project domains seen
	DomainCount int32 `parquet:"domain_count,snappy"`

	// ConfigParams contains the JSON-encoded run parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// RunScoreRow represents one persisted score row from the run history.
// This struct maps to the repogem_run_scores database table.
type RunScoreRow struct {
	// RunID references the parent pipeline run
	RunID int64 `parquet:"run_id,snappy"`

	// RepoName is the owner/name pair extracted from the URL
	RepoName string `parquet:"repo_name,snappy"`

	// GithubURL is the canonical repository URL
	GithubURL string `parquet:"github_url,snappy"`

	// StarCount is the repository star count at classification time
	StarCount int64 `parquet:"star_count,snappy"`

	// OverallQuality is the mean of the four sub-scores
	OverallQuality float64 `parquet:"overall_quality,snappy"`

	// ValueScore is quality relative to log-scaled popularity
	ValueScore float64 `parquet:"value_score,snappy"`

	// OverratedScore is log-scaled popularity relative to quality
	OverratedScore float64 `parquet:"overrated_score,snappy"`

	// Category is the classifier label: Underrated, Overrated or Normal
	Category string `parquet:"category,snappy"`

	// ProjectDomain is the classifier domain label
	ProjectDomain string `parquet:"project_domain,snappy"`
}

// ConvertRunRecords converts history run records into Parquet rows.
func ConvertRunRecords(runs []schema.RunRecord) []RunRow {
	rows := make([]RunRow, len(runs))
	for i, r := range runs {
		row := RunRow{
			RunID:         r.RunID,
			StartTime:     time.UnixMilli(r.StartTime).UTC(),
			RunDurationMs: r.DurationMs,
			RecordCount:   r.RecordCount,
			DomainCount:   r.DomainCount,
			ConfigParams:  r.Params,
		}
		if r.EndTime != nil {
			end := time.UnixMilli(*r.EndTime).UTC()
			row.EndTime = &end
		}
		rows[i] = row
	}
	return rows
}

// ConvertRunScoreRecords converts persisted score rows into Parquet rows.
func ConvertRunScoreRecords(scores []schema.RunScoreRecord) []RunScoreRow {
	rows := make([]RunScoreRow, len(scores))
	for i, s := range scores {
		rows[i] = RunScoreRow(s)
	}
	return rows
}

// WriteRunScoresParquet writes a slice of RunScoreRow structs to a Parquet file.
func WriteRunScoresParquet(data []RunScoreRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[RunScoreRow](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	// Close flushes buffered row groups and writes the file footer.
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// BuildRepoScoreRows converts derived results into Parquet rows, preserving
// order.
func BuildRepoScoreRows(results []schema.RepoResult) []RepoScoreRow {
	rows := make([]RepoScoreRow, len(results))
	for i := range results {
		r := &results[i]
		row := RepoScoreRow{
			GithubURL:        r.GithubURL,
			RepoName:         r.RepoName,
			StarCount:        r.StarCount,
			CodeQuality:      r.CodeQuality,
			Innovativeness:   r.Innovativeness,
			Usefulness:       r.Usefulness,
			UserFriendliness: r.UserFriendliness,
			OverallQuality:   r.OverallQuality,
			ValueScore:       r.ValueScore,
			OverratedScore:   r.OverratedScore,
			PopularityRatio:  r.PopularityRatio,
			Category:         string(r.Category),
			ProjectDomain:    r.ProjectDomain,
		}
		if r.Motivation != "" {
			m := r.Motivation
			row.Motivation = &m
		}
		rows[i] = row
	}
	return rows
}

// WriteRepoScoresParquet writes a slice of RepoScoreRow structs to a Parquet file.
func WriteRepoScoresParquet(data []RepoScoreRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the RepoScoreRow struct tags
	writer := parquet.NewGenericWriter[RepoScoreRow](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	// Close flushes buffered row groups and writes the file footer.
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteRunHistoryParquet writes a slice of RunRow structs to a Parquet file.
func WriteRunHistoryParquet(data []RunRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the RunRow struct tags
	writer := parquet.NewGenericWriter[RunRow](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	// Close flushes buffered row groups and writes the file footer.
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
