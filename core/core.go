// Package core has core logic for loading, scoring, ranking and filtering
// repository records.
package core

import (
	"time"

	"github.com/repogem/repogem/internal/contract"
	"github.com/repogem/repogem/internal/outwriter"
	"github.com/repogem/repogem/schema"
)

// ExecutorFunc defines the function signature for executing pipeline commands.
type ExecutorFunc func(cfg *contract.Config, store contract.HistoryStore) error

// runPipelineCore performs the common Load, Derive and Tracking steps shared
// by every command that consumes the classified input file.
func runPipelineCore(cfg *contract.Config, store contract.HistoryStore) ([]schema.RepoResult, error) {
	// --- 0. Begin Run Tracking (if configured) ---
	var runID int64
	if store != nil {
		startTime := time.Now()
		runParams := map[string]any{
			"input":        cfg.InputFile,
			"metric":       string(cfg.Metric),
			"result_limit": cfg.ResultLimit,
			"output":       string(cfg.Output),
		}
		var err error
		runID, err = store.BeginRun(startTime, runParams)
		if err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
			runID = 0
		}
	}

	// --- 1. Ingestion Phase ---
	records, err := LoadRecords(cfg.InputFile)
	if err != nil {
		return nil, err
	}

	// --- 2. Derivation Phase ---
	results, err := DeriveAll(records)
	if err != nil {
		return nil, err
	}

	// --- 3. End Run Tracking ---
	if store != nil && runID > 0 {
		if err := store.RecordScores(runID, results); err != nil {
			contract.LogWarn("Failed to record run scores", err)
		}
		domainCount := len(DomainCounts(results, 0))
		if err := store.EndRun(runID, time.Now(), len(results), domainCount); err != nil {
			contract.LogWarn("Failed to finalize run tracking", err)
		}
	}

	return results, nil
}

// GetRankedResults runs the pipeline and returns the top results by the
// configured metric. Shared by the rank command and the MCP server.
func GetRankedResults(cfg *contract.Config, store contract.HistoryStore) ([]schema.RepoResult, error) {
	results, err := runPipelineCore(cfg, store)
	if err != nil {
		return nil, err
	}
	return RankRepos(results, cfg.Metric, cfg.ResultLimit), nil
}

// GetOverratedResults runs the pipeline and returns the records flagged by
// the percentile heuristic, highest overrated score first.
func GetOverratedResults(cfg *contract.Config, store contract.HistoryStore) ([]schema.RepoResult, error) {
	results, err := runPipelineCore(cfg, store)
	if err != nil {
		return nil, err
	}
	flagged := PotentiallyOverrated(results, cfg.StarPercentile, cfg.QualityPercentile)
	return RankRepos(flagged, schema.OverratedMetric, len(flagged)), nil
}

// GetSummaryResults runs the pipeline and returns the aggregate statistics
// with domain frequencies.
func GetSummaryResults(cfg *contract.Config, store contract.HistoryStore) (schema.Summary, []schema.DomainCount, error) {
	results, err := runPipelineCore(cfg, store)
	if err != nil {
		return schema.Summary{}, nil, err
	}
	summary, err := Summarize(results)
	if err != nil {
		return schema.Summary{}, nil, err
	}
	return summary, DomainCounts(results, 0), nil
}

// ExecuteRank derives the collection, ranks it by the configured metric and
// writes the top results. It serves as the main entry point for 'rank'.
func ExecuteRank(cfg *contract.Config, store contract.HistoryStore) error {
	start := time.Now()
	ranked, err := GetRankedResults(cfg, store)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.WriteRankedResults(ranked, cfg, duration)
}

// ExecuteExport writes the full derived table, sorted descending by value
// score, in the configured output format.
func ExecuteExport(cfg *contract.Config, store contract.HistoryStore) error {
	start := time.Now()
	results, err := runPipelineCore(cfg, store)
	if err != nil {
		return err
	}
	sorted := SortByValueDesc(results)
	duration := time.Since(start)
	return outwriter.WriteExportResults(sorted, cfg, duration)
}

// ExecuteOverrated applies the percentile heuristic over the derived table
// and writes the records it flags, highest overrated score first.
func ExecuteOverrated(cfg *contract.Config, store contract.HistoryStore) error {
	start := time.Now()
	ranked, err := GetOverratedResults(cfg, store)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.WriteOverratedResults(ranked, cfg, duration)
}

// ExecuteSummary computes aggregate statistics plus domain frequencies and
// writes them in the configured output format.
func ExecuteSummary(cfg *contract.Config, store contract.HistoryStore) error {
	start := time.Now()
	summary, domains, err := GetSummaryResults(cfg, store)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.WriteSummaryResults(summary, domains, cfg, duration)
}

// ExecuteReport renders the standalone HTML report over the full collection.
func ExecuteReport(cfg *contract.Config, store contract.HistoryStore) error {
	results, err := runPipelineCore(cfg, store)
	if err != nil {
		return err
	}
	summary, err := Summarize(results)
	if err != nil {
		return err
	}
	sorted := SortByValueDesc(results)
	flagged := PotentiallyOverrated(results, cfg.StarPercentile, cfg.QualityPercentile)
	flagged = RankRepos(flagged, schema.OverratedMetric, len(flagged))
	return outwriter.WriteReport(sorted, flagged, summary, cfg)
}

// ExecuteCharts renders the interactive HTML chart pages over the full
// collection.
func ExecuteCharts(cfg *contract.Config, store contract.HistoryStore) error {
	results, err := runPipelineCore(cfg, store)
	if err != nil {
		return err
	}
	domains := DomainCounts(results, 10)
	return outwriter.WriteCharts(SortByValueDesc(results), domains, cfg)
}
