package histdb

import (
	"errors"
	"fmt"

	"github.com/repogem/repogem/internal/contract"
	"github.com/repogem/repogem/internal/parquet"
)

// ExecuteHistoryExport exports the tracked run history to Parquet files.
// Two files are written: <output-file>.runs.parquet and
// <output-file>.run_scores.parquet.
func ExecuteHistoryExport(store contract.HistoryStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)
	fmt.Printf("Total score rows: %d\n", status.TotalRows)

	runs, err := store.ListRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}
	scores, err := store.ListRunScores()
	if err != nil {
		return fmt.Errorf("failed to retrieve run scores: %w", err)
	}

	runRows := parquet.ConvertRunRecords(runs)
	scoreRows := parquet.ConvertRunScoreRecords(scores)

	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRunHistoryParquet(runRows, runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(runRows), runsFile)

	scoresFile := outputFile + ".run_scores.parquet"
	if err := parquet.WriteRunScoresParquet(scoreRows, scoresFile); err != nil {
		return fmt.Errorf("failed to write run scores: %w", err)
	}
	fmt.Printf("Exported %d score rows to: %s\n", len(scoreRows), scoresFile)

	return nil
}
