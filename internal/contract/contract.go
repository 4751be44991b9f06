// Package contract holds the validated configuration, error kinds and the
// interfaces shared between the command layer, the pipeline and the stores.
package contract

import (
	"time"

	"github.com/repogem/repogem/schema"
)

// HistoryStore records pipeline runs in a durable backend. A disabled store
// ("none" backend) implements the interface as a no-op so callers never
// branch on configuration.
type HistoryStore interface {
	// BeginRun inserts a run row and returns its ID (0 when tracking is off).
	BeginRun(start time.Time, params map[string]any) (int64, error)

	// RecordScores persists the derived per-repo rows for a run.
	RecordScores(runID int64, results []schema.RepoResult) error

	// EndRun finalizes a run row with its end time and collection counts.
	EndRun(runID int64, end time.Time, recordCount, domainCount int) error

	// GetStatus reports backend, connectivity and row counts.
	GetStatus() (schema.HistoryStatus, error)

	// ListRuns returns all tracked runs, newest first.
	ListRuns() ([]schema.RunRecord, error)

	// ListRunScores returns every persisted score row, ordered by run then repo.
	ListRunScores() ([]schema.RunScoreRecord, error)

	// Clear removes all tracked runs and score rows.
	Clear() error

	// Close releases the underlying connection.
	Close() error
}
