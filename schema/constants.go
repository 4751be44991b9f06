package schema

// Custom string types for type safety.
type (
	// Category is the derived classification label for a record.
	Category string

	// RankMetric selects the column used for top-N ranking.
	RankMetric string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string
)

// All categories supported. Underrated wins when both flags are set.
const (
	CategoryUnderrated Category = "Underrated"
	CategoryOverrated  Category = "Overrated"
	CategoryNormal     Category = "Normal"
)

// All rank metrics supported.
const (
	ValueMetric     RankMetric = "value" // default
	QualityMetric   RankMetric = "quality"
	OverratedMetric RankMetric = "overrated"
	StarsMetric     RankMetric = "stars"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All history backends supported.
const (
	NoneBackend       DatabaseBackend = "none" // default
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
)

// ValidRankMetrics lists all valid rank metrics.
var ValidRankMetrics = map[RankMetric]struct{}{
	ValueMetric:     {},
	QualityMetric:   {},
	OverratedMetric: {},
	StarsMetric:     {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidHistoryBackends lists all valid history backends.
var ValidHistoryBackends = map[DatabaseBackend]struct{}{
	NoneBackend:       {},
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
}

// Bounds for the four quality sub-scores.
const (
	MinSubScore = 0.0
	MaxSubScore = 10.0
)
