// Package schema has models, constants and helpers for all parts of repogem.
package schema

// RepoRecord is a single pre-classified repository entry as it appears in the
// input collection. Quality sub-scores are bounded ratings assigned upstream;
// the underrated/overrated flags come from the upstream classifier.
type RepoRecord struct {
	GithubURL        string  `json:"github_url"`
	StarCount        int64   `json:"star_count"`
	CodeQuality      float64 `json:"code_quality"`
	Innovativeness   float64 `json:"innovativeness"`
	Usefulness       float64 `json:"usefulness"`
	UserFriendliness float64 `json:"user_friendliness"`
	Underrated       Flag    `json:"underrated"`
	Overrated        Flag    `json:"overrated"`
	Motivation       string  `json:"motivation"`
	ProjectDomain    string  `json:"project_domain"`
}

// RepoResult is a RepoRecord annotated with every derived field. Results keep
// their original input position so that ranking can break ties deterministically.
type RepoResult struct {
	RepoRecord

	RepoName        string   `json:"repo_name"`
	ShortName       string   `json:"short_name"`
	OverallQuality  float64  `json:"overall_quality"`
	ValueScore      float64  `json:"value_score"`
	OverratedScore  float64  `json:"overrated_score"`
	PopularityRatio float64  `json:"popularity_ratio"`
	Category        Category `json:"category"`

	// InputIndex is the zero-based position of the record in the input file.
	InputIndex int `json:"-"`
}

// Summary holds the aggregate statistics for a record collection.
type Summary struct {
	RecordCount     int     `json:"record_count"`
	DomainCount     int     `json:"domain_count"`
	UnderratedCount int     `json:"underrated_count"`
	OverratedCount  int     `json:"overrated_count"`
	MeanQuality     float64 `json:"mean_quality"`
	MedianQuality   float64 `json:"median_quality"`
	StdDevQuality   float64 `json:"stddev_quality"`
	MeanValueScore  float64 `json:"mean_value_score"`
	TotalStars      int64   `json:"total_stars"`
}

// DomainCount pairs a project domain with its record count for frequency views.
type DomainCount struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

// RunRecord describes one tracked pipeline run in the history store.
type RunRecord struct {
	RunID       int64   `json:"run_id"`
	StartTime   int64   `json:"start_time"`
	EndTime     *int64  `json:"end_time"`
	DurationMs  *int64  `json:"duration_ms"`
	RecordCount int32   `json:"record_count"`
	DomainCount int32   `json:"domain_count"`
	Params      *string `json:"params"`
}

// RunScoreRecord is one persisted score row from a tracked pipeline run.
type RunScoreRecord struct {
	RunID          int64   `json:"run_id"`
	RepoName       string  `json:"repo_name"`
	GithubURL      string  `json:"github_url"`
	StarCount      int64   `json:"star_count"`
	OverallQuality float64 `json:"overall_quality"`
	ValueScore     float64 `json:"value_score"`
	OverratedScore float64 `json:"overrated_score"`
	Category       string  `json:"category"`
	ProjectDomain  string  `json:"project_domain"`
}

// HistoryStatus reports the state of the history store for the status command.
type HistoryStatus struct {
	Backend    string `json:"backend"`
	Connected  bool   `json:"connected"`
	TotalRuns  int64  `json:"total_runs"`
	TotalRows  int64  `json:"total_rows"`
	LastRunUTC string `json:"last_run_utc,omitempty"`
}
