package core

import (
	"sort"

	"github.com/repogem/repogem/schema"
)

// RankRepos sorts results by the given metric in descending order and returns
// the top 'limit' entries. Ties keep their original input order, and a limit
// larger than the collection returns everything sorted.
func RankRepos(results []schema.RepoResult, metric schema.RankMetric, limit int) []schema.RepoResult {
	ranked := make([]schema.RepoResult, len(results))
	copy(ranked, results)

	sort.SliceStable(ranked, func(i, j int) bool {
		return MetricValue(&ranked[i], metric) > MetricValue(&ranked[j], metric)
	})
	if len(ranked) > limit {
		return ranked[:limit]
	}
	return ranked
}

// SortByValueDesc returns all results sorted descending by value score, the
// canonical ordering for the full tabular export.
func SortByValueDesc(results []schema.RepoResult) []schema.RepoResult {
	return RankRepos(results, schema.ValueMetric, len(results))
}
