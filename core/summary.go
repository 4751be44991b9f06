package core

import (
	"fmt"
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/repogem/repogem/internal/contract"
	"github.com/repogem/repogem/schema"
)

// Summarize computes the aggregate statistics over a derived record collection.
func Summarize(results []schema.RepoResult) (schema.Summary, error) {
	var sum schema.Summary
	if len(results) == 0 {
		return sum, fmt.Errorf("%w: cannot summarize an empty collection", contract.ErrInput)
	}

	domains := make(map[string]struct{})
	quals := make([]float64, 0, len(results))
	values := make([]float64, 0, len(results))
	for i := range results {
		r := &results[i]
		domains[r.ProjectDomain] = struct{}{}
		quals = append(quals, r.OverallQuality)
		values = append(values, r.ValueScore)
		if r.Underrated.Bool() {
			sum.UnderratedCount++
		}
		if r.Overrated.Bool() {
			sum.OverratedCount++
		}
		sum.TotalStars += r.StarCount
	}

	meanQ, err := stats.Mean(quals)
	if err != nil {
		return sum, fmt.Errorf("%w: mean quality: %v", contract.ErrComputation, err)
	}
	medianQ, err := stats.Median(quals)
	if err != nil {
		return sum, fmt.Errorf("%w: median quality: %v", contract.ErrComputation, err)
	}
	stdQ, err := stats.StandardDeviation(quals)
	if err != nil {
		return sum, fmt.Errorf("%w: stddev quality: %v", contract.ErrComputation, err)
	}
	meanV, err := stats.Mean(values)
	if err != nil {
		return sum, fmt.Errorf("%w: mean value score: %v", contract.ErrComputation, err)
	}

	sum.RecordCount = len(results)
	sum.DomainCount = len(domains)
	sum.MeanQuality = meanQ
	sum.MedianQuality = medianQ
	sum.StdDevQuality = stdQ
	sum.MeanValueScore = meanV
	return sum, nil
}

// DomainCounts returns the per-domain record frequencies, most frequent first,
// with alphabetical tie-break. A topN <= 0 returns all domains.
func DomainCounts(results []schema.RepoResult, topN int) []schema.DomainCount {
	counts := make(map[string]int)
	for i := range results {
		counts[results[i].ProjectDomain]++
	}

	out := make([]schema.DomainCount, 0, len(counts))
	for domain, count := range counts {
		out = append(out, schema.DomainCount{Domain: domain, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Domain < out[j].Domain
	})

	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}
