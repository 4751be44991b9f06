package core

import (
	"sort"

	"github.com/repogem/repogem/schema"
)

// Quantile computes the q-th quantile of values with linear interpolation
// between closest ranks: position (n-1)*q in the sorted data, interpolating
// between the neighboring order statistics. This matches the quantile
// semantics the classifier pipeline was tuned against. Returns 0 for empty
// input; q is clamped to [0, 1].
func Quantile(values []float64, q float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	if q < 0 {
		q = 0
	}
	if q > 1 {
		q = 1
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	pos := float64(n-1) * q
	lo := int(pos)
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// PotentiallyOverrated returns the records whose star count exceeds the starQ
// quantile of all star counts AND whose overall quality falls below the
// qualityQ quantile of all qualities. The result preserves input order.
// This is a heuristic over the derived table, independent of the boolean
// classifier flags.
func PotentiallyOverrated(results []schema.RepoResult, starQ, qualityQ float64) []schema.RepoResult {
	if len(results) == 0 {
		return nil
	}

	stars := make([]float64, len(results))
	quals := make([]float64, len(results))
	for i := range results {
		stars[i] = float64(results[i].StarCount)
		quals[i] = results[i].OverallQuality
	}
	starCut := Quantile(stars, starQ)
	qualCut := Quantile(quals, qualityQ)

	var out []schema.RepoResult
	for i := range results {
		if float64(results[i].StarCount) > starCut && results[i].OverallQuality < qualCut {
			out = append(out, results[i])
		}
	}
	return out
}
