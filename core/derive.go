package core

import (
	"fmt"
	"math"

	"github.com/repogem/repogem/internal/contract"
	"github.com/repogem/repogem/schema"
)

// shortNameRunes caps the short display name used in chart and table labels.
const shortNameRunes = 20

// popularityOffset is added to the star count before taking log10 so the
// denominator stays defined and positive for any non-negative star count.
const popularityOffset = 10.0

// logPopularity returns log10(star_count + 10), the popularity normalizer
// shared by the value and overrated scores.
func logPopularity(stars int64) float64 {
	return math.Log10(float64(stars) + popularityOffset)
}

// DeriveRecord computes every derived field for a single record.
// Derivation is pure and total except for out-of-range inputs, which are
// computation errors: values are never silently coerced.
func DeriveRecord(rec schema.RepoRecord, idx int) (schema.RepoResult, error) {
	var res schema.RepoResult

	if rec.StarCount < 0 {
		return res, fmt.Errorf("%w: record %d has negative star_count %d", contract.ErrComputation, idx, rec.StarCount)
	}
	subs := map[string]float64{
		"code_quality":      rec.CodeQuality,
		"innovativeness":    rec.Innovativeness,
		"usefulness":        rec.Usefulness,
		"user_friendliness": rec.UserFriendliness,
	}
	for _, name := range []string{"code_quality", "innovativeness", "usefulness", "user_friendliness"} {
		v := subs[name]
		if math.IsNaN(v) || v < schema.MinSubScore || v > schema.MaxSubScore {
			return res, fmt.Errorf("%w: record %d has %s=%g outside [%g, %g]",
				contract.ErrComputation, idx, name, v, schema.MinSubScore, schema.MaxSubScore)
		}
	}

	overall := (rec.CodeQuality + rec.Innovativeness + rec.Usefulness + rec.UserFriendliness) / 4.0
	if overall == 0 {
		return res, fmt.Errorf("%w: record %d has zero overall quality; value and overrated scores are undefined", contract.ErrComputation, idx)
	}

	logPop := logPopularity(rec.StarCount)
	repoName := schema.ExtractRepoName(rec.GithubURL)

	res = schema.RepoResult{
		RepoRecord:      rec,
		RepoName:        repoName,
		ShortName:       schema.ShortName(repoName, shortNameRunes),
		OverallQuality:  overall,
		ValueScore:      overall / logPop,
		OverratedScore:  logPop / overall,
		PopularityRatio: float64(rec.StarCount) / (overall * overall),
		Category:        schema.CategoryFor(rec.Underrated, rec.Overrated),
		InputIndex:      idx,
	}
	return res, nil
}

// DeriveAll annotates every record in input order. Any underivable record
// aborts the whole run so reports are all-or-nothing.
func DeriveAll(records []schema.RepoRecord) ([]schema.RepoResult, error) {
	results := make([]schema.RepoResult, 0, len(records))
	for i, rec := range records {
		res, err := DeriveRecord(rec, i)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// MetricValue extracts the ranking column for a result.
func MetricValue(r *schema.RepoResult, metric schema.RankMetric) float64 {
	switch metric {
	case schema.QualityMetric:
		return r.OverallQuality
	case schema.OverratedMetric:
		return r.OverratedScore
	case schema.StarsMetric:
		return float64(r.StarCount)
	default: // ValueMetric
		return r.ValueScore
	}
}
