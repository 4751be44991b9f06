package core

import (
	"testing"

	"github.com/repogem/repogem/schema"
	"github.com/stretchr/testify/assert"
)

func resultWithScores(name string, value, quality float64, stars int64) schema.RepoResult {
	return schema.RepoResult{
		RepoRecord:     schema.RepoRecord{StarCount: stars},
		RepoName:       name,
		ValueScore:     value,
		OverallQuality: quality,
	}
}

// TestRankRepos tests metric ranking logic.
func TestRankRepos(t *testing.T) {
	results := []schema.RepoResult{
		resultWithScores("low", 1.0, 9.0, 5),
		resultWithScores("high", 9.0, 2.0, 50),
		resultWithScores("medium", 5.0, 5.0, 500),
		resultWithScores("critical", 9.5, 1.0, 5000),
	}

	t.Run("rank and limit", func(t *testing.T) {
		ranked := RankRepos(results, schema.ValueMetric, 2)
		assert.Equal(t, 2, len(ranked))
		assert.Equal(t, "critical", ranked[0].RepoName)
		assert.Equal(t, "high", ranked[1].RepoName)
	})

	t.Run("limit exceeds length", func(t *testing.T) {
		ranked := RankRepos(results, schema.ValueMetric, 10)
		assert.Equal(t, 4, len(ranked))
	})

	t.Run("alternate metric", func(t *testing.T) {
		ranked := RankRepos(results, schema.StarsMetric, 10)
		assert.Equal(t, "critical", ranked[0].RepoName)
		assert.Equal(t, "low", ranked[3].RepoName)
	})

	t.Run("ties keep input order", func(t *testing.T) {
		tied := []schema.RepoResult{
			resultWithScores("first", 3.0, 0, 0),
			resultWithScores("second", 3.0, 0, 0),
			resultWithScores("third", 3.0, 0, 0),
		}
		ranked := RankRepos(tied, schema.ValueMetric, 3)
		assert.Equal(t, "first", ranked[0].RepoName)
		assert.Equal(t, "second", ranked[1].RepoName)
		assert.Equal(t, "third", ranked[2].RepoName)
	})

	t.Run("input untouched", func(t *testing.T) {
		_ = RankRepos(results, schema.ValueMetric, 2)
		assert.Equal(t, "low", results[0].RepoName)
	})
}

// TestSortByValueDesc tests the canonical export ordering.
func TestSortByValueDesc(t *testing.T) {
	results := []schema.RepoResult{
		resultWithScores("b", 2.0, 0, 0),
		resultWithScores("a", 8.0, 0, 0),
	}
	sorted := SortByValueDesc(results)
	assert.Equal(t, 2, len(sorted))
	assert.Equal(t, "a", sorted[0].RepoName)
	assert.Equal(t, "b", sorted[1].RepoName)
}
