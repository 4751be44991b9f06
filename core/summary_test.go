package core

import (
	"testing"

	"github.com/repogem/repogem/internal/contract"
	"github.com/repogem/repogem/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryFixture() []schema.RepoResult {
	return []schema.RepoResult{
		{
			RepoRecord:     schema.RepoRecord{StarCount: 10, Underrated: true, ProjectDomain: "AI"},
			OverallQuality: 6.0, ValueScore: 2.0,
		},
		{
			RepoRecord:     schema.RepoRecord{StarCount: 20, Overrated: true, ProjectDomain: "AI"},
			OverallQuality: 8.0, ValueScore: 4.0,
		},
		{
			RepoRecord:     schema.RepoRecord{StarCount: 30, ProjectDomain: "CLI"},
			OverallQuality: 7.0, ValueScore: 3.0,
		},
	}
}

// TestSummarize tests aggregate statistics over a derived collection.
func TestSummarize(t *testing.T) {
	t.Run("counts and moments", func(t *testing.T) {
		sum, err := Summarize(summaryFixture())
		require.NoError(t, err)

		assert.Equal(t, 3, sum.RecordCount)
		assert.Equal(t, 2, sum.DomainCount)
		assert.Equal(t, 1, sum.UnderratedCount)
		assert.Equal(t, 1, sum.OverratedCount)
		assert.Equal(t, int64(60), sum.TotalStars)
		assert.InDelta(t, 7.0, sum.MeanQuality, 1e-9)
		assert.InDelta(t, 7.0, sum.MedianQuality, 1e-9)
		assert.InDelta(t, 3.0, sum.MeanValueScore, 1e-9)
		assert.Greater(t, sum.StdDevQuality, 0.0)
	})

	t.Run("empty collection", func(t *testing.T) {
		_, err := Summarize(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, contract.ErrInput)
	})
}

// TestDomainCounts tests the per-domain frequency ordering.
func TestDomainCounts(t *testing.T) {
	results := []schema.RepoResult{
		{RepoRecord: schema.RepoRecord{ProjectDomain: "CLI"}},
		{RepoRecord: schema.RepoRecord{ProjectDomain: "AI"}},
		{RepoRecord: schema.RepoRecord{ProjectDomain: "AI"}},
		{RepoRecord: schema.RepoRecord{ProjectDomain: "Web"}},
	}

	t.Run("most frequent first", func(t *testing.T) {
		counts := DomainCounts(results, 0)
		require.Len(t, counts, 3)
		assert.Equal(t, schema.DomainCount{Domain: "AI", Count: 2}, counts[0])
		// Singleton domains tie-break alphabetically.
		assert.Equal(t, "CLI", counts[1].Domain)
		assert.Equal(t, "Web", counts[2].Domain)
	})

	t.Run("topN truncates", func(t *testing.T) {
		counts := DomainCounts(results, 1)
		require.Len(t, counts, 1)
		assert.Equal(t, "AI", counts[0].Domain)
	})
}
