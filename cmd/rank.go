package cmd

import (
	"github.com/repogem/repogem/core"
	"github.com/repogem/repogem/internal/contract"
	"github.com/spf13/cobra"
)

// rankCmd ranks the collection by a derived metric.
var rankCmd = &cobra.Command{
	Use:   "rank [input-file]",
	Short: "Rank repositories by value, quality, overrated score or stars",
	Long: `Derive scores for every pre-classified repository and print the top results.

The default metric is 'value', which rewards high quality relative to
popularity. Hidden gems rise to the top; household names sink.

Available metrics:
  value     - quality divided by log-scaled stars (find hidden gems)
  quality   - mean of the four quality sub-scores
  overrated - log-scaled stars divided by quality (find inflated repos)
  stars     - raw star count

Examples:
  # Top 10 hidden gems from the default input
  repogem rank

  # Top 25 by overall quality
  repogem rank --metric quality --limit 25

  # Rank a specific collection as JSON
  repogem rank path/to/classified_repos.json --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRank(cfg, historyStore); err != nil {
			contract.LogFatal("Ranking failed", err)
		}
	},
}
