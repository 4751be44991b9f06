package cmd

import (
	"github.com/repogem/repogem/core"
	"github.com/repogem/repogem/internal/contract"
	"github.com/spf13/cobra"
)

// summaryCmd prints aggregate statistics.
var summaryCmd = &cobra.Command{
	Use:   "summary [input-file]",
	Short: "Show aggregate statistics for the collection",
	Long: `Compute aggregate statistics over the derived table:

- Record, domain, underrated and overrated counts
- Mean, median and standard deviation of overall quality
- Mean value score and total star count
- Record frequency per project domain

Examples:
  # Human-readable summary
  repogem summary

  # Summary as JSON for dashboards
  repogem summary --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSummary(cfg, historyStore); err != nil {
			contract.LogFatal("Summary failed", err)
		}
	},
}
