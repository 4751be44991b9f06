package cmd

import (
	"github.com/repogem/repogem/core"
	"github.com/repogem/repogem/internal/contract"
	"github.com/spf13/cobra"
)

// chartsCmd renders the interactive chart page.
var chartsCmd = &cobra.Command{
	Use:   "charts [input-file]",
	Short: "Render interactive HTML charts of the collection",
	Long: `Render an interactive chart page over the derived table:

- Stars vs quality scatter on a logarithmic star axis, colored by category
- Value score histogram
- Record counts for the top project domains

The page is written to <out-dir>/repo_charts.html and renders offline in
any browser.

Examples:
  # Charts in the current directory
  repogem charts

  # Charts next to the report
  repogem charts --out-dir build/reports`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCharts(cfg, historyStore); err != nil {
			contract.LogFatal("Chart generation failed", err)
		}
	},
}
