package cmd

import (
	"github.com/repogem/repogem/core"
	"github.com/repogem/repogem/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd renders the standalone HTML report.
var reportCmd = &cobra.Command{
	Use:   "report [input-file]",
	Short: "Render a standalone HTML report of the collection",
	Long: `Render a self-contained HTML report with summary statistics, the top
repositories by value score, and the flagged underrated and overrated
lists with their classifier motivations.

The report is a single file with no external assets, suitable for
sharing or publishing as-is. It is written to <out-dir>/repo_report.html.

Examples:
  # Report in the current directory
  repogem report

  # Report in a dedicated output directory
  repogem report --out-dir build/reports`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(cfg, historyStore); err != nil {
			contract.LogFatal("Report generation failed", err)
		}
	},
}
