package cmd

import (
	"github.com/repogem/repogem/core"
	"github.com/repogem/repogem/internal/contract"
	"github.com/spf13/cobra"
)

// overratedCmd applies the percentile heuristic.
var overratedCmd = &cobra.Command{
	Use:   "overrated [input-file]",
	Short: "Find repositories with high stars but low quality",
	Long: `Flag repositories whose star count sits above a high percentile of the
collection while their overall quality sits below a low percentile.

Both cutoffs are strict: a repository is flagged only when its stars
exceed the star percentile AND its quality falls below the quality
percentile. Results are printed highest overrated score first.

Defaults: stars above P80, quality below P40.

Examples:
  # Default thresholds
  repogem overrated

  # Stricter star cutoff, looser quality cutoff
  repogem overrated --star-percentile 0.9 --quality-percentile 0.5

  # Machine-readable output
  repogem overrated --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteOverrated(cfg, historyStore); err != nil {
			contract.LogFatal("Overrated filter failed", err)
		}
	},
}
