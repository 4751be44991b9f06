package cmd

import (
	"github.com/repogem/repogem/core"
	"github.com/repogem/repogem/internal/contract"
	"github.com/repogem/repogem/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// exportCmd writes the full derived table.
var exportCmd = &cobra.Command{
	Use:   "export [input-file]",
	Short: "Export the full derived table sorted by value score",
	Long: `Derive scores for every record and write the complete table, including
all four quality sub-scores and the classifier motivation text.

Unlike 'rank', export never truncates: every record in the input appears
in the output, sorted descending by value score. The default format is
CSV, which round-trips cleanly into pandas and DuckDB.

Examples:
  # Full CSV to stdout
  repogem export

  # Parquet for analytics tooling
  repogem export --output parquet --output-file scores.parquet

  # JSON for downstream services
  repogem export --output json --output-file scores.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: exportSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(cfg, historyStore); err != nil {
			contract.LogFatal("Export failed", err)
		}
	},
}

// exportSetup runs the shared setup and then switches the output format to
// CSV unless the user picked one explicitly via flag, env or config file.
func exportSetup(cmd *cobra.Command, args []string) error {
	if err := sharedSetup(rootCtx, cmd, args); err != nil {
		return err
	}
	if !viper.IsSet("output") {
		cfg.Output = schema.CSVOut
	}
	return nil
}
