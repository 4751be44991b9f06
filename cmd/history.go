package cmd

import (
	"fmt"

	"github.com/repogem/repogem/internal/contract"
	"github.com/repogem/repogem/internal/histdb"
	"github.com/repogem/repogem/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historySetup loads minimal configuration needed for history operations.
// This is used by commands that need history access without full shared setup.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backendStr := viper.GetString("history-backend")
	connStr := viper.GetString("history-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize the store with the loaded config
	store, err := histdb.NewHistoryStore(backend, connStr)
	if err != nil {
		return fmt.Errorf("failed to initialize history store: %w", err)
	}
	historyStore = store

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize the store or create
// tables, allowing migrations to run on a fresh database.
func historyMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backendStr := viper.GetString("history-backend")
	connStr := viper.GetString("history-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetHistoryDBFilePath()
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historyMigrateSetupWrapper wraps historyMigrateSetup to provide PreRunE for migrate command.
func historyMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyMigrateSetup()
}

// historyCmd focused on run history management.
//
// Note: History subcommands use minimal initialization (historySetup) instead
// of the full sharedSetup used by pipeline commands. This avoids input file
// validation and complex config processing for simple store operations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage run history tracking and exports",
	Long: `Manage historical run data used for trend tracking and reporting.

When enabled, repogem tracks every pipeline run, storing:
- Run metadata (timestamps, configuration, duration)
- Derived scores for every record in the run

This enables longitudinal analysis of a collection as it is re-classified
over time, and data export for BI tools.

Supported backends: SQLite, MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show run history statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all run history data
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  repogem history status --history-backend sqlite

  # Export for analysis in pandas/DuckDB
  repogem history export --history-backend sqlite --output-file history-data.parquet`,
}

// historyStatusCmd shows history store status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run history statistics and connection details",
	Long: `Show detailed information about run history tracking.

Displays:
- Backend type and connection status
- Total number of runs stored
- Total score rows across all runs
- Last run timestamp

Use this to:
- Verify run tracking is enabled and working
- Monitor data accumulation over time
- Check database connection health

Examples:
  # Check run history status
  repogem history status --history-backend sqlite`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := historyStore.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		histdb.PrintHistoryStatus(status)
	},
}

// historyClearCmd clears the run history data.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all run history data",
	Long: `Delete all stored runs and their score history.

This removes:
- All run metadata
- Historical score rows for every tracked run

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  repogem history export --history-backend sqlite --output-file backup.parquet
  repogem history clear --history-backend sqlite`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := historyStore.Clear(); err != nil {
			contract.LogFatal("Failed to clear run history", err)
		}
		fmt.Println("Run history cleared successfully.")
	},
}

// historyExportCmd exports run history to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export run history to Parquet for BI tools and analytics",
	Long: `Export all stored run history to Parquet format for use with analytics tools.

Exports two datasets:
- Runs - metadata about each pipeline execution
- Run scores - derived scores per record per run

Requires: --output-file parameter

Examples:
  # Export all data
  repogem history export --history-backend sqlite --output-file repogem-data.parquet

  # Use with DuckDB for analysis
  repogem history export --history-backend sqlite --output-file data.parquet
  duckdb -c "SELECT * FROM read_parquet('data.parquet.runs.parquet') LIMIT 10"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := histdb.ExecuteHistoryExport(historyStore, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export run history", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run history store.

By default, migrates to the latest version. Use --target-version for
specific versions.

Examples:
  # Migrate to latest version (default)
  repogem history migrate --history-backend sqlite

  # Migrate to specific version
  repogem history migrate --history-backend sqlite --target-version 1

  # Rollback to initial state
  repogem history migrate --history-backend sqlite --target-version 0`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := histdb.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
