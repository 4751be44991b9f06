package contract

import (
	"fmt"
	"strings"

	"github.com/repogem/repogem/schema"
)

// Default values for configuration.
const (
	DefaultInputFile      = "classified_repos.json"
	DefaultResultLimit    = 10
	MaxResultLimit        = 1000
	DefaultPrecision      = 3
	DefaultOutDir         = "."
	DefaultStarPercentile = 0.8
	DefaultQualityPctile  = 0.4
)

// Config holds the runtime configuration for the pipeline.
// This struct remains the "final, validated" config.
type Config struct {
	InputFile   string
	ResultLimit int
	Metric      schema.RankMetric
	Output      schema.OutputMode
	OutputFile  string
	OutDir      string
	Precision   int
	Width       int // Terminal width override (0 = auto-detect)
	UseColors   bool

	StarPercentile    float64
	QualityPercentile float64

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputPathStr string

	Input             string  `mapstructure:"input"`
	Limit             int     `mapstructure:"limit"`
	Metric            string  `mapstructure:"metric"`
	Output            string  `mapstructure:"output"`
	OutputFile        string  `mapstructure:"output-file"`
	OutDir            string  `mapstructure:"out-dir"`
	Precision         int     `mapstructure:"precision"`
	Width             int     `mapstructure:"width"`
	Color             string  `mapstructure:"color"`
	StarPercentile    float64 `mapstructure:"star-percentile"`
	QualityPercentile float64 `mapstructure:"quality-percentile"`
	HistoryBackend    string  `mapstructure:"history-backend"`
	HistoryDBConnect  string  `mapstructure:"history-db-connect"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs and
// populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validatePercentiles(cfg, input); err != nil {
		return err
	}
	if err := validateHistoryBackend(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs resolves the scalar options that need only range checks.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// Positional arg wins over --input which wins over the default.
	cfg.InputFile = input.Input
	if input.InputPathStr != "" {
		cfg.InputFile = input.InputPathStr
	}
	if cfg.InputFile == "" {
		cfg.InputFile = DefaultInputFile
	}

	if input.Limit < 1 {
		return fmt.Errorf("limit must be at least 1, got %d", input.Limit)
	}
	if input.Limit > MaxResultLimit {
		return fmt.Errorf("limit cannot exceed %d, got %d", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	metric := schema.RankMetric(strings.ToLower(input.Metric))
	if _, ok := schema.ValidRankMetrics[metric]; !ok {
		return fmt.Errorf("invalid metric %q. Must be value, quality, overrated or stars", input.Metric)
	}
	cfg.Metric = metric

	output := schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output %q. Must be text, csv, json or parquet", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	cfg.OutDir = input.OutDir
	if cfg.OutDir == "" {
		cfg.OutDir = DefaultOutDir
	}

	cfg.Precision = input.Precision
	if cfg.Precision < 1 {
		cfg.Precision = 1
	}
	if cfg.Precision > 6 {
		cfg.Precision = 6
	}

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative, got %d", input.Width)
	}
	cfg.Width = input.Width

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color option: %w", err)
	}
	cfg.UseColors = useColors

	return nil
}

// validatePercentiles checks the thresholds for the overrated heuristic.
func validatePercentiles(cfg *Config, input *ConfigRawInput) error {
	if input.StarPercentile <= 0 || input.StarPercentile >= 1 {
		return fmt.Errorf("star-percentile must be in (0, 1), got %g", input.StarPercentile)
	}
	if input.QualityPercentile <= 0 || input.QualityPercentile >= 1 {
		return fmt.Errorf("quality-percentile must be in (0, 1), got %g", input.QualityPercentile)
	}
	cfg.StarPercentile = input.StarPercentile
	cfg.QualityPercentile = input.QualityPercentile
	return nil
}

// validateHistoryBackend checks the history backend and its connection string.
func validateHistoryBackend(cfg *Config, input *ConfigRawInput) error {
	backend := schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if backend == "" {
		backend = schema.NoneBackend
	}
	if _, ok := schema.ValidHistoryBackends[backend]; !ok {
		return fmt.Errorf("invalid history backend %q. Must be none, sqlite, mysql or postgresql", input.HistoryBackend)
	}
	if err := ValidateDatabaseConnectionString(backend, input.HistoryDBConnect); err != nil {
		return err
	}
	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = input.HistoryDBConnect
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("invalid MySQL connection string. Expected format: user:password@tcp(host:port)/dbname")
		}
		return nil
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") && !strings.HasPrefix(connStr, "postgres://") {
			return fmt.Errorf("invalid PostgreSQL connection string. Expected key=value pairs or a postgres:// URL")
		}
		return nil
	default:
		return fmt.Errorf("unsupported backend: %s", backend)
	}
}
