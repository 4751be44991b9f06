package contract

import (
	"testing"

	"github.com/repogem/repogem/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validRawInput returns a raw input that passes validation, for tests to mutate.
func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		Input:             "classified_repos.json",
		Limit:             10,
		Metric:            "value",
		Output:            "text",
		Precision:         3,
		Color:             "yes",
		StarPercentile:    0.8,
		QualityPercentile: 0.4,
		HistoryBackend:    "none",
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validRawInput()))

	assert.Equal(t, "classified_repos.json", cfg.InputFile)
	assert.Equal(t, 10, cfg.ResultLimit)
	assert.Equal(t, schema.ValueMetric, cfg.Metric)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.NoneBackend, cfg.HistoryBackend)
	assert.True(t, cfg.UseColors)
	assert.InDelta(t, 0.8, cfg.StarPercentile, 1e-9)
	assert.InDelta(t, 0.4, cfg.QualityPercentile, 1e-9)
}

func TestProcessAndValidatePositionalWins(t *testing.T) {
	cfg := &Config{}
	input := validRawInput()
	input.InputPathStr = "other.json"
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, "other.json", cfg.InputFile)
}

func TestProcessAndValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{name: "zero limit", mutate: func(in *ConfigRawInput) { in.Limit = 0 }},
		{name: "huge limit", mutate: func(in *ConfigRawInput) { in.Limit = MaxResultLimit + 1 }},
		{name: "bad metric", mutate: func(in *ConfigRawInput) { in.Metric = "magic" }},
		{name: "bad output", mutate: func(in *ConfigRawInput) { in.Output = "xml" }},
		{name: "bad color", mutate: func(in *ConfigRawInput) { in.Color = "maybe" }},
		{name: "star percentile too high", mutate: func(in *ConfigRawInput) { in.StarPercentile = 1.0 }},
		{name: "quality percentile negative", mutate: func(in *ConfigRawInput) { in.QualityPercentile = -0.1 }},
		{name: "bad backend", mutate: func(in *ConfigRawInput) { in.HistoryBackend = "oracle" }},
		{name: "mysql without conn", mutate: func(in *ConfigRawInput) { in.HistoryBackend = "mysql" }},
		{name: "postgres bad conn", mutate: func(in *ConfigRawInput) {
			in.HistoryBackend = "postgresql"
			in.HistoryDBConnect = "nonsense"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRawInput()
			tt.mutate(input)
			assert.Error(t, ProcessAndValidate(&Config{}, input))
		})
	}
}

func TestPrecisionClamping(t *testing.T) {
	cfg := &Config{}
	input := validRawInput()
	input.Precision = 0
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, 1, cfg.Precision)

	input.Precision = 12
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, 6, cfg.Precision)
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "root:pw@tcp(localhost:3306)/repogem"))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost port=5432 user=postgres dbname=repogem"))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "postgres://postgres@localhost:5432/repogem"))
	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "localhost:3306"))
}

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "short", TruncateName("short", 10))
	assert.Equal(t, "a-very-...", TruncateName("a-very-long-name", 10))
	// Tiny widths leave the name untouched instead of slicing out of range.
	assert.Equal(t, "abcdef", TruncateName("abcdef", 3))
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, v)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, v)
	}
	_, err := ParseBoolString("sometimes")
	assert.Error(t, err)
}
