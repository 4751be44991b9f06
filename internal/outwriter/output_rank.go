package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/repogem/repogem/internal/contract"
	"github.com/repogem/repogem/internal/parquet"
	"github.com/repogem/repogem/schema"
)

// WriteRankedResults outputs the ranked repositories, dispatching based on the
// output format configured.
func WriteRankedResults(results []schema.RepoResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeRankedJSONResults(results, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRankedCSVResults(results, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeScoresParquet(results, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankedTable(results, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeRankedJSONResults handles opening the file and calling the JSON writer.
func writeRankedJSONResults(results []schema.RepoResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, buildRankedJSON(results))
	}, "Wrote JSON")
}

// writeRankedCSVResults handles opening the file and calling the CSV writer.
func writeRankedCSVResults(results []schema.RepoResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"rank",
		"repo",
		"github_url",
		"stars",
		"overall_quality",
		"value_score",
		"overrated_score",
		"popularity_ratio",
		"category",
		"project_domain",
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for i := range results {
				r := &results[i]
				rec := []string{
					strconv.Itoa(i + 1),                  // Rank
					r.RepoName,                           // Repo
					r.GithubURL,                          // URL
					fmt.Sprintf(intFmt, r.StarCount),     // Stars
					fmtFloat(r.OverallQuality),           // Quality
					fmtFloat(r.ValueScore),               // Value
					fmtFloat(r.OverratedScore),           // Overrated
					fmtFloat(r.PopularityRatio),          // Popularity ratio
					contract.GetPlainLabel(r.Category),   // Category
					r.ProjectDomain,                      // Domain
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeScoresParquet writes the derived score rows to a Parquet file.
// Parquet is a binary format, so a file path is required.
func writeScoresParquet(results []schema.RepoResult, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("%w: parquet output requires --output-file", contract.ErrOutput)
	}
	rows := parquet.BuildRepoScoreRows(results)
	if err := parquet.WriteRepoScoresParquet(rows, cfg.OutputFile); err != nil {
		return fmt.Errorf("%w: %v", contract.ErrOutput, err)
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}

// writeRankedTable generates and writes the human-readable table.
func writeRankedTable(results []schema.RepoResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	table.Header([]string{"Rank", "Repo", "Stars", "Quality", "Value", "Overrated", "Category"})

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	var totalStars int64
	for i := range results {
		r := &results[i]
		totalStars += r.StarCount
		data = append(data, []string{
			strconv.Itoa(i + 1),                          // Rank
			contract.TruncateName(r.RepoName, nameWidth), // Repo
			fmt.Sprintf(intFmt, r.StarCount),             // Stars
			fmtFloat(r.OverallQuality),                   // Quality
			fmtFloat(r.ValueScore),                       // Value
			fmtFloat(r.OverratedScore),                   // Overrated
			categoryLabel(r.Category, cfg),               // Category
		})
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing top %d repositories by %s (total stars: %d)\n", len(results), cfg.Metric, totalStars); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
