package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/repogem/repogem/internal/contract"
	"github.com/repogem/repogem/schema"
)

// WriteOverratedResults outputs the repositories flagged by the percentile
// heuristic, dispatching based on the output format configured.
func WriteOverratedResults(results []schema.RepoResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeRankedJSONResults(results, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeOverratedCSVResults(results, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeScoresParquet(results, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeOverratedTable(results, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeOverratedCSVResults writes the flagged rows with the heuristic columns.
func writeOverratedCSVResults(results []schema.RepoResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"rank",
		"repo",
		"github_url",
		"stars",
		"overall_quality",
		"overrated_score",
		"popularity_ratio",
		"category",
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for i := range results {
				r := &results[i]
				rec := []string{
					strconv.Itoa(i + 1),
					r.RepoName,
					r.GithubURL,
					fmt.Sprintf(intFmt, r.StarCount),
					fmtFloat(r.OverallQuality),
					fmtFloat(r.OverratedScore),
					fmtFloat(r.PopularityRatio),
					contract.GetPlainLabel(r.Category),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeOverratedTable generates the human-readable table for flagged rows.
func writeOverratedTable(results []schema.RepoResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	if len(results) == 0 {
		_, err := fmt.Fprintf(writer, "No repositories matched the star %.0f%% / quality %.0f%% percentile filter\n",
			cfg.StarPercentile*100, cfg.QualityPercentile*100)
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Repo", "Stars", "Quality", "Overrated", "Ratio"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for i := range results {
		r := &results[i]
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(r.RepoName, nameWidth),
			fmt.Sprintf(intFmt, r.StarCount),
			fmtFloat(r.OverallQuality),
			fmtFloat(r.OverratedScore),
			fmtFloat(r.PopularityRatio),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Flagged %d repositories (stars above P%.0f, quality below P%.0f)\n",
		len(results), cfg.StarPercentile*100, cfg.QualityPercentile*100); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
