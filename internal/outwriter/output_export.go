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

// WriteExportResults outputs the full derived table, dispatching based on the
// output format configured. Unlike the ranked view this carries every input
// and derived column so downstream tools get a lossless export.
func WriteExportResults(results []schema.RepoResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeRankedJSONResults(results, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeScoresParquet(results, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	case schema.TextOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeExportTable(results, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	default:
		// Default to CSV, the canonical export format
		if err := writeExportCSVResults(results, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	}
	return nil
}

// writeExportCSVResults writes the lossless CSV with all columns.
func writeExportCSVResults(results []schema.RepoResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"rank",
		"repo",
		"github_url",
		"stars",
		"code_quality",
		"innovativeness",
		"usefulness",
		"user_friendliness",
		"overall_quality",
		"value_score",
		"overrated_score",
		"popularity_ratio",
		"category",
		"project_domain",
		"motivation",
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
					fmtFloat(r.CodeQuality),
					fmtFloat(r.Innovativeness),
					fmtFloat(r.Usefulness),
					fmtFloat(r.UserFriendliness),
					fmtFloat(r.OverallQuality),
					fmtFloat(r.ValueScore),
					fmtFloat(r.OverratedScore),
					fmtFloat(r.PopularityRatio),
					contract.GetPlainLabel(r.Category),
					r.ProjectDomain,
					r.Motivation,
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeExportTable generates the human-readable variant of the full table.
// Sub-scores are collapsed into the overall quality column to keep the table
// readable on narrow terminals.
func writeExportTable(results []schema.RepoResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Repo", "Stars", "Quality", "Value", "Overrated", "Category", "Domain"})
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
			fmtFloat(r.ValueScore),
			fmtFloat(r.OverratedScore),
			categoryLabel(r.Category, cfg),
			r.ProjectDomain,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Exported %d repositories sorted by value score\n", len(results)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
