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

// summaryRenderModel bundles the aggregate statistics with the domain
// frequencies for JSON output.
type summaryRenderModel struct {
	Summary schema.Summary       `json:"summary"`
	Domains []schema.DomainCount `json:"domains"`
}

// WriteSummaryResults outputs the aggregate statistics, dispatching based on
// the output format configured. Parquet is not supported here since the
// summary is a single row of mixed shapes, not a table.
func WriteSummaryResults(summary schema.Summary, domains []schema.DomainCount, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summaryRenderModel{Summary: summary, Domains: domains})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryCSV(w, summary, domains, fmtFloat, intFmt)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("%w: summary does not support parquet output", contract.ErrOutput)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryTable(w, summary, domains, cfg, fmtFloat, intFmt, duration)
		}, "Wrote table")
	}
}

// writeSummaryCSV writes the statistics as stat,value rows followed by
// domain,count rows.
func writeSummaryCSV(w io.Writer, summary schema.Summary, domains []schema.DomainCount, fmtFloat func(float64) string, intFmt string) error {
	return writeCSVWithHeader(w, []string{"stat", "value"}, func(csvWriter *csv.Writer) error {
		rows := [][]string{
			{"record_count", strconv.Itoa(summary.RecordCount)},
			{"domain_count", strconv.Itoa(summary.DomainCount)},
			{"underrated_count", strconv.Itoa(summary.UnderratedCount)},
			{"overrated_count", strconv.Itoa(summary.OverratedCount)},
			{"total_stars", fmt.Sprintf(intFmt, summary.TotalStars)},
			{"mean_quality", fmtFloat(summary.MeanQuality)},
			{"median_quality", fmtFloat(summary.MedianQuality)},
			{"stddev_quality", fmtFloat(summary.StdDevQuality)},
			{"mean_value_score", fmtFloat(summary.MeanValueScore)},
		}
		for _, d := range domains {
			rows = append(rows, []string{"domain:" + d.Domain, strconv.Itoa(d.Count)})
		}
		for _, row := range rows {
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeSummaryTable writes the human-readable statistics block followed by the
// domain frequency table.
func writeSummaryTable(w io.Writer, summary schema.Summary, domains []schema.DomainCount, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration) error {
	if _, err := fmt.Fprintf(w, "Collection: %d repositories across %d domains (%s total stars)\n",
		summary.RecordCount, summary.DomainCount, fmt.Sprintf(intFmt, summary.TotalStars)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Flags: %d underrated, %d overrated\n",
		summary.UnderratedCount, summary.OverratedCount); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Quality: mean %s, median %s, stddev %s\n",
		fmtFloat(summary.MeanQuality), fmtFloat(summary.MedianQuality), fmtFloat(summary.StdDevQuality)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Value score: mean %s\n\n", fmtFloat(summary.MeanValueScore)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Domain", "Repos"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})
	var data [][]string
	for _, d := range domains {
		data = append(data, []string{d.Domain, strconv.Itoa(d.Count)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
