package outwriter

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/repogem/repogem/internal/contract"
	"github.com/repogem/repogem/schema"
)

//go:embed templates/report.html.tmpl
var reportFS embed.FS

// ReportFileName is the report artifact written into the output directory.
const ReportFileName = "repo_report.html"

// reportTopCount caps the undervalued table to keep the page scannable.
const reportTopCount = 20

// reportRow is one row of the undervalued picks table.
type reportRow struct {
	Rank       int
	RepoName   string
	GithubURL  string
	Stars      int64
	Quality    string
	Value      string
	Category   schema.Category
	Domain     string
	Motivation string
}

// reportModel is the render model for the HTML report template.
type reportModel struct {
	GeneratedAt     string
	RecordCount     int
	DomainCount     int
	TotalStars      int64
	MeanQuality     string
	MedianQuality   string
	StdDevQuality   string
	MeanValueScore  string
	StarPercent     string
	QualityPercent  string
	TopPicks        []reportRow
	UnderratedRepos []reportRow
	OverratedRepos  []reportRow

	// PotentiallyOverrated holds the percentile heuristic hits, which are
	// independent of the classifier's boolean flags.
	PotentiallyOverrated []reportRow
}

// WriteReport renders the standalone HTML report into cfg.OutDir.
// The main input must already be sorted descending by value score; flagged is
// the percentile heuristic result, highest overrated score first.
func WriteReport(sorted, flagged []schema.RepoResult, summary schema.Summary, cfg *contract.Config) error {
	tmpl, err := template.ParseFS(reportFS, "templates/report.html.tmpl")
	if err != nil {
		return fmt.Errorf("%w: parsing report template: %v", contract.ErrOutput, err)
	}

	model := buildReportModel(sorted, flagged, summary, cfg)

	outPath := filepath.Join(cfg.OutDir, ReportFileName)
	file, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("%w: cannot create %s: %v", contract.ErrOutput, outPath, err)
	}
	defer func() { _ = file.Close() }()

	if err := tmpl.Execute(file, model); err != nil {
		return fmt.Errorf("%w: rendering report: %v", contract.ErrOutput, err)
	}

	fmt.Fprintf(os.Stderr, "💾 Wrote report to %s\n", outPath)
	return nil
}

// buildReportModel assembles the template model from the derived collection.
func buildReportModel(sorted, flagged []schema.RepoResult, summary schema.Summary, cfg *contract.Config) reportModel {
	fmtFloat, _ := createFormatters(cfg.Precision)

	toRow := func(i int, r *schema.RepoResult) reportRow {
		return reportRow{
			Rank:       i + 1,
			RepoName:   r.RepoName,
			GithubURL:  r.GithubURL,
			Stars:      r.StarCount,
			Quality:    fmtFloat(r.OverallQuality),
			Value:      fmtFloat(r.ValueScore),
			Category:   r.Category,
			Domain:     r.ProjectDomain,
			Motivation: r.Motivation,
		}
	}

	model := reportModel{
		GeneratedAt:    time.Now().Format(time.RFC1123),
		RecordCount:    summary.RecordCount,
		DomainCount:    summary.DomainCount,
		TotalStars:     summary.TotalStars,
		MeanQuality:    fmtFloat(summary.MeanQuality),
		MedianQuality:  fmtFloat(summary.MedianQuality),
		StdDevQuality:  fmtFloat(summary.StdDevQuality),
		MeanValueScore: fmtFloat(summary.MeanValueScore),
		StarPercent:    fmt.Sprintf("%.0f", cfg.StarPercentile*100),
		QualityPercent: fmt.Sprintf("%.0f", cfg.QualityPercentile*100),
	}

	top := min(reportTopCount, len(sorted))
	for i := 0; i < top; i++ {
		model.TopPicks = append(model.TopPicks, toRow(i, &sorted[i]))
	}

	for i := range sorted {
		r := &sorted[i]
		switch r.Category {
		case schema.CategoryUnderrated:
			model.UnderratedRepos = append(model.UnderratedRepos, toRow(len(model.UnderratedRepos), r))
		case schema.CategoryOverrated:
			model.OverratedRepos = append(model.OverratedRepos, toRow(len(model.OverratedRepos), r))
		}
	}

	for i := range flagged {
		model.PotentiallyOverrated = append(model.PotentiallyOverrated, toRow(i, &flagged[i]))
	}

	return model
}
