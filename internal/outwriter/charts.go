package outwriter

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/repogem/repogem/internal/contract"
	"github.com/repogem/repogem/schema"
)

// ChartsFileName is the chart page artifact written into the output directory.
const ChartsFileName = "repo_charts.html"

// histogramBins is the bin count for the value score distribution.
const histogramBins = 10

// WriteCharts renders the interactive chart page into cfg.OutDir: a
// stars-vs-quality scatter split by category, the value score distribution,
// and the top domains by repository count.
func WriteCharts(results []schema.RepoResult, domains []schema.DomainCount, cfg *contract.Config) error {
	page := components.NewPage()
	page.PageTitle = "Repository Charts"
	page.AddCharts(
		buildScatterChart(results),
		buildValueHistogram(results),
		buildDomainBar(domains),
	)

	outPath := filepath.Join(cfg.OutDir, ChartsFileName)
	file, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("%w: cannot create %s: %v", contract.ErrOutput, outPath, err)
	}
	defer func() { _ = file.Close() }()

	if err := page.Render(file); err != nil {
		return fmt.Errorf("%w: rendering charts: %v", contract.ErrOutput, err)
	}

	fmt.Fprintf(os.Stderr, "💾 Wrote charts to %s\n", outPath)
	return nil
}

// buildScatterChart plots quality against log-scaled stars, one series per
// category so the flagged repos stand out.
func buildScatterChart(results []schema.RepoResult) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Stars vs overall quality"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "log", Name: "Stars"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Overall quality", Max: schema.MaxSubScore}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	series := map[schema.Category][]opts.ScatterData{}
	for i := range results {
		r := &results[i]
		// The log axis cannot place zero, so floor stars at one.
		stars := max(r.StarCount, 1)
		series[r.Category] = append(series[r.Category], opts.ScatterData{
			Name:  r.ShortName,
			Value: []any{stars, r.OverallQuality},
		})
	}
	for _, cat := range []schema.Category{schema.CategoryUnderrated, schema.CategoryOverrated, schema.CategoryNormal} {
		if data, ok := series[cat]; ok {
			scatter.AddSeries(string(cat), data)
		}
	}
	return scatter
}

// buildValueHistogram bins the value scores and renders the counts as bars.
func buildValueHistogram(results []schema.RepoResult) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Value score distribution"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Value score"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Repos"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	lo, hi := math.Inf(1), math.Inf(-1)
	for i := range results {
		v := results[i].ValueScore
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if len(results) == 0 || lo == hi {
		return bar
	}

	width := (hi - lo) / histogramBins
	counts := make([]int, histogramBins)
	for i := range results {
		bin := int((results[i].ValueScore - lo) / width)
		if bin >= histogramBins { // the maximum lands in the last bin
			bin = histogramBins - 1
		}
		counts[bin]++
	}

	labels := make([]string, histogramBins)
	data := make([]opts.BarData, histogramBins)
	for i := range counts {
		labels[i] = fmt.Sprintf("%.2f", lo+width*float64(i))
		data[i] = opts.BarData{Value: counts[i]}
	}
	bar.SetXAxis(labels).AddSeries("Repos", data)
	return bar
}

// buildDomainBar renders the top domains by repository count.
func buildDomainBar(domains []schema.DomainCount) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Top project domains"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Repos"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	labels := make([]string, len(domains))
	data := make([]opts.BarData, len(domains))
	for i, d := range domains {
		labels[i] = d.Domain
		data[i] = opts.BarData{Value: d.Count}
	}
	bar.SetXAxis(labels).AddSeries("Repos", data)
	return bar
}
