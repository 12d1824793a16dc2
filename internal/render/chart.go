package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/qaforge/qaforge/internal/model"
)

const (
	chartPageTitle = "QA Metrics"
	chartWidth     = "900px"
	chartHeight    = "420px"
	percentAxisMax = 100
)

// FallbackDashboard writes a self-contained HTML page charting the headline
// metrics. It stands in for the prebuilt dashboard bundle when none is on
// disk, so the dashboard directory never ships a metrics document without a
// viewer.
func FallbackDashboard(w io.Writer, run RunMetadata, m model.Metrics) error {
	page := components.NewPage()
	page.PageTitle = chartPageTitle
	page.AddCharts(percentChart(run, m), countChart(m))

	renderErr := page.Render(w)
	if renderErr != nil {
		return fmt.Errorf("render fallback dashboard: %w", renderErr)
	}

	return nil
}

func percentChart(run RunMetadata, m model.Metrics) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Quality Scores",
			Subtitle: fmt.Sprintf("%s @ %s (%s)", run.Repo, run.Branch, run.Commit),
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithYAxisOpts(opts.YAxis{Name: "%", Max: percentAxisMax}),
	)

	bar.SetXAxis([]string{"Line coverage", "Mutation score"})
	bar.AddSeries("percent", []opts.BarData{
		{Value: m.Coverage.Percent},
		{Value: m.Mutation.Percent},
	})

	return bar
}

func countChart(m model.Metrics) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Findings"}),
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
	)

	staticBugs := 0
	if m.StaticBugs.Known {
		staticBugs = m.StaticBugs.Count
	}

	bar.SetXAxis([]string{"Test failures", "Test errors", "Vulnerabilities", "Static-analysis issues"})
	bar.AddSeries("count", []opts.BarData{
		{Value: m.Tests.Failed},
		{Value: m.Tests.Errors},
		{Value: m.Dependency.Vulnerabilities.Total()},
		{Value: staticBugs},
	})

	return bar
}
