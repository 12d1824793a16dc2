// Package render builds every presentation of the normalized metrics model:
// the Markdown summary table, badge payloads, the console transcript, the
// pipeline timeline, and the dashboard envelope.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/qaforge/qaforge/internal/model"
)

// barWidth is the character width of the textual progress bar.
const barWidth = 20

// resultPadWidth left-justifies the percent token before the bar.
const resultPadWidth = 8

// Sentinel result tokens for absent sources. Zero and absent must never look
// the same to a human reader.
const (
	noDataToken = "_no data_"
	notRunToken = "_not run_"
)

// severityLabels maps each bucket to its display label, strongest first.
var severityLabels = []struct {
	Label string
	Count func(model.SeverityCounts) int
}{
	{"🟥 Critical", func(c model.SeverityCounts) int { return c.Critical }},
	{"🟧 High", func(c model.SeverityCounts) int { return c.High }},
	{"🟨 Medium", func(c model.SeverityCounts) int { return c.Medium }},
	{"🟩 Low", func(c model.SeverityCounts) int { return c.Low }},
	{"⬜ Unknown", func(c model.SeverityCounts) int { return c.Unknown }},
}

// Row is one line of the summary table.
type Row struct {
	Metric string
	Result string
	Detail string
}

// SummaryRows builds the ordered summary rows for the model. Absent sources
// get the sentinel token plus a detail naming the likely cause.
func SummaryRows(m model.Metrics) []Row {
	rows := []Row{
		testsRow(m.Tests),
		coverageRow(m.Coverage),
		mutationRow(m.Mutation),
		dependencyRow(m.Dependency),
	}

	if m.Dependency.Present {
		rows = append(rows, Row{
			Metric: "Dependency severity",
			Result: severitySummary(m.Dependency.Vulnerabilities),
		})
	}

	return rows
}

func testsRow(tests model.TestMetrics) Row {
	if !tests.Present {
		return Row{Metric: "Tests", Result: noDataToken, Detail: "Surefire reports not found."}
	}

	return Row{
		Metric: "Tests",
		Result: fmt.Sprintf("%d executed", tests.Total),
		Detail: fmt.Sprintf(
			"Total runtime %ss; failures: %d, errors: %d, skipped: %d",
			humanize.Ftoa(tests.Duration), tests.Failed, tests.Errors, tests.Skipped,
		),
	}
}

func coverageRow(coverage model.CoverageMetrics) Row {
	if !coverage.Present {
		return Row{Metric: "Line coverage (JaCoCo)", Result: noDataToken, Detail: "Jacoco XML report missing."}
	}

	return Row{
		Metric: "Line coverage (JaCoCo)",
		Result: percentToken(coverage.Percent),
		Detail: fmt.Sprintf(
			"%s / %s lines covered",
			humanize.Comma(int64(coverage.Covered)), humanize.Comma(int64(coverage.Total)),
		),
	}
}

func mutationRow(mutation model.MutationMetrics) Row {
	if !mutation.Present {
		return Row{
			Metric: "Mutation score (PITest)",
			Result: noDataToken,
			Detail: "PITest report not generated (likely skipped).",
		}
	}

	return Row{
		Metric: "Mutation score (PITest)",
		Result: percentToken(mutation.Percent),
		Detail: fmt.Sprintf(
			"%d killed, %d survived, %d detected out of %d mutations",
			mutation.Killed, mutation.Survived, mutation.Detected, mutation.Total,
		),
	}
}

func dependencyRow(dependency model.DependencyMetrics) Row {
	if !dependency.Present {
		return Row{
			Metric: "Dependency-Check",
			Result: notRunToken,
			Detail: "Report missing (probably skipped when `NVD_API_KEY` was not provided).",
		}
	}

	return Row{
		Metric: "Dependency-Check",
		Result: "scan complete",
		Detail: fmt.Sprintf(
			"%d dependencies with issues (%d vulnerabilities) out of %s scanned.",
			dependency.VulnerableDeps, dependency.Vulnerabilities.Total(),
			humanize.Comma(int64(dependency.Scanned)),
		),
	}
}

// percentToken renders a percent value left-justified next to its bar.
func percentToken(percent float64) string {
	token := fmt.Sprintf("%.1f%%", percent)

	if pad := resultPadWidth - len(token); pad > 0 {
		token += strings.Repeat(" ", pad)
	}

	return token + Bar(percent)
}

// Bar renders a proportionally filled progress bar of fixed width.
func Bar(percent float64) string {
	filled := int(math.Round(percent / 100 * barWidth))
	filled = max(0, min(barWidth, filled))

	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func severitySummary(counts model.SeverityCounts) string {
	parts := make([]string, 0, len(severityLabels))

	for _, level := range severityLabels {
		parts = append(parts, fmt.Sprintf("%s: %d", level.Label, level.Count(counts)))
	}

	return strings.Join(parts, " &nbsp; ")
}

// MarkdownSummary renders the full Markdown summary block: matrix header,
// table, and artifact pointers. The block ends with a blank line so repeated
// appends to a running job summary stay separated.
func MarkdownSummary(osLabel, javaLabel string, m model.Metrics) string {
	lines := []string{
		fmt.Sprintf("### QA Metrics (%s, JDK %s)", osLabel, javaLabel),
		"",
		"| Metric | Result | Details |",
		"| --- | --- | --- |",
	}

	for _, row := range SummaryRows(m) {
		lines = append(lines, fmt.Sprintf("| %s | %s | %s |", row.Metric, row.Result, row.Detail))
	}

	lines = append(lines,
		"",
		"Interactive dashboard: `target/site/qa-dashboard/index.html` (packaged in the `quality-reports-*` artifact).",
		"Artifacts: `target/site/`, `target/pit-reports/`, `target/dependency-check-report.*`.",
		"",
	)

	return strings.Join(lines, "\n") + "\n"
}
