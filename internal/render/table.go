package render

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/qaforge/qaforge/internal/model"
)

// ConsoleSummary renders the same summary rows as the Markdown table, but as
// a bordered terminal table for local runs where no job-summary sink is
// configured. Markdown emphasis markers are stripped from sentinel tokens.
func ConsoleSummary(osLabel, javaLabel string, m model.Metrics) string {
	writer := table.NewWriter()
	writer.SetStyle(table.StyleLight)
	writer.SetTitle("QA Metrics (%s, JDK %s)", osLabel, javaLabel)
	writer.AppendHeader(table.Row{"Metric", "Result", "Details"})

	for _, row := range SummaryRows(m) {
		writer.AppendRow(table.Row{
			row.Metric,
			strings.ReplaceAll(row.Result, "_", ""),
			row.Detail,
		})
	}

	return writer.Render()
}
