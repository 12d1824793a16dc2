package render

import (
	"fmt"

	"github.com/qaforge/qaforge/internal/model"
)

// badgeSchemaVersion is the shields.io endpoint schema version.
const badgeSchemaVersion = 1

// Badge hex colors. The palette matches the darker CI badge green.
const (
	colorGreen  = "16A34A" // green-600
	colorAmber  = "F59E0B" // amber
	colorOrange = "EA580C" // orange-600
	colorRed    = "DC2626" // red-600
	colorGray   = "9CA3AF" // gray-400
)

// Percent thresholds for the four-tier color ramp.
const (
	percentTierGreen  = 90
	percentTierAmber  = 75
	percentTierOrange = 60
)

// countBadgeWarnLimit is the highest count still shown in amber.
const countBadgeWarnLimit = 5

// Badge is a shields.io endpoint payload.
type Badge struct {
	SchemaVersion int    `json:"schemaVersion"`
	Label         string `json:"label"`
	Message       string `json:"message"`
	Color         string `json:"color"`
}

// BadgeFiles maps badge filenames to their payloads for one run.
func BadgeFiles(m model.Metrics) map[string]Badge {
	return map[string]Badge{
		"jacoco.json":   PercentBadge("JaCoCo", m.Coverage.Percent),
		"mutation.json": PercentBadge("PITest", m.Mutation.Percent),
		"spotbugs.json": CountBadge("SpotBugs", m.StaticBugs.Count, m.StaticBugs.Known, "issues", "clean"),
		"dependency.json": CountBadge(
			"OWASP DC", m.Dependency.Vulnerabilities.Total(), m.Dependency.Present, "vulns", "clean",
		),
	}
}

// PercentBadge builds a badge for a percentage-style metric. The value is
// clamped into [0,100] before the color ramp is applied.
func PercentBadge(label string, percent float64) Badge {
	safe := max(0.0, min(100.0, percent))

	return Badge{
		SchemaVersion: badgeSchemaVersion,
		Label:         label,
		Message:       fmt.Sprintf("%.1f%%", safe),
		Color:         percentColor(safe),
	}
}

func percentColor(percent float64) string {
	switch {
	case percent >= percentTierGreen:
		return colorGreen
	case percent >= percentTierAmber:
		return colorAmber
	case percent >= percentTierOrange:
		return colorOrange
	default:
		return colorRed
	}
}

// CountBadge builds a badge for a count-style metric. An unknown count is
// neutral gray with "n/a"; zero is the success color with the clean message;
// small counts warn and larger ones show the danger color.
func CountBadge(label string, count int, known bool, unit, cleanMessage string) Badge {
	badge := Badge{SchemaVersion: badgeSchemaVersion, Label: label}

	switch {
	case !known:
		badge.Message = "n/a"
		badge.Color = colorGray
	case count == 0:
		badge.Message = cleanMessage
		badge.Color = colorGreen
	case count <= countBadgeWarnLimit:
		badge.Message = fmt.Sprintf("%d %s", count, unit)
		badge.Color = colorAmber
	default:
		badge.Message = fmt.Sprintf("%d %s", count, unit)
		badge.Color = colorRed
	}

	return badge
}
