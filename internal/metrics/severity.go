package metrics

import "strings"

// Severity is a coarse vulnerability impact bucket.
type Severity string

// The five recognized severity buckets, strongest first.
const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
	SeverityUnknown  Severity = "UNKNOWN"
)

// SeverityOrder lists the severity buckets in display order.
var SeverityOrder = []Severity{
	SeverityCritical,
	SeverityHigh,
	SeverityMedium,
	SeverityLow,
	SeverityUnknown,
}

// FoldSeverity maps a raw severity string from a scan report onto one of the
// five buckets. Matching is case-insensitive; anything unrecognized, including
// the empty string, folds into UNKNOWN.
func FoldSeverity(raw string) Severity {
	folded := Severity(strings.ToUpper(strings.TrimSpace(raw)))

	for _, level := range SeverityOrder {
		if folded == level {
			return level
		}
	}

	return SeverityUnknown
}

// EmptySeverityCounts returns a histogram holding all five buckets at zero.
func EmptySeverityCounts() map[Severity]int {
	counts := make(map[Severity]int, len(SeverityOrder))

	for _, level := range SeverityOrder {
		counts[level] = 0
	}

	return counts
}
