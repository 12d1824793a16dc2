// Package model defines the normalized metrics schema consumed by every
// downstream surface, and the normalizer that maps raw reports onto it.
//
// The schema is the stable contract: every field is populated even when the
// source report was absent, so consumers never branch on presence. Each
// sub-record keeps an existence flag outside the JSON surface so that
// "report ran and found nothing" and "report never ran" stay distinguishable.
package model

import (
	"github.com/qaforge/qaforge/internal/metrics"
	"github.com/qaforge/qaforge/internal/report"
)

// TestMetrics is the normalized view of a test run.
type TestMetrics struct {
	Total    int     `json:"total"`
	Passed   int     `json:"passed"`
	Failed   int     `json:"failed"`
	Errors   int     `json:"errors"`
	Skipped  int     `json:"skipped"`
	Duration float64 `json:"duration"`

	Present bool `json:"-"`
}

// CoverageMetrics is the normalized view of line coverage.
type CoverageMetrics struct {
	Percent float64 `json:"percent"`
	Covered int     `json:"covered"`
	Total   int     `json:"total"`

	Present bool `json:"-"`
}

// MutationMetrics is the normalized view of a mutation-testing run.
type MutationMetrics struct {
	Percent    float64 `json:"percent"`
	Killed     int     `json:"killed"`
	Survived   int     `json:"survived"`
	NoCoverage int     `json:"noCoverage"`
	Detected   int     `json:"detected"`
	Total      int     `json:"total"`

	Present bool `json:"-"`
}

// SeverityCounts is the five-level vulnerability histogram. All five fields
// are always serialized, even at zero.
type SeverityCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
	Unknown  int `json:"unknown"`
}

// Total returns the sum across all five buckets.
func (s SeverityCounts) Total() int {
	return s.Critical + s.High + s.Medium + s.Low + s.Unknown
}

// DependencyMetrics is the normalized view of a dependency scan.
type DependencyMetrics struct {
	Scanned         int            `json:"scanned"`
	VulnerableDeps  int            `json:"vulnerableDeps"`
	Vulnerabilities SeverityCounts `json:"vulnerabilities"`

	Present bool `json:"-"`
}

// StaticBugCount is the static-analysis issue count. Known is false when no
// report could be read, which is a different fact from a clean report.
type StaticBugCount struct {
	Count int
	Known bool
}

// Metrics is the fully normalized model for one aggregation run.
type Metrics struct {
	Tests      TestMetrics
	Coverage   CoverageMetrics
	Mutation   MutationMetrics
	Dependency DependencyMetrics
	StaticBugs StaticBugCount
}

// Normalize maps a raw report bundle onto the fixed-shape model,
// substituting zero-valued records for absent sources.
func Normalize(bundle *report.Bundle) Metrics {
	return Metrics{
		Tests:      normalizeTests(bundle.Tests),
		Coverage:   normalizeCoverage(bundle.Coverage),
		Mutation:   normalizeMutation(bundle.Mutation),
		Dependency: normalizeDependency(bundle.Dependencies),
		StaticBugs: normalizeStaticBugs(bundle.StaticBugs),
	}
}

// normalizeTests derives the passed count rather than reading it from any
// report field; the inputs come from a single consistent source, so it cannot
// go negative.
func normalizeTests(raw *report.Tests) TestMetrics {
	if raw == nil {
		return TestMetrics{}
	}

	return TestMetrics{
		Total:    raw.Tests,
		Passed:   raw.Tests - raw.Failures - raw.Errors - raw.Skipped,
		Failed:   raw.Failures,
		Errors:   raw.Errors,
		Skipped:  raw.Skipped,
		Duration: raw.Time,
		Present:  true,
	}
}

func normalizeCoverage(raw *report.Coverage) CoverageMetrics {
	if raw == nil {
		return CoverageMetrics{}
	}

	return CoverageMetrics{
		Percent: raw.Percent,
		Covered: raw.Covered,
		Total:   raw.Total,
		Present: true,
	}
}

func normalizeMutation(raw *report.Mutation) MutationMetrics {
	if raw == nil {
		return MutationMetrics{}
	}

	// Floored at zero in case the status counts are internally inconsistent.
	noCoverage := max(0, raw.Total-raw.Killed-raw.Survived)

	return MutationMetrics{
		Percent:    raw.Percent,
		Killed:     raw.Killed,
		Survived:   raw.Survived,
		NoCoverage: noCoverage,
		Detected:   raw.Detected,
		Total:      raw.Total,
		Present:    true,
	}
}

func normalizeDependency(raw *report.DependencyScan) DependencyMetrics {
	if raw == nil {
		return DependencyMetrics{}
	}

	return DependencyMetrics{
		Scanned:        raw.Dependencies,
		VulnerableDeps: raw.VulnerableDependencies,
		Vulnerabilities: SeverityCounts{
			Critical: raw.Severity[metrics.SeverityCritical],
			High:     raw.Severity[metrics.SeverityHigh],
			Medium:   raw.Severity[metrics.SeverityMedium],
			Low:      raw.Severity[metrics.SeverityLow],
			Unknown:  raw.Severity[metrics.SeverityUnknown],
		},
		Present: true,
	}
}

func normalizeStaticBugs(raw *report.StaticBugs) StaticBugCount {
	if raw == nil {
		return StaticBugCount{}
	}

	return StaticBugCount{Count: raw.Count, Known: true}
}
