// Package report reads the raw QA artifacts a build pipeline leaves under its
// output directory: Surefire test results, JaCoCo coverage, PITest mutations,
// Dependency-Check scans, and SpotBugs findings.
//
// Loaders are defensive by contract. A missing artifact is the common case
// when a pipeline gate was skipped, and an artifact that exists but fails to
// parse must not block reporting on the others. Both degrade to absence,
// modeled as a nil record in the Bundle. A non-nil record with zero counts
// means the tool ran and found nothing, which is a different fact and is kept
// distinct end to end.
package report

import "github.com/qaforge/qaforge/internal/metrics"

// Kind identifies one raw report source.
type Kind string

// The five report sources, in the fixed order Collect runs them.
const (
	KindTests        Kind = "tests"
	KindCoverage     Kind = "coverage"
	KindMutation     Kind = "mutation"
	KindDependencies Kind = "dependencies"
	KindStaticBugs   Kind = "static-bugs"
)

// Tests holds the summed counts from all Surefire suite files.
type Tests struct {
	Tests    int
	Failures int
	Errors   int
	Skipped  int
	Time     float64
}

// Coverage holds the line-level counter from a JaCoCo report.
type Coverage struct {
	Covered int
	Missed  int
	Total   int
	Percent float64
}

// Mutation holds the per-status counts from a PITest report.
type Mutation struct {
	Total    int
	Killed   int
	Survived int
	Detected int
	Percent  float64
}

// DependencyScan holds the counts from a Dependency-Check report.
type DependencyScan struct {
	Dependencies           int
	VulnerableDependencies int
	Vulnerabilities        int
	Severity               map[metrics.Severity]int
}

// StaticBugs holds the flagged-issue count from a SpotBugs report.
type StaticBugs struct {
	Count int
}

// Bundle collects the raw reports of one aggregation run. A nil field means
// the corresponding artifact was missing or unparsable.
type Bundle struct {
	Tests        *Tests
	Coverage     *Coverage
	Mutation     *Mutation
	Dependencies *DependencyScan
	StaticBugs   *StaticBugs
}

// Loader is the capability every report source implements: inspect a build
// output root and record the outcome in the bundle. Load never fails; absence
// is an outcome, not an error.
type Loader interface {
	Kind() Kind
	Load(root string, bundle *Bundle)
}

// Loaders returns the report loaders in their fixed execution order.
func Loaders() []Loader {
	return []Loader{
		SurefireLoader{},
		JacocoLoader{},
		PitestLoader{},
		DependencyCheckLoader{},
		SpotBugsLoader{},
	}
}

// Collect runs every loader against root and returns the resulting bundle.
// Loaders run sequentially; no loader's outcome affects another's execution.
func Collect(root string) *Bundle {
	bundle := &Bundle{}

	for _, loader := range Loaders() {
		loader.Load(root, bundle)
	}

	return bundle
}
