package report

import (
	"encoding/xml"
	"math"
	"os"
	"path/filepath"
)

// surefireDir is the report directory relative to the build output root.
const surefireDir = "surefire-reports"

// surefireGlob matches one result file per test suite.
const surefireGlob = "TEST-*.xml"

// surefireSuite mirrors the attributes of a <testsuite> root element.
type surefireSuite struct {
	Tests    int     `xml:"tests,attr"`
	Failures int     `xml:"failures,attr"`
	Errors   int     `xml:"errors,attr"`
	Skipped  int     `xml:"skipped,attr"`
	Time     float64 `xml:"time,attr"`
}

// SurefireLoader aggregates JUnit results across Surefire suite files.
type SurefireLoader struct{}

// Kind returns the source identifier for test results.
func (SurefireLoader) Kind() Kind { return KindTests }

// Load sums counts across every suite file found under the report directory.
// Files that fail to parse are skipped. The result is absent when the
// directory is missing or when tests, failures, and errors all sum to zero;
// the latter conflates a genuinely empty run with a skipped stage, matching
// what downstream consumers have always been shown.
func (SurefireLoader) Load(root string, bundle *Bundle) {
	bundle.Tests = loadSurefire(root)
}

func loadSurefire(root string) *Tests {
	dir := filepath.Join(root, surefireDir)

	if _, statErr := os.Stat(dir); statErr != nil {
		return nil
	}

	paths, globErr := filepath.Glob(filepath.Join(dir, surefireGlob))
	if globErr != nil {
		return nil
	}

	sum := Tests{}

	for _, path := range paths {
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			continue
		}

		var suite surefireSuite

		if unmarshalErr := xml.Unmarshal(data, &suite); unmarshalErr != nil {
			continue
		}

		sum.Tests += suite.Tests
		sum.Failures += suite.Failures
		sum.Errors += suite.Errors
		sum.Skipped += suite.Skipped
		sum.Time += suite.Time
	}

	if sum.Tests == 0 && sum.Failures == 0 && sum.Errors == 0 {
		return nil
	}

	sum.Time = math.Round(sum.Time*100) / 100

	return &sum
}
