package report

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/qaforge/qaforge/internal/metrics"
)

// depCheckFileName is the scan report name under the build output root.
const depCheckFileName = "dependency-check-report.json"

// depCheckReport mirrors the parts of a Dependency-Check JSON report we read.
type depCheckReport struct {
	Dependencies []depCheckDependency `json:"dependencies"`
}

type depCheckDependency struct {
	Vulnerabilities []depCheckVulnerability `json:"vulnerabilities"`
}

type depCheckVulnerability struct {
	Severity string `json:"severity"`
}

// DependencyCheckLoader counts vulnerability findings from a Dependency-Check
// JSON report.
type DependencyCheckLoader struct{}

// Kind returns the source identifier for the dependency scan.
func (DependencyCheckLoader) Kind() Kind { return KindDependencies }

// Load parses the scan report and builds the severity histogram. The
// histogram always carries all five buckets; unrecognized severity strings
// fold into UNKNOWN.
func (DependencyCheckLoader) Load(root string, bundle *Bundle) {
	bundle.Dependencies = loadDependencyCheck(root)
}

func loadDependencyCheck(root string) *DependencyScan {
	data, readErr := os.ReadFile(filepath.Join(root, depCheckFileName))
	if readErr != nil {
		return nil
	}

	var parsed depCheckReport

	if unmarshalErr := json.Unmarshal(data, &parsed); unmarshalErr != nil {
		return nil
	}

	scan := DependencyScan{
		Dependencies: len(parsed.Dependencies),
		Severity:     metrics.EmptySeverityCounts(),
	}

	for _, dependency := range parsed.Dependencies {
		if len(dependency.Vulnerabilities) == 0 {
			continue
		}

		scan.VulnerableDependencies++
		scan.Vulnerabilities += len(dependency.Vulnerabilities)

		for _, vulnerability := range dependency.Vulnerabilities {
			scan.Severity[metrics.FoldSeverity(vulnerability.Severity)]++
		}
	}

	return &scan
}
