package report

import (
	"encoding/xml"
	"os"
	"path/filepath"
)

// spotBugsCandidates lists report filenames in probe order; tools differ on
// which one they emit.
var spotBugsCandidates = []string{"spotbugsXml.xml", "spotbugs.xml"}

// spotBugsReport mirrors the bug collection root element.
type spotBugsReport struct {
	BugInstances []struct{} `xml:"BugInstance"`
}

// SpotBugsLoader counts flagged issues from a SpotBugs XML report.
type SpotBugsLoader struct{}

// Kind returns the source identifier for static analysis.
func (SpotBugsLoader) Kind() Kind { return KindStaticBugs }

// Load probes the candidate filenames and counts bug instances from the first
// one that exists. A candidate that exists but fails to parse yields unknown
// rather than zero; later candidates are not consulted.
func (SpotBugsLoader) Load(root string, bundle *Bundle) {
	bundle.StaticBugs = loadSpotBugs(root)
}

func loadSpotBugs(root string) *StaticBugs {
	for _, name := range spotBugsCandidates {
		data, readErr := os.ReadFile(filepath.Join(root, name))
		if readErr != nil {
			continue
		}

		var parsed spotBugsReport

		if unmarshalErr := xml.Unmarshal(data, &parsed); unmarshalErr != nil {
			return nil
		}

		return &StaticBugs{Count: len(parsed.BugInstances)}
	}

	return nil
}
