package report

import (
	"encoding/xml"
	"os"
	"path/filepath"

	"github.com/qaforge/qaforge/internal/metrics"
)

// pitestRelPath is the mutation report location under the build output root.
var pitestRelPath = filepath.Join("pit-reports", "mutations.xml")

// PITest mutation status values we count.
const (
	mutationStatusKilled   = "KILLED"
	mutationStatusSurvived = "SURVIVED"
)

// pitestMutation mirrors the attributes of one <mutation> record.
type pitestMutation struct {
	Status   string `xml:"status,attr"`
	Detected string `xml:"detected,attr"`
}

// pitestReport mirrors the mutations.xml root element.
type pitestReport struct {
	Mutations []pitestMutation `xml:"mutation"`
}

// PitestLoader counts mutation outcomes from a PITest report.
type PitestLoader struct{}

// Kind returns the source identifier for mutation testing.
func (PitestLoader) Kind() Kind { return KindMutation }

// Load parses the mutation report. A report that parses but holds zero
// mutation records is present with all-zero counts: the tool ran and found
// nothing to mutate, which must stay distinguishable from a missing report.
func (PitestLoader) Load(root string, bundle *Bundle) {
	bundle.Mutation = loadPitest(root)
}

func loadPitest(root string) *Mutation {
	data, readErr := os.ReadFile(filepath.Join(root, pitestRelPath))
	if readErr != nil {
		return nil
	}

	var parsed pitestReport

	if unmarshalErr := xml.Unmarshal(data, &parsed); unmarshalErr != nil {
		return nil
	}

	result := Mutation{Total: len(parsed.Mutations)}
	if result.Total == 0 {
		return &result
	}

	for _, mutation := range parsed.Mutations {
		switch mutation.Status {
		case mutationStatusKilled:
			result.Killed++
		case mutationStatusSurvived:
			result.Survived++
		}

		if mutation.Detected == "true" {
			result.Detected++
		}
	}

	result.Percent = metrics.Percent(float64(result.Killed), float64(result.Total))

	return &result
}
