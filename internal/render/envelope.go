package render

import (
	"time"

	"github.com/qaforge/qaforge/internal/model"
)

// timestampLayout is the run-metadata timestamp format the dashboard UI
// expects.
const timestampLayout = "2006-01-02 15:04:05 UTC"

// RunMetadata identifies the CI run that produced the envelope.
type RunMetadata struct {
	Repo      string `json:"repo"`
	Workflow  string `json:"workflow"`
	OS        string `json:"os"`
	JDK       string `json:"jdk"`
	Branch    string `json:"branch"`
	Commit    string `json:"commit"`
	Author    string `json:"author"`
	Timestamp string `json:"timestamp"`
}

// Envelope is the consolidated metrics document consumed by the dashboard UI.
// Over unchanged inputs its JSON is byte-identical across runs except for the
// timestamp field.
type Envelope struct {
	Run             RunMetadata             `json:"run"`
	Tests           model.TestMetrics       `json:"tests"`
	Coverage        model.CoverageMetrics   `json:"coverage"`
	Mutation        model.MutationMetrics   `json:"mutation"`
	DependencyCheck model.DependencyMetrics `json:"dependencyCheck"`
	Timeline        []Stage                 `json:"timeline"`
	Console         []string                `json:"console"`
}

// NewEnvelope assembles the envelope from the normalized model. The caller
// provides run metadata without a timestamp; it is stamped here from now in
// UTC.
func NewEnvelope(run RunMetadata, m model.Metrics, now time.Time) Envelope {
	run.Timestamp = now.UTC().Format(timestampLayout)

	return Envelope{
		Run:             run,
		Tests:           m.Tests,
		Coverage:        m.Coverage,
		Mutation:        m.Mutation,
		DependencyCheck: m.Dependency,
		Timeline:        Timeline(m.Dependency),
		Console:         Transcript(m),
	}
}
