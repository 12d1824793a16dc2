package render_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/internal/model"
	"github.com/qaforge/qaforge/internal/render"
)

func testRun() render.RunMetadata {
	return render.RunMetadata{
		Repo:     "acme/contact-suite",
		Workflow: "ci",
		OS:       "ubuntu-latest",
		JDK:      "21",
		Branch:   "main",
		Commit:   "abc1234",
		Author:   "dev",
	}
}

func TestTranscript_Lines(t *testing.T) {
	t.Parallel()

	lines := render.Transcript(fullMetrics())

	require.Len(t, lines, 4)
	assert.Equal(t, "[INFO] Tests: 12/15 passed (failures: 1, errors: 1, skipped: 1)", lines[0])
	assert.Equal(t, "[INFO] JaCoCo coverage: 87.5% (175/200)", lines[1])
	assert.Equal(t, "[INFO] PITest mutation score: 70.0% (killed 7, survived 2, detected 8)", lines[2])
	assert.Equal(t, "[WARN] Dependency-Check: 1 vulnerable deps (2 findings)", lines[3])
}

func TestTranscript_CleanDependencies(t *testing.T) {
	t.Parallel()

	lines := render.Transcript(model.Metrics{})

	require.Len(t, lines, 4)
	assert.Equal(t, "[INFO] Dependency-Check: 0 vulnerable dependencies detected", lines[3])
}

func TestTimeline_AllPassByDefault(t *testing.T) {
	t.Parallel()

	stages := render.Timeline(model.DependencyMetrics{})

	require.Len(t, stages, 7)

	for _, stage := range stages {
		assert.Equal(t, "pass", stage.Status)
	}

	assert.Equal(t, "Checkout", stages[0].Stage)
	assert.Equal(t, "Artifacts", stages[6].Stage)
}

func TestTimeline_WarnsOnVulnerableDeps(t *testing.T) {
	t.Parallel()

	stages := render.Timeline(model.DependencyMetrics{VulnerableDeps: 1})

	warned := 0

	for _, stage := range stages {
		if stage.Status == "warn" {
			warned++

			assert.Equal(t, "Dependency-Check", stage.Stage)
		}
	}

	assert.Equal(t, 1, warned)
}

func TestNewEnvelope_StampsTimestamp(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 30, 12, 34, 56, 0, time.UTC)
	envelope := render.NewEnvelope(testRun(), fullMetrics(), now)

	assert.Equal(t, "2026-08-30 12:34:56 UTC", envelope.Run.Timestamp)
	assert.Equal(t, "acme/contact-suite", envelope.Run.Repo)
	assert.Len(t, envelope.Timeline, 7)
	assert.Len(t, envelope.Console, 4)
}

// Two envelopes over the same model differ only in their timestamp.
func TestNewEnvelope_StableExceptTimestamp(t *testing.T) {
	t.Parallel()

	first := render.NewEnvelope(testRun(), fullMetrics(), time.Date(2026, 8, 30, 1, 0, 0, 0, time.UTC))
	second := render.NewEnvelope(testRun(), fullMetrics(), time.Date(2026, 8, 30, 2, 0, 0, 0, time.UTC))

	second.Run.Timestamp = first.Run.Timestamp

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)

	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, firstJSON, secondJSON)
}

// The existence flags stay internal: the serialized envelope never exposes
// presence, only fully populated records.
func TestEnvelope_JSONShape(t *testing.T) {
	t.Parallel()

	envelope := render.NewEnvelope(testRun(), fullMetrics(), time.Now())

	payload, err := json.Marshal(envelope)
	require.NoError(t, err)

	var decoded map[string]any

	require.NoError(t, json.Unmarshal(payload, &decoded))

	for _, key := range []string{"run", "tests", "coverage", "mutation", "dependencyCheck", "timeline", "console"} {
		assert.Contains(t, decoded, key)
	}

	assert.NotContains(t, string(payload), "Present")

	vulnerabilities := decoded["dependencyCheck"].(map[string]any)["vulnerabilities"].(map[string]any)

	for _, level := range []string{"critical", "high", "medium", "low", "unknown"} {
		assert.Contains(t, vulnerabilities, level)
	}
}
