package render

import (
	"fmt"

	"github.com/qaforge/qaforge/internal/model"
)

// Transcript builds the ordered log-style lines embedded in the dashboard
// envelope as a textual trace of the run.
func Transcript(m model.Metrics) []string {
	lines := []string{
		fmt.Sprintf(
			"[INFO] Tests: %d/%d passed (failures: %d, errors: %d, skipped: %d)",
			m.Tests.Passed, m.Tests.Total, m.Tests.Failed, m.Tests.Errors, m.Tests.Skipped,
		),
		fmt.Sprintf(
			"[INFO] JaCoCo coverage: %.1f%% (%d/%d)",
			m.Coverage.Percent, m.Coverage.Covered, m.Coverage.Total,
		),
		fmt.Sprintf(
			"[INFO] PITest mutation score: %.1f%% (killed %d, survived %d, detected %d)",
			m.Mutation.Percent, m.Mutation.Killed, m.Mutation.Survived, m.Mutation.Detected,
		),
	}

	if m.Dependency.VulnerableDeps > 0 {
		lines = append(lines, fmt.Sprintf(
			"[WARN] Dependency-Check: %d vulnerable deps (%d findings)",
			m.Dependency.VulnerableDeps, m.Dependency.Vulnerabilities.Total(),
		))
	} else {
		lines = append(lines, "[INFO] Dependency-Check: 0 vulnerable dependencies detected")
	}

	return lines
}
