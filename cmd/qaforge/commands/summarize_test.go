package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSuiteXML = `<?xml version="1.0" encoding="UTF-8"?>
<testsuite name="contactapp.ContactServiceTest" tests="8" failures="1" errors="0" skipped="1" time="3.5"/>`

const testJacocoXML = `<?xml version="1.0" encoding="UTF-8"?>
<report name="contact-suite">
  <counter type="LINE" missed="10" covered="90"/>
</report>`

// createTestTarget lays out a build output directory with a Surefire suite
// and a JaCoCo report.
func createTestTarget(t *testing.T) string {
	t.Helper()

	target := filepath.Join(t.TempDir(), "target")

	surefireDir := filepath.Join(target, "surefire-reports")
	require.NoError(t, os.MkdirAll(surefireDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(surefireDir, "TEST-contact.xml"), []byte(testSuiteXML), 0o600))

	jacocoDir := filepath.Join(target, "site", "jacoco")
	require.NoError(t, os.MkdirAll(jacocoDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(jacocoDir, "jacoco.xml"), []byte(testJacocoXML), 0o600))

	return target
}

// writeTestConfig pins every output path under a temp dir so the command
// cannot touch the working directory.
func writeTestConfig(t *testing.T, target string) (configPath, base string) {
	t.Helper()

	base = t.TempDir()
	configPath = filepath.Join(base, ".qaforge.yaml")

	content := fmt.Sprintf(`target: %s
badges:
  dir: %s
dashboard:
  dir: %s
  bundle_dir: %s
matrix:
  os: ubuntu-latest
  java: "21"
`,
		target,
		filepath.Join(base, "badges"),
		filepath.Join(base, "qa-dashboard"),
		filepath.Join(base, "no-bundle"),
	)

	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	return configPath, base
}

func TestSummarizeCommand_ConsoleRun(t *testing.T) {
	t.Parallel()

	target := createTestTarget(t)
	configPath, base := writeTestConfig(t, target)

	var out bytes.Buffer

	cmd := NewSummarizeCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", configPath})

	err := cmd.Execute()
	require.NoError(t, err)

	require.Contains(t, out.String(), "QA Metrics (ubuntu-latest, JDK 21)")
	require.Contains(t, out.String(), "8 executed")

	// Dashboard JSON lands in the configured dir, not the CWD.
	require.FileExists(t, filepath.Join(base, "qa-dashboard", "metrics.json"))
}

func TestSummarizeCommand_SummaryFileFlag(t *testing.T) {
	t.Parallel()

	target := createTestTarget(t)
	configPath, base := writeTestConfig(t, target)
	summaryPath := filepath.Join(base, "summary.md")

	cmd := NewSummarizeCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", configPath, "--summary-file", summaryPath})

	err := cmd.Execute()
	require.NoError(t, err)

	data, readErr := os.ReadFile(summaryPath)
	require.NoError(t, readErr)
	require.Contains(t, string(data), "| Metric | Result | Details |")
}

func TestSummarizeCommand_BadgeFlags(t *testing.T) {
	t.Parallel()

	target := createTestTarget(t)
	configPath, base := writeTestConfig(t, target)
	badgeDir := filepath.Join(base, "flag-badges")

	cmd := NewSummarizeCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", configPath, "--badges", "--badge-dir", badgeDir})

	err := cmd.Execute()
	require.NoError(t, err)

	for _, name := range []string{"jacoco.json", "mutation.json", "spotbugs.json", "dependency.json"} {
		require.FileExists(t, filepath.Join(badgeDir, name))
	}
}

func TestSummarizeCommand_TargetFlagOverridesConfig(t *testing.T) {
	t.Parallel()

	configPath, _ := writeTestConfig(t, createTestTarget(t))
	emptyTarget := t.TempDir()

	var out bytes.Buffer

	cmd := NewSummarizeCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", configPath, "--target", emptyTarget})

	err := cmd.Execute()
	require.NoError(t, err)

	// The empty override target has no reports: sentinel rows, exit 0.
	require.Contains(t, out.String(), "no data")
}

func TestSummarizeCommand_MissingConfigFile(t *testing.T) {
	t.Parallel()

	cmd := NewSummarizeCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")})

	err := cmd.Execute()
	require.Error(t, err)
}
