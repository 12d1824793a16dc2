package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaforge/qaforge/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "target", cfg.Target)
	assert.Empty(t, cfg.Summary.Path)
	assert.False(t, cfg.Badges.Enabled)
	assert.Equal(t, "badges", cfg.Badges.Dir)
	assert.Equal(t, "target/site/qa-dashboard", cfg.Dashboard.Dir)
	assert.Equal(t, "unknown-os", cfg.Matrix.OS)
	assert.Equal(t, "unknown", cfg.Matrix.Java)
	assert.Equal(t, "local", cfg.Run.Repository)
	assert.Equal(t, "local", cfg.Run.Commit)
}

func TestLoadConfig_CIEnvironment(t *testing.T) {
	t.Setenv("MATRIX_OS", "ubuntu-latest")
	t.Setenv("MATRIX_JAVA", "21")
	t.Setenv("GITHUB_STEP_SUMMARY", "/tmp/step-summary.md")
	t.Setenv("GITHUB_REPOSITORY", "acme/contact-suite")
	t.Setenv("GITHUB_SHA", "0123456789abcdef0123456789abcdef01234567")
	t.Setenv("GITHUB_REF_NAME", "main")
	t.Setenv("GITHUB_ACTOR", "dev")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "ubuntu-latest", cfg.Matrix.OS)
	assert.Equal(t, "21", cfg.Matrix.Java)
	assert.Equal(t, "/tmp/step-summary.md", cfg.Summary.Path)
	assert.Equal(t, "acme/contact-suite", cfg.Run.Repository)
	assert.Equal(t, "ubuntu-latest", cfg.Run.OS)
	assert.Equal(t, "21", cfg.Run.JDK)
	assert.Equal(t, "main", cfg.Run.Branch)
	assert.Equal(t, "0123456", cfg.Run.Commit, "commit is truncated for display")
	assert.Equal(t, "dev", cfg.Run.Author)
}

func TestLoadConfig_RunnerOSFallback(t *testing.T) {
	t.Setenv("RUNNER_OS", "Linux")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "Linux", cfg.Run.OS)
	assert.Equal(t, "unknown-os", cfg.Matrix.OS, "matrix label only comes from MATRIX_OS")
}

func TestLoadConfig_BadgeFlagSpellings(t *testing.T) {
	spellings := map[string]bool{
		"1": true, "true": true, "yes": true, "TRUE": true, "Yes": true,
		"0": false, "false": false, "no": false, "": false, "maybe": false,
	}

	for spelling, want := range spellings {
		t.Run("UPDATE_BADGES="+spelling, func(t *testing.T) {
			t.Setenv("UPDATE_BADGES", spelling)

			cfg, err := config.LoadConfig("")
			require.NoError(t, err)

			assert.Equal(t, want, cfg.Badges.Enabled)
		})
	}
}

func TestLoadConfig_BadgeDirOverride(t *testing.T) {
	t.Setenv("UPDATE_BADGES", "true")
	t.Setenv("BADGE_OUTPUT_DIR", "/tmp/custom-badges")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.True(t, cfg.Badges.Enabled)
	assert.Equal(t, "/tmp/custom-badges", cfg.Badges.Dir)
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qaforge.yaml")
	content := `target: build/output
summary:
  path: notes.md
badges:
  enabled: true
  dir: shields
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "build/output", cfg.Target)
	assert.Equal(t, "notes.md", cfg.Summary.Path)
	assert.True(t, cfg.Badges.Enabled)
	assert.Equal(t, "shields", cfg.Badges.Dir)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}

func TestValidate_SentinelErrors(t *testing.T) {
	t.Parallel()

	cfg := config.Config{}
	assert.ErrorIs(t, cfg.Validate(), config.ErrEmptyTarget)

	cfg.Target = "target"
	assert.ErrorIs(t, cfg.Validate(), config.ErrEmptyBadgeDir)

	cfg.Badges.Dir = "badges"
	assert.ErrorIs(t, cfg.Validate(), config.ErrEmptyDashboardDir)

	cfg.Dashboard.Dir = "dash"
	assert.NoError(t, cfg.Validate())
}
