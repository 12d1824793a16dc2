// Package config holds the explicit configuration passed into the
// aggregation pipeline at startup. All environment lookups happen here, once,
// so the pipeline itself stays pure and testable without environment mocking.
package config

import "errors"

// Config is the top-level configuration struct for qaforge.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Target    string          `mapstructure:"target" yaml:"target"`
	Summary   SummaryConfig   `mapstructure:"summary" yaml:"summary"`
	Badges    BadgesConfig    `mapstructure:"badges" yaml:"badges"`
	Dashboard DashboardConfig `mapstructure:"dashboard" yaml:"dashboard"`
	Matrix    MatrixConfig    `mapstructure:"matrix" yaml:"matrix"`
	Run       RunConfig       `mapstructure:"run" yaml:"run"`
}

// SummaryConfig controls where the Markdown summary goes.
type SummaryConfig struct {
	// Path is appended to when set; empty means print to the console.
	Path string `mapstructure:"path" yaml:"path"`
}

// BadgesConfig controls shield badge generation.
type BadgesConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Dir     string `mapstructure:"dir" yaml:"dir"`
}

// DashboardConfig controls the dashboard output directory and the optional
// prebuilt UI bundle copied into it.
type DashboardConfig struct {
	Dir       string `mapstructure:"dir" yaml:"dir"`
	BundleDir string `mapstructure:"bundle_dir" yaml:"bundle_dir"`
	Helper    string `mapstructure:"helper" yaml:"helper"`
}

// MatrixConfig identifies the build matrix cell for the summary header.
type MatrixConfig struct {
	OS   string `mapstructure:"os" yaml:"os"`
	Java string `mapstructure:"java" yaml:"java"`
}

// RunConfig carries the run-metadata identifiers for the metrics envelope.
// Each defaults to a literal "local" placeholder outside CI.
type RunConfig struct {
	Repository string `mapstructure:"repository" yaml:"repository"`
	Workflow   string `mapstructure:"workflow" yaml:"workflow"`
	OS         string `mapstructure:"os" yaml:"os"`
	JDK        string `mapstructure:"jdk" yaml:"jdk"`
	Branch     string `mapstructure:"branch" yaml:"branch"`
	Commit     string `mapstructure:"commit" yaml:"commit"`
	Author     string `mapstructure:"author" yaml:"author"`
}

// Sentinel errors for configuration validation.
var (
	// ErrEmptyTarget indicates the build output root is unset.
	ErrEmptyTarget = errors.New("target must not be empty")
	// ErrEmptyBadgeDir indicates the badge output directory is unset.
	ErrEmptyBadgeDir = errors.New("badges.dir must not be empty")
	// ErrEmptyDashboardDir indicates the dashboard output directory is unset.
	ErrEmptyDashboardDir = errors.New("dashboard.dir must not be empty")
)

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	if c.Target == "" {
		return ErrEmptyTarget
	}

	if c.Badges.Dir == "" {
		return ErrEmptyBadgeDir
	}

	if c.Dashboard.Dir == "" {
		return ErrEmptyDashboardDir
	}

	return nil
}
