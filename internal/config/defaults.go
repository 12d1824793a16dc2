package config

// Artifact location defaults, relative to the repository root.
const (
	DefaultTarget          = "target"
	DefaultBadgeDir        = "badges"
	DefaultDashboardDir    = "target/site/qa-dashboard"
	DefaultBundleDir       = "ui/qa-dashboard/dist"
	DefaultDashboardHelper = "scripts/serve_quality_dashboard.py"
)

// Matrix cell defaults, shown in the summary header outside CI.
const (
	DefaultMatrixOS   = "unknown-os"
	DefaultMatrixJava = "unknown"
)

// DefaultRunPlaceholder stands in for every run-metadata identifier the
// environment does not provide.
const DefaultRunPlaceholder = "local"

// commitShortLen is the number of commit hash characters kept for display.
const commitShortLen = 7
