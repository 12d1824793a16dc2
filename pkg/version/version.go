// Package version exposes build identification injected at link time.
package version

// Set via -ldflags at release build time; the zero values identify a
// from-source build.
var (
	// Version is the released semantic version.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
