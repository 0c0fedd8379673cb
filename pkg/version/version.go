package version

import "fmt"

// Build-time variables injected via -ldflags.
var (
	Version = "v1.13.1"
	Commit  = "none"
	Date    = "unknown"
)

// GdxVersion is the framework version written to generated projects by default.
const GdxVersion = "1.13.1"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetCommit returns the build commit hash.
func GetCommit() string {
	return Commit
}

// GetDate returns the build date.
func GetDate() string {
	return Date
}

// GetFullVersion returns a formatted full version string.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
