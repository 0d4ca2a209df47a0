// Package version reports the build metadata stamped into the
// cobraassign binary via linker flags (-ldflags "-X ...").
package version

import "fmt"

// Build-time variables, overridden via -ldflags at release build time;
// a local "go build" leaves them at the defaults below.
var (
	number = "dev"
	commit = "unknown"
	date   = "unknown"
)

// BuildInfo describes one built cobraassign binary.
type BuildInfo struct {
	Number string
	Commit string
	Date   string
}

// Current returns the build metadata for the running binary.
func Current() BuildInfo {
	return BuildInfo{Number: number, Commit: commit, Date: date}
}

// String renders the build info the way `cobraassign version` prints it.
func (b BuildInfo) String() string {
	return fmt.Sprintf("cobraassign %s (commit: %s, built: %s)", b.Number, b.Commit, b.Date)
}
