// Package build holds build-time metadata injected via ldflags.
package build

// These are overridden at release time with
// -ldflags "-X go.bittr.nu/spoolsync/internal/build.Version=…".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
