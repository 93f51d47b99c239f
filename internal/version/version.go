// Package version exposes build metadata for the version flag.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time via ldflags; a plain `go build` falls back to the
// module build info instead.
var (
	Commit    = ""
	BuildTime = ""
)

// String returns the version string (commit-hash based, no semver).
func String() string {
	commit := Commit
	if commit == "" {
		commit = vcsRevision()
	}
	built := BuildTime
	if built == "" {
		built = "unknown"
	}
	return fmt.Sprintf("roster dev (commit: %s, built: %s)", short(commit), built)
}

// vcsRevision reads the commit hash stamped by the Go toolchain.
func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			return setting.Value
		}
	}
	return "unknown"
}

func short(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
