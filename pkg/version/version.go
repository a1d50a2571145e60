// Package version holds build information, set with -ldflags at release
// time.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = "v0.1.0"
	Commit  = ""
)

// String returns the version, with the VCS revision when one is known.
func String() string {
	commit := Commit
	if commit == "" {
		commit = vcsRevision()
	}
	if commit == "" {
		return Version
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}
	return fmt.Sprintf("%s (%s)", Version, commit)
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}
