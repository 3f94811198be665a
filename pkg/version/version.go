package version

import (
	"fmt"
	"runtime"
)

// Set at build time with -ldflags "-X github.com/canvassing/pax-rewards/pkg/version.Version=..."
var (
	Version   = "v0.1.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Short is the one-line form used by --version.
func Short() string {
	if GitCommit == "unknown" {
		return Version
	}
	commit := GitCommit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (%s)", Version, commit)
}

// Info returns version information
func Info() string {
	return fmt.Sprintf("Version:    %s\nGit Commit: %s\nBuild Time: %s\nGo Version: %s\nOS/Arch:    %s/%s",
		Version,
		GitCommit,
		BuildTime,
		runtime.Version(),
		runtime.GOOS,
		runtime.GOARCH,
	)
}
