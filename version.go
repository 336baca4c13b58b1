package naklo

import "runtime"

// Version is the semantic version of naklo.
const Version = "3.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// VersionInfo contains detailed version information.
type VersionInfo struct {
	// Version is the semantic version (e.g., "3.1.0")
	Version string
	// GitCommit is the git commit hash (set via ldflags at build time)
	GitCommit string
	// BuildTime is the build timestamp (set via ldflags at build time)
	BuildTime string
	// GoVersion is the Go version used to build
	GoVersion string
}

// GetVersionInfo returns detailed version information.
//
// GitCommit and BuildTime are populated at build time via -ldflags and
// read "unknown" otherwise:
//
//	go build -ldflags="-X github.com/j39m/naklo.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/j39m/naklo.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/naklo
func GetVersionInfo() VersionInfo {
	goVer := goVersion
	if goVer == "unknown" {
		goVer = runtime.Version()
	}

	return VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: goVer,
	}
}

// Variables populated at build time via -ldflags.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)
