// Package version reports build metadata stamped with -ldflags or read from
// the embedded module build info.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string    `json:"version" yaml:"version"`
	GitCommit string    `json:"git_commit" yaml:"git_commit"`
	BuildTime time.Time `json:"build_time" yaml:"build_time"`
	GoVersion string    `json:"go_version" yaml:"go_version"`
	Platform  string    `json:"platform" yaml:"platform"`
	Dirty     bool      `json:"dirty,omitempty" yaml:"dirty,omitempty"`
}

// Set at build time:
//
//	go build -ldflags "-X github.com/conneroisu/viewforge/internal/version.Version=v0.3.0"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Get collects the build information.
func Get() *BuildInfo {
	return &BuildInfo{
		Version:   GetVersion(),
		GitCommit: GetGitCommit(),
		BuildTime: parseBuildTime(BuildTime),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Dirty:     vcsSetting("vcs.modified") == "true",
	}
}

// GetVersion returns the stamped version, the module version, or a
// dev-<commit> placeholder.
func GetVersion() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	if rev := vcsSetting("vcs.revision"); len(rev) >= 7 {
		return "dev-" + rev[:7]
	}
	return "dev"
}

// GetGitCommit returns the git commit hash
func GetGitCommit() string {
	if GitCommit != "" && GitCommit != "unknown" {
		return GitCommit
	}
	if rev := vcsSetting("vcs.revision"); rev != "" {
		return rev
	}
	return "unknown"
}

// Short is the one-line form used by --version.
func Short() string {
	version := GetVersion()
	commit := GetGitCommit()
	if len(commit) >= 7 && !strings.HasPrefix(version, "dev-") {
		return fmt.Sprintf("%s (%s)", version, commit[:7])
	}
	return version
}

// Detailed lists every known field, one per line.
func (b *BuildInfo) Detailed() string {
	parts := []string{"Version: " + b.Version}
	if b.GitCommit != "unknown" {
		commit := b.GitCommit
		if b.Dirty {
			commit += " (dirty)"
		}
		parts = append(parts, "Commit: "+commit)
	}
	if !b.BuildTime.IsZero() {
		parts = append(parts, "Built: "+b.BuildTime.Format(time.RFC3339))
	}
	parts = append(parts, "Go: "+b.GoVersion, "Platform: "+b.Platform)
	return strings.Join(parts, "\n")
}

// IsRelease reports whether the version is a tagged release.
func IsRelease() bool {
	version := GetVersion()
	return version != "dev" && !strings.HasPrefix(version, "dev-")
}

func vcsSetting(key string) string {
	info, ok := readBuildInfo()
	if !ok {
		return ""
	}
	for _, setting := range info.Settings {
		if setting.Key == key {
			return setting.Value
		}
	}
	return ""
}

// parseBuildTime accepts RFC3339 and a few common variants; anything else
// is the zero time.
func parseBuildTime(s string) time.Time {
	if s == "" || s == "unknown" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
