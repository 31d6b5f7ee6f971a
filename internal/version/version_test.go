package version

import (
	"runtime/debug"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func stub(t *testing.T, info *debug.BuildInfo) {
	t.Helper()
	prevRead, prevVersion, prevCommit, prevTime := readBuildInfo, Version, GitCommit, BuildTime
	t.Cleanup(func() {
		readBuildInfo, Version, GitCommit, BuildTime = prevRead, prevVersion, prevCommit, prevTime
	})
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, info != nil }
}

func TestStampedVersion(t *testing.T) {
	stub(t, nil)
	Version, GitCommit, BuildTime = "v1.2.0", "0123456789abcdef", "2026-01-02T03:04:05Z"

	info := Get()
	assert.Equal(t, "v1.2.0", info.Version)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), info.BuildTime)
	assert.Equal(t, "v1.2.0 (0123456)", Short())
	assert.True(t, IsRelease())
	assert.Contains(t, info.Detailed(), "Commit: 0123456789abcdef")
}

func TestVCSFallback(t *testing.T) {
	stub(t, &debug.BuildInfo{
		Main: debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "fedcba9876543210"},
			{Key: "vcs.modified", Value: "true"},
		},
	})
	Version, GitCommit, BuildTime = "dev", "unknown", "unknown"

	info := Get()
	assert.Equal(t, "dev-fedcba9", info.Version)
	assert.Equal(t, "fedcba9876543210", info.GitCommit)
	assert.True(t, info.Dirty)
	assert.True(t, info.BuildTime.IsZero())
	assert.False(t, IsRelease())
	assert.Equal(t, "dev-fedcba9", Short())
	assert.Contains(t, info.Detailed(), "(dirty)")
	assert.NotContains(t, info.Detailed(), "Built:")
}

func TestNoBuildInfo(t *testing.T) {
	stub(t, nil)
	Version, GitCommit, BuildTime = "", "", "garbage"

	assert.Equal(t, "dev", GetVersion())
	assert.Equal(t, "unknown", GetGitCommit())
	assert.True(t, Get().BuildTime.IsZero())
}
