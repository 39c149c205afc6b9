package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	info := Get()

	require.NotEmpty(t, info.GoVersion, "GoVersion should be populated")
	require.NotEmpty(t, info.CUESDKVersion, "CUESDKVersion should be populated")
	assert.Equal(t, Version, info.Version)
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:       "v1.0.0",
		GitCommit:     "abc123",
		BuildDate:     "2026-01-29",
		GoVersion:     "go1.25",
		CUESDKVersion: "v0.15.0",
	}

	str := info.String()

	assert.Contains(t, str, "apiforge version v1.0.0")
	assert.Contains(t, str, "abc123")
	assert.Contains(t, str, "2026-01-29")
	assert.Contains(t, str, "go1.25")
	assert.Contains(t, str, "v0.15.0")
}

func TestDependencyVersion(t *testing.T) {
	build := &debug.BuildInfo{Deps: []*debug.Module{
		{Path: "github.com/spf13/cobra", Version: "v1.10.2"},
		{Path: "cuelang.org/go", Version: "v0.15.3"},
		{Path: "example.com/replaced", Version: "v1.0.0", Replace: &debug.Module{Version: "v1.0.1"}},
	}}
	read := func() (*debug.BuildInfo, bool) { return build, true }

	tests := []struct {
		path string
		want string
	}{
		{"cuelang.org/go", "v0.15.3"},
		{"example.com/replaced", "v1.0.1"},
		{"example.com/missing", "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, dependencyVersion(read, tt.path))
		})
	}

	assert.Equal(t, "unknown", dependencyVersion(func() (*debug.BuildInfo, bool) { return nil, false }, cueModule))
}
