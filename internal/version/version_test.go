package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoString(t *testing.T) {
	i := Info{Version: "dev", GoVersion: "go1.25.0", Platform: "linux/amd64"}
	assert.Equal(t, "folio dev", i.Short())
	assert.Equal(t, "folio dev (go1.25.0, linux/amd64)", i.String())

	i = Info{Version: "1.2.0", Commit: "0123456789abcdef", Date: "2026-10-01", GoVersion: "go1.25.0", Platform: "darwin/arm64"}
	assert.Equal(t, "folio 1.2.0 (commit 0123456789ab, built 2026-10-01, go1.25.0, darwin/arm64)", i.String())
}

func TestFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		GoVersion: "go1.25.1",
		Main:      debug.Module{Path: "github.com/folio-term/folio", Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-09-30T12:00:00Z"},
		},
	}
	got := fromBuildInfo(Info{Version: "dev"}, bi)
	assert.Equal(t, "0.3.1", got.Version)
	assert.Equal(t, "abc123", got.Commit)
	assert.Equal(t, "2026-09-30T12:00:00Z", got.Date)
	assert.Equal(t, "go1.25.1", got.GoVersion)

	// Linker-set values win.
	got = fromBuildInfo(Info{Version: "1.0.0", Commit: "fff"}, bi)
	assert.Equal(t, "1.0.0", got.Version)
	assert.Equal(t, "fff", got.Commit)

	bi.Main.Version = "(devel)"
	assert.Equal(t, "dev", fromBuildInfo(Info{Version: "dev"}, bi).Version)
}
