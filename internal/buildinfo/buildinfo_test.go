package buildinfo

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGetters(t *testing.T) {
	Set("1.2.3", "abc123", "2025-01-01", "ci")

	assert.Equal(t, "1.2.3", Version())
	assert.Equal(t, "abc123", Commit())
	assert.Equal(t, "2025-01-01", Date())
	assert.Equal(t, "ci", BuiltBy())
}

func TestEnrichOverwritesDefaults(t *testing.T) {
	Set("dev", "none", "unknown", "unknown")
	Enrich()

	assert.NotEqual(t, "unknown", BuiltBy(), "expected builtBy to be enriched with Go version")
}

func TestEnrichPreservesExplicitValues(t *testing.T) {
	Set("v1.0.0", "deadbeef", "2025-06-01", "goreleaser")
	Enrich()

	assert.Equal(t, "deadbeef", Commit())
	assert.Equal(t, "goreleaser", BuiltBy())
}

func TestEnrichFromBuildSettings(t *testing.T) {
	Set("dev", "none", "unknown", "unknown")
	enrichFrom(&debug.BuildInfo{
		GoVersion: "go1.25.1",
		Main:      debug.Module{Path: "github.com/chmouel/lazyhg", Version: "v0.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123456789abcdef01234567"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	})

	assert.Equal(t, "v0.4.0", Version())
	assert.Equal(t, "0123456789ab-dirty", Commit())
	assert.Equal(t, "2026-10-01T12:00:00Z", Date())
	assert.Equal(t, "go1.25.1", BuiltBy())
}

func TestEnrichFromDevelBuild(t *testing.T) {
	Set("dev", "none", "unknown", "unknown")
	enrichFrom(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})

	assert.Equal(t, "dev", Version())
	assert.Equal(t, "none", Commit())
	assert.Equal(t, "unknown", Date())
	assert.Equal(t, "unknown", BuiltBy())
}

func TestSummary(t *testing.T) {
	Set("v0.3.0", "cafe", "2026-01-02", "make")
	assert.Equal(t, "v0.3.0\ncommit: cafe\nbuilt at: 2026-01-02\nbuilt by: make", Summary())
}
