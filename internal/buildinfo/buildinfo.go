// Package buildinfo holds the build metadata injected into cmd/lazyhg by the
// linker, filled in from the Go build info when the linker left defaults.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// shortRevision matches the node hash width hg prints by default.
const shortRevision = 12

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Set stores linker-injected values.
func Set(v, c, d, b string) {
	version = v
	commit = c
	date = d
	builtBy = b
}

// Version returns the build version string.
func Version() string { return version }

// Commit returns the build commit hash.
func Commit() string { return commit }

// Date returns the build date string.
func Date() string { return date }

// BuiltBy returns the build agent string.
func BuiltBy() string { return builtBy }

// Enrich fills values the linker left at their defaults from the build info
// the toolchain embeds, so `go install` builds still report something useful.
func Enrich() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	enrichFrom(info)
}

func enrichFrom(info *debug.BuildInfo) {
	if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}

	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}

	if commit == "none" {
		if rev := settings["vcs.revision"]; rev != "" {
			if len(rev) > shortRevision {
				rev = rev[:shortRevision]
			}
			if settings["vcs.modified"] == "true" {
				rev += "-dirty"
			}
			commit = rev
		}
	}
	if date == "unknown" && settings["vcs.time"] != "" {
		date = settings["vcs.time"]
	}
	if builtBy == "unknown" && info.GoVersion != "" {
		builtBy = info.GoVersion
	}
}

// Summary renders the multi-line text printed by --version.
func Summary() string {
	return fmt.Sprintf("%s\ncommit: %s\nbuilt at: %s\nbuilt by: %s", version, commit, date, builtBy)
}
