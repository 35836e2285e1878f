// Package version reports which build of habit is running.
package version

import "runtime/debug"

// Set at build time via -ldflags "-X ...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Full returns "version (commit) date".
func Full() string {
	return Version + " (" + Commit + ") " + Date
}

func Short() string {
	return Version
}

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		fillFromBuildInfo(info)
	}
}

// fillFromBuildInfo replaces values still at their defaults with what
// `go install` recorded. Values set through ldflags win.
func fillFromBuildInfo(info *debug.BuildInfo) {
	if info == nil {
		return
	}

	if v := info.Main.Version; Version == "dev" && v != "" && v != "(devel)" {
		Version = v
	}

	for _, s := range info.Settings {
		if s.Value == "" {
			continue
		}
		switch {
		case s.Key == "vcs.revision" && Commit == "none":
			Commit = s.Value[:min(len(s.Value), 7)]
		case s.Key == "vcs.time" && Date == "unknown":
			Date = s.Value
		}
	}
}
