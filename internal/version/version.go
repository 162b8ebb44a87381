// Package version reports build metadata.
package version

import (
	"runtime"
	"runtime/debug"
)

// Overridden at link time with -ldflags "-X".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String renders the version line printed by `learn-thai version`.
func String() string {
	v := Version
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	return "learn-thai " + v + " (commit=" + Commit + ", date=" + Date + ", go=" + runtime.Version() + ")"
}
