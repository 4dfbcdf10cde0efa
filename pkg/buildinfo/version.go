// Package buildinfo reports the version of the autoreadme binary.
//
// Release builds set the variables through ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/autoreadme/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/autoreadme/pkg/buildinfo.Commit=$(git rev-parse HEAD)"
//
// Otherwise Commit and Date are taken from the VCS stamp the go tool embeds.
package buildinfo

import (
	"fmt"
	"runtime/debug"
	"sync"
)

var (
	// Version is the semantic version of the autoreadme binary.
	Version = "1.0.0"

	// Commit is the git commit SHA.
	Commit = ""

	// Date is the commit or build timestamp.
	Date = ""
)

var stampOnce sync.Once

// fromSettings fills commit and date from build settings when they are unset.
func fromSettings(commit, date string, settings []debug.BuildSetting) (string, string) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "" {
				commit = s.Value
			}
		case "vcs.time":
			if date == "" {
				date = s.Value
			}
		}
	}
	if commit == "" {
		commit = "none"
	}
	if date == "" {
		date = "unknown"
	}
	return commit, date
}

func stamp() {
	stampOnce.Do(func() {
		var settings []debug.BuildSetting
		if info, ok := debug.ReadBuildInfo(); ok {
			settings = info.Settings
		}
		Commit, Date = fromSettings(Commit, Date, settings)
	})
}

// String returns the one-line build description.
func String() string {
	stamp()
	return fmt.Sprintf("autoreadme %s (commit %s, built %s)", Version, Commit, Date)
}

// Template returns the version template for cobra.
func Template() string {
	stamp()
	return fmt.Sprintf("{{.Name}} %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
