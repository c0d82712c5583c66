// Package buildinfo carries the values stamped in with
//
//	-ldflags "-X pixelpad/internal/buildinfo.Version=... -X pixelpad/internal/buildinfo.Commit=..."
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short is the version if one was stamped, else the commit, else "dev".
// It goes in the window title and the boot log line.
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		return Commit
	}
	return "dev"
}

// Long includes every stamped field, for -version output.
func Long() string {
	return fmt.Sprintf("pixelpad %s (commit %s, built %s)", Version, Commit, Date)
}
