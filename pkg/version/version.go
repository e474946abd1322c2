package version

import (
	"fmt"
	"runtime"
)

var (
	// Build information - these will be set via ldflags during build
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info holds version information
type Info struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
	Platform  string
}

// GetInfo returns version information
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a formatted version string
func (i Info) String() string {
	return fmt.Sprintf("dbgconsole version %s\ncommit: %s\nbuilt: %s\ngo: %s\nplatform: %s\n",
		i.Version, i.Commit, i.Date, i.GoVersion, i.Platform)
}
