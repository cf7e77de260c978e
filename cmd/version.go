package cmd

import "fmt"

// Version information, set from main via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// SetVersionInfo records build metadata and exposes it through --version.
func SetVersionInfo(v, c, d string) {
	Version, Commit, Date = v, c, d
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", v, c, d)
}
