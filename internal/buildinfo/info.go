// Package buildinfo holds the version metadata stamped into the liasse
// binary with -ldflags at build time.
package buildinfo

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
