// Package buildinfo carries the version stamp injected at build time
// via -ldflags, shown in window titles.
package buildinfo

var (
	// Version is set at build time via -ldflags.
	Version = "dev"
	// Commit is set at build time via -ldflags.
	Commit = "unknown"
)

// Short returns a compact identifier for titles and diagnostics.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}
