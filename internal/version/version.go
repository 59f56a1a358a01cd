// Package version carries build metadata stamped in with -ldflags.
package version

import "fmt"

var (
	// Version is the lasfield release.
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
)

// String renders the version line printed by the CLI.
func String() string {
	return fmt.Sprintf("lasfield version %s (%s)", Version, GitSHA)
}
