package utils

import (
	"strings"

	"github.com/jwalton/gchalk"
)

// PrettyVersion returns a colored version id for terminal printing.
// Mod loader suffixes like "-forge14.23.5" are dimmed.
func PrettyVersion(version string) string {
	// we trim first to avoid broken colors
	if len(version) >= 32 {
		version = version[:28] + " …"
	}

	versionParts := strings.SplitN(version, "-", 2)
	prettyVersion := gchalk.Bold(versionParts[0])
	if len(versionParts) == 2 {
		prettyVersion += gchalk.Dim("-" + versionParts[1])
	}

	return prettyVersion
}
