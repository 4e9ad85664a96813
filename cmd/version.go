package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("safetypro", displayVersion(version))
	},
}

// displayVersion canonicalizes release versions ("1.2" → "v1.2.0") and
// leaves development builds untouched.
func displayVersion(v string) string {
	cand := v
	if len(cand) > 0 && cand[0] != 'v' {
		cand = "v" + cand
	}
	if !semver.IsValid(cand) {
		return v
	}
	return semver.Canonical(cand)
}
