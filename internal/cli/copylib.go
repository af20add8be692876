// internal/cli/copylib.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var copylibCmd = &cobra.Command{
	Use:   "copylib <library> <target-dir>",
	Short: "Copy one library into a build's library directory",
	Long: `Copy a shared library found in PKG_LDFLAGS_OVERRIDE into the target
directory, link its version-agnostic name to the versioned copy and, on
macOS, switch its install name to @rpath.

Without a match a release build (FASTR_RELEASE set) fails, unless
FASTR_RELEASE=dev; otherwise the library is assumed to be installed in a
system location.

Examples:
  portlib copylib pcre build/lib
  PKG_LDFLAGS_OVERRIDE="-L/opt/pcre/lib" portlib copylib pcre build/lib`,
	Args: cobra.ExactArgs(2),
	RunE: runCopylib,
}

func runCopylib(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	outcome, err := m.CopyLib(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}

	if config.Debug {
		fmt.Printf("%s: %s\n", args[0], outcome)
	}
	return nil
}
