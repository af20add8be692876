// internal/cli/updatelib.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var updatelibCmd = &cobra.Command{
	Use:   "updatelib <dir>",
	Short: "Rewrite references to captured libraries to @rpath",
	Long: `For every library in dir, rewrite absolute references to libraries
captured into the project library directory so they use @rpath/<file>.
Only macOS binaries need this; elsewhere the command does nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdatelib,
}

func runUpdatelib(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	n, err := m.UpdateLib(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if config.Debug {
		fmt.Printf("Patched %d references in %s\n", n, args[0])
	}
	return nil
}
