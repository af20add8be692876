// internal/cli/capture.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-language/portlib/pkg/registry"
)

var captureManifest string

var captureCmd = &cobra.Command{
	Use:   "capture <target-dir>",
	Short: "Capture every library listed in a manifest",
	Long: `Run copylib for every library in the manifest that applies to this
platform, then updatelib on the target directory.

Manifest format (TOML):
  [[library]]
  name = "pcre"

  [[library]]
  name = "quadmath"
  platforms = ["linux"]
  optional = true`,
	Args: cobra.ExactArgs(1),
	RunE: runCapture,
}

func init() {
	captureCmd.Flags().StringVar(&captureManifest, "manifest", "libs.toml", "library manifest")
}

func runCapture(cmd *cobra.Command, args []string) error {
	manifest, err := registry.Load(captureManifest)
	if err != nil {
		return err
	}

	m, err := newManager()
	if err != nil {
		return err
	}

	results, err := m.Capture(cmd.Context(), manifest, args[0])
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", r.Name, r.Err)
			continue
		}
		fmt.Printf("✓ %s (%s)\n", r.Name, r.Outcome)
	}
	return err
}
