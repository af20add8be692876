package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/arc-language/portlib"
)

var infoCmd = &cobra.Command{
	Use:   "info <library> <path>",
	Short: "Show what a library file resolves to",
	Long: `Resolve a candidate library file the way copylib does and show the
versioned file it names, the name it records for itself, whether it is an
@rpath reference, and the libraries it depends on.`,
	Args: cobra.ExactArgs(2),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	rows, err := infoRows(cmd.Context(), m, args[0], args[1])
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Field", "Value"})
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()

	return nil
}

func infoRows(ctx context.Context, m *portlib.Manager, lib, path string) ([][]string, error) {
	res, err := m.Resolve(ctx, lib, path)
	if err != nil {
		return nil, err
	}

	// a library without a recorded name is still worth describing
	name, err := m.InstallName(ctx, path)
	if errors.Is(err, portlib.ErrNoSoname) {
		name = "-"
	} else if err != nil {
		return nil, fmt.Errorf("reading install name: %w", err)
	}

	deps, err := m.Dependencies(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("listing dependencies: %w", err)
	}

	return [][]string{
		{"Library", lib},
		{"Platform", m.Platform().String()},
		{"Backend", m.Backend()},
		{"Declared", res.DeclaredPath},
		{"Real", res.RealPath},
		{"Install name", name},
		{"@rpath", fmt.Sprintf("%v", res.UsesRPath)},
		{"Depends on", strings.Join(deps, "\n")},
	}, nil
}
