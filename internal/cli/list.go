// internal/cli/list.go
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/arc-language/portlib/pkg/env"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List captured libraries",
	Long: `List the libraries captured into the project library directory,
with their size and the version-agnostic links pointing at them.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		return err
	}

	dir, err := m.LibraryDir()
	if err != nil {
		return err
	}

	captured, err := m.CapturedLibraries()
	if err != nil {
		return err
	}

	links, err := linksByTarget(dir)
	if err != nil {
		return err
	}

	fmt.Printf("Library directory: %s\n\n", dir)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Library", "Size", "Links"})
	for _, name := range captured {
		size := "?"
		if fi, err := os.Stat(filepath.Join(dir, name)); err == nil {
			size = humanize.Bytes(uint64(fi.Size()))
		}
		table.Append([]string{name, size, strings.Join(links[name], ", ")})
	}
	table.Render()

	return nil
}

// linksByTarget maps each file name in dir to the symlinks in dir pointing at it
func linksByTarget(dir string) (map[string][]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	links := make(map[string][]string)
	for _, entry := range entries {
		target, isLink, err := env.LinkTarget(filepath.Join(dir, entry.Name()))
		if err != nil || !isLink {
			continue
		}
		if filepath.Dir(target) != filepath.Clean(dir) {
			continue
		}
		base := filepath.Base(target)
		links[base] = append(links[base], entry.Name())
	}
	for _, names := range links {
		sort.Strings(names)
	}
	return links, nil
}
