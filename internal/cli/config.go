package cli

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arc-language/portlib/pkg/core"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the portlib configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to the config file",
	Long: `Write the configuration portlib would currently use, defaults merged
with any global flags, to --config or $HOME/.config/portlib/config.yaml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := writeConfigFile(config, cfgFile, forceInit)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(config)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

// writeConfigFile saves cfg to path, or the default location when path is
// empty, refusing to replace an existing file unless force is set
func writeConfigFile(cfg *core.Config, path string, force bool) (string, error) {
	if path == "" {
		p, err := core.DefaultConfigPath()
		if err != nil {
			return "", err
		}
		path = p
	}

	path, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expanding config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	if err := core.SaveConfig(cfg, path); err != nil {
		return "", err
	}
	return path, nil
}
