// internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arc-language/portlib"
	"github.com/arc-language/portlib/pkg/core"
	"github.com/arc-language/portlib/pkg/log"
)

var (
	cfgFile  string
	suiteDir string
	libDir   string
	debug    bool
	config   *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "portlib",
	Short: "Capture shared libraries into a portable build",
	Long: `portlib - portable native library capture

Copies the shared libraries a build links against into the build's own
library directory and relinks them, so the result runs on systems that do
not have those libraries installed at matching versions.

Libraries are searched in the -L directories of PKG_LDFLAGS_OVERRIDE.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/portlib/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&suiteDir, "suite-dir", "", "root directory of the project being built")
	rootCmd.PersistentFlags().StringVar(&libDir, "lib-dir", "", "project library directory, relative to the suite directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(copylibCmd)
	rootCmd.AddCommand(updatelibCmd)
	rootCmd.AddCommand(captureCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if suiteDir != "" {
		config.SuiteDir = suiteDir
	}
	if libDir != "" {
		config.LibDir = libDir
	}
	if debug {
		config.Debug = true
	}

	log.SetDebug(config.Debug)
}

func newManager() (*portlib.Manager, error) {
	m, err := portlib.NewManager(config, &portlib.Options{
		Logger: log.Logger.SugaredLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing manager: %w", err)
	}
	return m, nil
}
