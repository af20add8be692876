// pkg/core/config.go
package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/arc-language/portlib/pkg/env"
)

// ErrNoSuiteDir indicates the project root needed to locate the library directory is not configured
var ErrNoSuiteDir = errors.New("suite directory not configured")

// Config holds portlib configuration
type Config struct {
	// SuiteDir is the root of the project being built
	SuiteDir string `yaml:"suite_dir"`

	// LibDir is the project's library output directory, relative to SuiteDir unless absolute
	LibDir string `yaml:"lib_dir"`

	// LocallyBuilt lists short names of libraries the project builds itself; they are never captured
	LocallyBuilt []string `yaml:"locally_built"`

	// SystemLibraries are paths present on every target system; links to them are copied as links
	SystemLibraries []string `yaml:"system_libraries"`

	// ReleaseExempt lists platforms where release builds may rely on system libraries
	ReleaseExempt ReleaseExempt `yaml:"release_exempt"`

	// OverrideEnv and ReleaseEnv name the environment variables that drive copylib
	OverrideEnv string `yaml:"override_env"`
	ReleaseEnv  string `yaml:"release_env"`

	// ToolTimeout bounds each external tool invocation; zero means no timeout
	ToolTimeout time.Duration `yaml:"tool_timeout"`

	Debug bool `yaml:"debug"`
}

// ReleaseExempt matches platforms by architecture or OS
type ReleaseExempt struct {
	Arch []string `yaml:"arch"`
	OS   []string `yaml:"os"`
}

// Matches reports whether either the architecture or the OS is exempt
func (r ReleaseExempt) Matches(arch, goos string) bool {
	for _, a := range r.Arch {
		if a == arch {
			return true
		}
	}
	for _, o := range r.OS {
		if o == goos {
			return true
		}
	}
	return false
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		SuiteDir:     os.Getenv("PORTLIB_SUITE_DIR"),
		LibDir:       "lib",
		LocallyBuilt: []string{"R", "Rblas", "Rlapack", "jniboot"},
		SystemLibraries: []string{
			"/usr/lib/libSystem.B.dylib",
			"/usr/lib/libSystem.dylib",
		},
		ReleaseExempt: ReleaseExempt{
			Arch: []string{"sparcv9", "sparc64"},
			OS:   []string{"solaris"},
		},
		OverrideEnv: env.DefaultOverrideVar,
		ReleaseEnv:  env.DefaultReleaseVar,
	}
}

// DefaultConfigPath returns $HOME/.config/portlib/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "portlib", "config.yaml"), nil
}

// LoadConfig loads configuration from file. Keys missing from the file keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.SuiteDir != "" {
		if cfg.SuiteDir, err = homedir.Expand(cfg.SuiteDir); err != nil {
			return nil, fmt.Errorf("expanding suite_dir: %w", err)
		}
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	path, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// LibraryDir returns the project's library output directory
func (c *Config) LibraryDir() (string, error) {
	if filepath.IsAbs(c.LibDir) {
		return c.LibDir, nil
	}
	if c.SuiteDir == "" {
		return "", ErrNoSuiteDir
	}
	return filepath.Join(c.SuiteDir, c.LibDir), nil
}

// IsLocallyBuilt reports whether a file name is one of the project's own libraries
func (c *Config) IsLocallyBuilt(fileName, extension string) bool {
	for _, name := range c.LocallyBuilt {
		if env.NewLibrarySpec(name, extension).PlainName() == fileName {
			return true
		}
	}
	return false
}

// IsSystemLibrary reports whether path is one of the configured system libraries
func (c *Config) IsSystemLibrary(path string) bool {
	for _, lib := range c.SystemLibraries {
		if lib == path {
			return true
		}
	}
	return false
}
