// portlib.go
package portlib

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/arc-language/portlib/pkg/binmeta"
	"github.com/arc-language/portlib/pkg/copylib"
	"github.com/arc-language/portlib/pkg/core"
	"github.com/arc-language/portlib/pkg/log"
	"github.com/arc-language/portlib/pkg/platform"
	"github.com/arc-language/portlib/pkg/registry"
)

// Re-export types for convenience
type (
	Config          = core.Config
	Environment     = core.Environment
	Platform        = platform.Platform
	Outcome         = copylib.Outcome
	ResolvedLibrary = copylib.ResolvedLibrary
	Manifest        = registry.Manifest
)

// Re-export outcomes
const (
	OutcomeCopied         = copylib.OutcomeCopied
	OutcomeAlreadyPresent = copylib.OutcomeAlreadyPresent
	OutcomeSystemLink     = copylib.OutcomeSystemLink
	OutcomeExempt         = copylib.OutcomeExempt
	OutcomeSystem         = copylib.OutcomeSystem
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Options replaces the pieces a Manager would otherwise detect
type Options struct {
	Platform *platform.Platform // Defaults to the running system
	Runner   binmeta.Runner     // Defaults to an exec runner
	Backend  binmeta.Backend    // Defaults to the platform's backend over Runner
	Lookup   core.LookupFunc    // Defaults to os.LookupEnv
	Logger   *zap.SugaredLogger // Defaults to the package logger
}

// Manager captures the libraries a build depends on
type Manager struct {
	config   *core.Config
	platform *platform.Platform
	backend  binmeta.Backend
	capturer *copylib.Capturer
	logger   *zap.SugaredLogger
}

// NewManager creates a manager for the running system
func NewManager(config *Config, opts *Options) (*Manager, error) {
	if config == nil {
		config = core.DefaultConfig()
	}
	if opts == nil {
		opts = &Options{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Logger.SugaredLogger
	}

	plat := opts.Platform
	if plat == nil {
		detected, err := platform.Detect()
		if err != nil {
			return nil, fmt.Errorf("detecting platform: %w", err)
		}
		plat = detected
	}

	backend := opts.Backend
	if backend == nil {
		runner := opts.Runner
		if runner == nil {
			r := binmeta.NewExecRunner(logger)
			r.Timeout = config.ToolTimeout
			runner = r
		}
		b, err := platform.ResolveBackend(plat, runner)
		if err != nil {
			return nil, fmt.Errorf("initializing backend: %w", err)
		}
		backend = b
	}

	capturer, err := copylib.New(copylib.Options{
		Config:   config,
		Platform: plat,
		Backend:  backend,
		Env:      core.LookupEnvironment(config, opts.Lookup),
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	if config.Debug {
		logger.Debugw("initialized manager", "platform", plat.String(), "backend", backend.Name())
	}

	return &Manager{
		config:   config,
		platform: plat,
		backend:  backend,
		capturer: capturer,
		logger:   logger,
	}, nil
}

// CopyLib makes library name available in targetDir
func (m *Manager) CopyLib(ctx context.Context, name, targetDir string) (Outcome, error) {
	if name == "" {
		return "", &Error{Op: "copylib", Err: fmt.Errorf("library name is required")}
	}
	outcome, err := m.capturer.CopyLib(ctx, name, targetDir)
	if err != nil {
		return "", &Error{Op: "copylib", Library: name, Err: err}
	}
	return outcome, nil
}

// UpdateLib rewrites references to captured libraries in every library in dir.
// It returns the number of references changed.
func (m *Manager) UpdateLib(ctx context.Context, dir string) (int, error) {
	n, err := m.capturer.UpdateLib(ctx, dir)
	if err != nil {
		return n, &Error{Op: "updatelib", Library: dir, Err: err}
	}
	return n, nil
}

// CaptureResult is the outcome for one manifest entry
type CaptureResult struct {
	Name    string
	Outcome Outcome
	Err     error // Set only for optional entries that failed
}

// Capture runs CopyLib for every manifest entry that applies to the running
// platform, then UpdateLib on targetDir. A failing optional entry is
// recorded and skipped; any other failure stops the capture.
func (m *Manager) Capture(ctx context.Context, manifest *Manifest, targetDir string) ([]CaptureResult, error) {
	if manifest == nil {
		return nil, &Error{Op: "capture", Err: fmt.Errorf("manifest is required")}
	}

	var results []CaptureResult
	for _, entry := range manifest.For(m.platform.Family.String()) {
		outcome, err := m.CopyLib(ctx, entry.Name, targetDir)
		if err != nil {
			if !entry.Optional {
				return results, err
			}
			m.logger.Warnw("skipping optional library", "lib", entry.Name, "error", err)
			results = append(results, CaptureResult{Name: entry.Name, Err: err})
			continue
		}
		results = append(results, CaptureResult{Name: entry.Name, Outcome: outcome})
	}

	if _, err := m.UpdateLib(ctx, targetDir); err != nil {
		return results, err
	}
	return results, nil
}

// Resolve reports what a candidate file of library name resolves to
func (m *Manager) Resolve(ctx context.Context, name, path string) (*ResolvedLibrary, error) {
	res, err := m.capturer.Resolver().Resolve(ctx, name, path)
	if err != nil {
		return nil, &Error{Op: "resolve", Library: name, Err: err}
	}
	return res, nil
}

// Dependencies lists the library references recorded in a binary
func (m *Manager) Dependencies(ctx context.Context, path string) ([]string, error) {
	return m.backend.Dependencies(ctx, path)
}

// InstallName returns the name a binary records for itself: the install
// name on Darwin, the SONAME elsewhere
func (m *Manager) InstallName(ctx context.Context, path string) (string, error) {
	return m.backend.Soname(ctx, path)
}

// CapturedLibraries lists the libraries captured into the project's library directory
func (m *Manager) CapturedLibraries() ([]string, error) {
	return m.capturer.CapturedLibraries()
}

// LibraryDir returns the project's library directory
func (m *Manager) LibraryDir() (string, error) {
	return m.config.LibraryDir()
}

// Platform returns the platform the manager runs for
func (m *Manager) Platform() *Platform {
	return m.platform
}

// Backend returns the name of the active metadata backend
func (m *Manager) Backend() string {
	return m.backend.Name()
}
