// types.go
package copylib

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/arc-language/portlib/pkg/binmeta"
	"github.com/arc-language/portlib/pkg/core"
	"github.com/arc-language/portlib/pkg/env"
	"github.com/arc-language/portlib/pkg/platform"
)

var (
	// ErrUnresolved indicates the binary's metadata does not name the requested library
	ErrUnresolved = errors.New("library reference not resolved")

	// ErrReleaseRequiresLibrary indicates a strict release build could not capture a library
	ErrReleaseRequiresLibrary = errors.New("library required for release build")
)

// ResolvedLibrary is the outcome of resolving a candidate library file
type ResolvedLibrary struct {
	DeclaredPath string // Candidate file the search found (often a version symlink)
	RealPath     string // Versioned file the binary names itself by, or an @rpath reference
	UsesRPath    bool   // True when RealPath is an @rpath reference rather than a file
}

// Options configures a Capturer
type Options struct {
	Config   *core.Config
	Platform *platform.Platform
	Backend  binmeta.Backend
	Env      core.Environment
	Logger   *zap.SugaredLogger
}

// Capturer copies libraries into a build's library directory and rewrites
// references to them
type Capturer struct {
	config   *core.Config
	platform *platform.Platform
	backend  binmeta.Backend
	env      core.Environment
	logger   *zap.SugaredLogger

	resolver *Resolver
	copier   *Copier
}

// New creates a Capturer
func New(opts Options) (*Capturer, error) {
	if opts.Platform == nil {
		return nil, fmt.Errorf("platform is required")
	}
	if opts.Backend == nil {
		return nil, fmt.Errorf("backend is required")
	}
	if opts.Config == nil {
		opts.Config = core.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}

	resolver := NewResolver(opts.Backend, opts.Logger)
	return &Capturer{
		config:   opts.Config,
		platform: opts.Platform,
		backend:  opts.Backend,
		env:      opts.Env,
		logger:   opts.Logger,
		resolver: resolver,
		copier:   NewCopier(resolver, opts.Backend, opts.Logger),
	}, nil
}

// Spec returns the library spec for a short name on the capturer's platform
func (c *Capturer) Spec(shortName string) env.LibrarySpec {
	return env.NewLibrarySpec(shortName, c.platform.Family.SharedLibraryExtension())
}

// Resolver exposes the capturer's resolver
func (c *Capturer) Resolver() *Resolver {
	return c.resolver
}
