// resolver.go
package copylib

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/arc-language/portlib/pkg/binmeta"
)

// Resolver finds the versioned file a library candidate really is
type Resolver struct {
	backend binmeta.Backend
	logger  *zap.SugaredLogger
}

// NewResolver creates a resolver over a metadata backend
func NewResolver(backend binmeta.Backend, logger *zap.SugaredLogger) *Resolver {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Resolver{backend: backend, logger: logger}
}

// Resolve maps a candidate file of library shortName to its real path.
//
// With @rpath-capable binaries the real path is the candidate's dependency
// entry naming lib<shortName>. Otherwise it is the candidate's directory
// joined with the SONAME, starting at lib<shortName>.
func (r *Resolver) Resolve(ctx context.Context, shortName, candidatePath string) (*ResolvedLibrary, error) {
	needle := "lib" + shortName

	var realPath string
	if r.backend.SupportsRPath() {
		ref, err := r.Reference(ctx, needle, candidatePath)
		if err != nil {
			return nil, err
		}
		if ref == "" {
			return nil, fmt.Errorf("%w: %s does not reference %s", ErrUnresolved, candidatePath, needle)
		}
		realPath = ref
	} else {
		soname, err := r.backend.Soname(ctx, candidatePath)
		if err != nil {
			if errors.Is(err, binmeta.ErrNoSoname) {
				return nil, fmt.Errorf("%w: %w", ErrUnresolved, err)
			}
			return nil, err
		}
		ix := strings.Index(soname, needle+".")
		if ix < 0 {
			return nil, fmt.Errorf("%w: SONAME %q of %s does not name %s", ErrUnresolved, soname, candidatePath, needle)
		}
		realPath = filepath.Join(filepath.Dir(candidatePath), soname[ix:])
	}

	resolved := &ResolvedLibrary{
		DeclaredPath: candidatePath,
		RealPath:     realPath,
		UsesRPath:    strings.HasPrefix(realPath, binmeta.RPathToken),
	}
	r.logger.Debugw("resolved library", "lib", shortName, "declared", candidatePath, "real", realPath, "rpath", resolved.UsesRPath)
	return resolved, nil
}

// Reference returns the first dependency of binary whose path contains
// needle, or "" when there is none
func (r *Resolver) Reference(ctx context.Context, needle, binary string) (string, error) {
	deps, err := r.backend.Dependencies(ctx, binary)
	if err != nil {
		return "", err
	}
	for _, dep := range deps {
		if strings.Contains(dep, needle) {
			return dep, nil
		}
	}
	return "", nil
}
