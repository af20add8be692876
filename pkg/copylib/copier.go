// copier.go
package copylib

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/arc-language/portlib/pkg/binmeta"
)

// Copier copies a resolved library into a target directory and relinks it
type Copier struct {
	resolver *Resolver
	backend  binmeta.Backend
	logger   *zap.SugaredLogger
}

// NewCopier creates a copier
func NewCopier(resolver *Resolver, backend binmeta.Backend, logger *zap.SugaredLogger) *Copier {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Copier{
		resolver: resolver,
		backend:  backend,
		logger:   logger,
	}
}

// CopyAndRelink copies library shortName, found at candidatePath, into
// targetDir. The versioned file keeps its name and plainName becomes a
// symlink to it. On @rpath-capable platforms the copy's install name is set
// to @rpath/<plainName> and @loader_path/ is added to its rpath list.
func (c *Copier) CopyAndRelink(ctx context.Context, shortName, candidatePath, plainName, targetDir string) (*ResolvedLibrary, error) {
	resolved, err := c.resolver.Resolve(ctx, shortName, candidatePath)
	if err != nil {
		return nil, err
	}

	// An @rpath reference is not a file; the candidate holds the bytes
	source := resolved.RealPath
	if resolved.UsesRPath {
		source = candidatePath
	}

	dest := filepath.Join(targetDir, filepath.Base(source))
	n, err := copyFile(source, dest)
	if err != nil {
		return nil, fmt.Errorf("copying %s to %s: %w", source, targetDir, err)
	}
	c.logger.Infow("copied library",
		"lib", shortName,
		"from", source,
		"to", targetDir,
		"size", humanize.Bytes(uint64(n)),
		"real_path", resolved.RealPath,
	)

	if resolved.UsesRPath {
		return resolved, nil
	}

	versioned := filepath.Base(resolved.RealPath)
	plainPath := filepath.Join(targetDir, plainName)
	if versioned != plainName {
		if err := replaceSymlink(versioned, plainPath); err != nil {
			return nil, err
		}
		c.logger.Infow("linked library", "link", plainName, "target", versioned)
	}

	if c.backend.SupportsRPath() {
		id := binmeta.RPathToken + "/" + plainName
		c.logger.Infow("setting install name", "file", plainName, "id", id)
		if err := c.backend.SetID(ctx, plainPath, id); err != nil {
			return nil, fmt.Errorf("setting install name of %s: %w", plainPath, err)
		}
		c.logger.Infow("adding rpath", "file", plainName, "rpath", binmeta.LoaderPathToken)
		if err := c.backend.AddRPath(ctx, plainPath, binmeta.LoaderPathToken); err != nil {
			return nil, fmt.Errorf("adding rpath to %s: %w", plainPath, err)
		}
	}

	return resolved, nil
}

// replaceSymlink points link at target, removing whatever entry link names,
// including a dangling symlink
func replaceSymlink(target, link string) error {
	if _, err := os.Lstat(link); err == nil {
		if err := os.Remove(link); err != nil {
			return fmt.Errorf("removing %s: %w", link, err)
		}
	}
	if err := os.Symlink(target, link); err != nil {
		return fmt.Errorf("linking %s -> %s: %w", link, target, err)
	}
	return nil
}

// copyFile copies src to dst keeping src's permission bits plus owner write,
// which the metadata editor needs. An existing dst, including a symlink back
// to src, is replaced by real bytes. Copying a path onto itself is a no-op.
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return 0, err
	}

	if samePath(src, dst) {
		return fi.Size(), nil
	}
	if _, err := os.Lstat(dst); err == nil {
		if err := os.Remove(dst); err != nil {
			return 0, err
		}
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fi.Mode().Perm()|0o200)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return n, err
	}
	return n, out.Close()
}

// samePath reports whether a and b name the same directory entry. Only the
// parent directories are resolved, so a symlink never equals its target.
func samePath(a, b string) bool {
	return canonicalPath(a) == canonicalPath(b)
}

func canonicalPath(p string) string {
	dir, err := filepath.EvalSymlinks(filepath.Dir(p))
	if err != nil {
		return filepath.Clean(p)
	}
	return filepath.Join(dir, filepath.Base(p))
}
