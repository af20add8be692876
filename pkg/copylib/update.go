// update.go
package copylib

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arc-language/portlib/pkg/binmeta"
	"github.com/arc-language/portlib/pkg/env"
)

// CapturedLibraries lists the libraries copied into the project's library
// directory: regular files with the platform's shared library extension that
// are neither symlinks nor built by the project itself
func (c *Capturer) CapturedLibraries() ([]string, error) {
	libDir, err := c.config.LibraryDir()
	if err != nil {
		return nil, err
	}

	ext := c.platform.Family.SharedLibraryExtension()
	entries, err := os.ReadDir(libDir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", libDir, err)
	}

	var captured []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() {
			continue
		}
		if !env.IsSharedLibraryName(name, ext) {
			continue
		}
		if c.config.IsLocallyBuilt(name, ext) {
			continue
		}
		captured = append(captured, name)
	}
	return captured, nil
}

// UpdateLib rewrites, in every library in libDir, absolute references to a
// captured library into @rpath/<captured file>. References that already use
// @rpath and files that are symlinks are left alone.
func (c *Capturer) UpdateLib(ctx context.Context, libDir string) (int, error) {
	if !c.backend.SupportsRPath() {
		c.logger.Infow("references need no patching", "backend", c.backend.Name())
		return 0, nil
	}

	captured, err := c.CapturedLibraries()
	if err != nil {
		return 0, err
	}

	entries, err := os.ReadDir(libDir)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", libDir, err)
	}

	var patchees []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if env.IsSharedLibraryName(entry.Name()) {
			patchees = append(patchees, entry.Name())
		}
	}

	changed := 0
	for _, lib := range patchees {
		target := filepath.Join(libDir, lib)
		for _, capLib := range captured {
			ref, err := c.resolver.Reference(ctx, capLib, target)
			if err != nil {
				return changed, fmt.Errorf("inspecting %s: %w", target, err)
			}
			if ref == "" || strings.Contains(ref, binmeta.RPathToken) {
				continue
			}

			newRef := binmeta.RPathToken + "/" + capLib
			if err := c.backend.ChangeReference(ctx, target, ref, newRef); err != nil {
				return changed, fmt.Errorf("patching %s: %w", target, err)
			}
			c.logger.Infow("patched reference", "file", lib, "from", ref, "to", newRef)
			changed++
		}
	}

	return changed, nil
}
