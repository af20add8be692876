// otool.go
package binmeta

import (
	"context"
	"fmt"
)

// OtoolBackend inspects Mach-O binaries with otool and edits them with install_name_tool
type OtoolBackend struct {
	runner Runner
}

// NewOtoolBackend creates the Darwin backend
func NewOtoolBackend(runner Runner) *OtoolBackend {
	if runner == nil {
		runner = NewExecRunner(nil)
	}
	return &OtoolBackend{runner: runner}
}

func (b *OtoolBackend) Name() string { return "otool" }

func (b *OtoolBackend) SupportsRPath() bool { return true }

// Dependencies runs `otool -L`
func (b *OtoolBackend) Dependencies(ctx context.Context, path string) ([]string, error) {
	out, err := b.runner.Output(ctx, OtoolCommand, "-L", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrToolFailed, err)
	}
	return ParseOtoolDependencies(string(out)), nil
}

// Soname returns the install name reported by `otool -D`, the Mach-O
// counterpart of an ELF SONAME
func (b *OtoolBackend) Soname(ctx context.Context, path string) (string, error) {
	out, err := b.runner.Output(ctx, OtoolCommand, "-D", path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrToolFailed, err)
	}
	id := ParseOtoolID(string(out))
	if id == "" {
		return "", fmt.Errorf("%w: %s", ErrNoSoname, path)
	}
	return id, nil
}

// SetID runs `install_name_tool -id`
func (b *OtoolBackend) SetID(ctx context.Context, path, id string) error {
	return b.edit(ctx, "-id", id, path)
}

// AddRPath runs `install_name_tool -add_rpath`
func (b *OtoolBackend) AddRPath(ctx context.Context, path, rpath string) error {
	return b.edit(ctx, "-add_rpath", rpath, path)
}

// ChangeReference runs `install_name_tool -change`
func (b *OtoolBackend) ChangeReference(ctx context.Context, path, oldRef, newRef string) error {
	return b.edit(ctx, "-change", oldRef, newRef, path)
}

func (b *OtoolBackend) edit(ctx context.Context, args ...string) error {
	if _, err := b.runner.Output(ctx, InstallNameToolCommand, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrToolFailed, err)
	}
	return nil
}
