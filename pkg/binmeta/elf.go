// elf.go
package binmeta

import (
	"context"
	"fmt"
)

// ElfBackend reads the dynamic section of ELF binaries through a dump tool.
// ELF references are plain SONAMEs, so there is nothing to rewrite.
type ElfBackend struct {
	runner  Runner
	command string
	args    []string
}

// NewObjdumpBackend creates the Linux backend (`objdump -p`)
func NewObjdumpBackend(runner Runner) *ElfBackend {
	return newElfBackend(runner, ObjdumpCommand, "-p")
}

// NewElfdumpBackend creates the Solaris backend (`elfdump -d`)
func NewElfdumpBackend(runner Runner) *ElfBackend {
	return newElfBackend(runner, ElfdumpCommand, "-d")
}

func newElfBackend(runner Runner, command string, args ...string) *ElfBackend {
	if runner == nil {
		runner = NewExecRunner(nil)
	}
	return &ElfBackend{
		runner:  runner,
		command: command,
		args:    args,
	}
}

func (b *ElfBackend) Name() string { return b.command }

func (b *ElfBackend) SupportsRPath() bool { return false }

// Dependencies returns the NEEDED entries
func (b *ElfBackend) Dependencies(ctx context.Context, path string) ([]string, error) {
	out, err := b.dump(ctx, path)
	if err != nil {
		return nil, err
	}
	return ParseNeeded(out), nil
}

// Soname returns the SONAME entry
func (b *ElfBackend) Soname(ctx context.Context, path string) (string, error) {
	out, err := b.dump(ctx, path)
	if err != nil {
		return "", err
	}
	soname := ParseSoname(out)
	if soname == "" {
		return "", fmt.Errorf("%w: %s", ErrNoSoname, path)
	}
	return soname, nil
}

func (b *ElfBackend) SetID(ctx context.Context, path, id string) error {
	return fmt.Errorf("%w: %s cannot set id of %s", ErrUnsupportedEdit, b.command, path)
}

func (b *ElfBackend) AddRPath(ctx context.Context, path, rpath string) error {
	return fmt.Errorf("%w: %s cannot add rpath to %s", ErrUnsupportedEdit, b.command, path)
}

func (b *ElfBackend) ChangeReference(ctx context.Context, path, oldRef, newRef string) error {
	return fmt.Errorf("%w: %s cannot change references in %s", ErrUnsupportedEdit, b.command, path)
}

func (b *ElfBackend) dump(ctx context.Context, path string) (string, error) {
	args := append(append([]string{}, b.args...), path)
	out, err := b.runner.Output(ctx, b.command, args...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrToolFailed, err)
	}
	return string(out), nil
}
