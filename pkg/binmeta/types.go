// types.go
package binmeta

import (
	"context"
	"errors"
)

var (
	// ErrToolFailed indicates an external inspection or editing tool exited with an error
	ErrToolFailed = errors.New("binary tool failed")

	// ErrUnsupportedEdit indicates the backend cannot edit binaries of its format
	ErrUnsupportedEdit = errors.New("binary editing not supported")

	// ErrNoSoname indicates the binary carries no SONAME entry
	ErrNoSoname = errors.New("no SONAME entry")
)

// Backend reads and edits the library reference metadata of native binaries.
// There is one implementation per OS family.
type Backend interface {
	// Name returns the backend name (e.g., "otool", "objdump")
	Name() string

	// SupportsRPath reports whether references can be rewritten to @rpath
	SupportsRPath() bool

	// Dependencies returns the library references recorded in the binary,
	// in the order the tool prints them
	Dependencies(ctx context.Context, path string) ([]string, error)

	// Soname returns the logical library name embedded in the binary
	Soname(ctx context.Context, path string) (string, error)

	// SetID rewrites the binary's own install name
	SetID(ctx context.Context, path, id string) error

	// AddRPath appends an entry to the binary's runtime search path
	AddRPath(ctx context.Context, path, rpath string) error

	// ChangeReference rewrites one library reference in place
	ChangeReference(ctx context.Context, path, oldRef, newRef string) error
}
