// errors.go
package portlib

import (
	"fmt"

	"github.com/arc-language/portlib/pkg/binmeta"
	"github.com/arc-language/portlib/pkg/copylib"
	"github.com/arc-language/portlib/pkg/core"
	"github.com/arc-language/portlib/pkg/platform"
)

var (
	// ErrToolFailed indicates an external binary tool exited with an error
	ErrToolFailed = binmeta.ErrToolFailed

	// ErrNoSoname indicates a binary records no install name or SONAME
	ErrNoSoname = binmeta.ErrNoSoname

	// ErrUnresolved indicates a binary's metadata does not name the requested library
	ErrUnresolved = copylib.ErrUnresolved

	// ErrReleaseRequiresLibrary indicates a strict release build could not capture a library
	ErrReleaseRequiresLibrary = copylib.ErrReleaseRequiresLibrary

	// ErrPlatformNotSupported indicates the platform is not supported
	ErrPlatformNotSupported = platform.ErrUnsupportedOS

	// ErrNoSuiteDir indicates the project root is not configured
	ErrNoSuiteDir = core.ErrNoSuiteDir
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Library string // Library name or directory if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Library != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Library, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
