// pkg/platform/detect.go
package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrUnsupportedOS is returned for operating systems outside the known families
var ErrUnsupportedOS = errors.New("unsupported operating system")

// Family is the closed set of OS families portlib knows how to handle
type Family int

const (
	// Darwin binaries reference libraries by install name and support @rpath
	Darwin Family = iota + 1
	// Linux binaries carry an ELF SONAME, read with objdump
	Linux
	// SunOS binaries carry an ELF SONAME, read with elfdump
	SunOS
)

// FamilyFor maps a GOOS-style identifier to its family
func FamilyFor(goos string) (Family, error) {
	switch goos {
	case "darwin":
		return Darwin, nil
	case "linux":
		return Linux, nil
	case "solaris", "illumos", "sunos":
		return SunOS, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedOS, goos)
	}
}

// String returns the family name
func (f Family) String() string {
	switch f {
	case Darwin:
		return "darwin"
	case Linux:
		return "linux"
	case SunOS:
		return "sunos"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// SharedLibraryExtension returns the extension of shared libraries, without the dot
func (f Family) SharedLibraryExtension() string {
	if f == Darwin {
		return "dylib"
	}
	return "so"
}

// SupportsRPath reports whether binaries of this family embed @rpath references
func (f Family) SupportsRPath() bool {
	return f == Darwin
}

// Platform represents the detected system platform
type Platform struct {
	OS     string // darwin, linux, solaris
	Arch   string // amd64, arm64, sparcv9
	Family Family
}

// Detect detects the current platform
func Detect() (*Platform, error) {
	return New(runtime.GOOS, runtime.GOARCH)
}

// New builds a Platform for an explicit OS and architecture
func New(goos, goarch string) (*Platform, error) {
	family, err := FamilyFor(goos)
	if err != nil {
		return nil, err
	}
	return &Platform{
		OS:     goos,
		Arch:   goarch,
		Family: family,
	}, nil
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (family: %s, rpath: %v)",
		p.OS, p.Arch, p.Family, p.Family.SupportsRPath())
}
