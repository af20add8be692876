// pkg/env/constants.go
package env

import "strings"

const (
	// DefaultOverrideVar names the linker-flags override listing extra library directories
	DefaultOverrideVar = "PKG_LDFLAGS_OVERRIDE"

	// DefaultReleaseVar marks a release build; "dev" relaxes the portability requirement
	DefaultReleaseVar = "FASTR_RELEASE"

	// ReleaseDev is the release value that only warns about non-portable builds
	ReleaseDev = "dev"

	// searchPathFlag prefixes directories in linker flags
	searchPathFlag = "-L"
)

// SharedLibraryExtensions returns every shared library extension portlib handles
func SharedLibraryExtensions() []string {
	return []string{"dylib", "so"}
}

// IsSharedLibraryName reports whether a file name looks like a shared library
// with one of the given extensions: "libz.dylib", "libz.so" or a versioned
// "libz.so.1".
func IsSharedLibraryName(name string, extensions ...string) bool {
	if len(extensions) == 0 {
		extensions = SharedLibraryExtensions()
	}
	for _, ext := range extensions {
		ext = "." + strings.TrimPrefix(ext, ".")
		if strings.HasSuffix(name, ext) || strings.Contains(name, ext+".") {
			return true
		}
	}
	return false
}
