// pkg/env/types.go
package env

import "strings"

// LibrarySpec names one shared library the way the linker sees it
type LibrarySpec struct {
	ShortName  string // Library name (e.g., "pcre")
	FilePrefix string // "lib" + ShortName + "." (e.g., "libpcre.")
	Extension  string // Shared library extension without the dot: "so", "dylib"
}

// NewLibrarySpec builds the spec for a short name and extension
func NewLibrarySpec(shortName, extension string) LibrarySpec {
	return LibrarySpec{
		ShortName:  shortName,
		FilePrefix: "lib" + shortName + ".",
		Extension:  strings.TrimPrefix(extension, "."),
	}
}

// PlainName returns the version-agnostic file name (e.g., "libpcre.dylib")
func (s LibrarySpec) PlainName() string {
	return s.FilePrefix + s.Extension
}

// Matches reports whether a file name belongs to this library
func (s LibrarySpec) Matches(fileName string) bool {
	return strings.HasPrefix(fileName, s.FilePrefix)
}

// Candidate is a library file found in a search directory
type Candidate struct {
	Dir        string // Search directory the file was found in
	Name       string // File name (e.g., "libpcre.1.dylib")
	Path       string // Dir joined with Name
	IsSymlink  bool   // True when the entry itself is a symlink
	LinkTarget string // Absolute link target when IsSymlink is set
}
