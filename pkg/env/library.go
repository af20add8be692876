// pkg/env/library.go
package env

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ParseLinkerFlags extracts search directories from a linker flags value such as
// `"-L/opt/pcre/lib" -L/opt/zlib/lib`. Tokens are split on single spaces,
// unquoted, and stripped of a leading -L.
func ParseLinkerFlags(value string) []string {
	var dirs []string
	for _, part := range strings.Split(value, " ") {
		dir := strings.Trim(part, `"`)
		dir = strings.TrimPrefix(dir, searchPathFlag)
		if dir == "" {
			continue
		}
		dirs = append(dirs, dir)
	}
	return dirs
}

// FindCandidates lists the files in dir that belong to the library, sorted by name.
// A missing directory yields no candidates and no error.
func FindCandidates(dir string, spec LibrarySpec) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if spec.Matches(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// ChooseCandidate picks the file to capture from dir: the version-agnostic
// name when present, otherwise the first matching file. Returns nil when the
// directory holds no file of the library.
func ChooseCandidate(dir string, spec LibrarySpec) (*Candidate, error) {
	names, err := FindCandidates(dir, spec)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, nil
	}

	name := names[0]
	if fileExists(filepath.Join(dir, spec.PlainName())) {
		name = spec.PlainName()
	}

	c := &Candidate{
		Dir:  dir,
		Name: name,
		Path: filepath.Join(dir, name),
	}

	target, isLink, err := LinkTarget(c.Path)
	if err != nil {
		return nil, err
	}
	c.IsSymlink = isLink
	c.LinkTarget = target
	return c, nil
}

// LinkTarget returns the absolute target of a symlink. Relative targets are
// resolved against the link's directory.
func LinkTarget(path string) (string, bool, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return "", false, err
	}
	if fi.Mode()&os.ModeSymlink == 0 {
		return "", false, nil
	}

	target, err := os.Readlink(path)
	if err != nil {
		return "", true, err
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return target, true, nil
}

// fileExists follows symlinks, so a dangling link does not exist
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Exists reports whether path exists, following symlinks
func Exists(path string) bool {
	return fileExists(path)
}
