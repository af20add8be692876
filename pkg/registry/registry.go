// pkg/registry/registry.go
package registry

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Entry is one library a build captures
type Entry struct {
	Name      string   `toml:"name"`
	Platforms []string `toml:"platforms"` // OS families (darwin, linux, sunos); empty means all
	Optional  bool     `toml:"optional"`  // Failures are logged instead of failing the capture
}

// Manifest is the parsed library manifest, e.g.
//
//	[[library]]
//	name = "pcre"
//
//	[[library]]
//	name = "quadmath"
//	platforms = ["linux"]
type Manifest struct {
	Libraries []Entry `toml:"library"`
}

// Load reads and parses a manifest file
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("registry: manifest '%s' not found", path)
		}
		return nil, fmt.Errorf("registry: reading '%s': %w", path, err)
	}

	var m Manifest
	if _, err := toml.Decode(string(data), &m); err != nil {
		return nil, fmt.Errorf("registry: failed to parse '%s': %w", path, err)
	}

	seen := make(map[string]bool)
	for i, e := range m.Libraries {
		if e.Name == "" {
			return nil, fmt.Errorf("registry: library #%d in '%s' has no name", i+1, path)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("registry: library '%s' listed twice in '%s'", e.Name, path)
		}
		seen[e.Name] = true
	}

	return &m, nil
}

// For returns the entries that apply to an OS family, in manifest order
func (m *Manifest) For(family string) []Entry {
	var entries []Entry
	for _, e := range m.Libraries {
		if e.AppliesTo(family) {
			entries = append(entries, e)
		}
	}
	return entries
}

// AppliesTo reports whether the entry is captured on an OS family
func (e Entry) AppliesTo(family string) bool {
	if len(e.Platforms) == 0 {
		return true
	}
	for _, p := range e.Platforms {
		if p == family {
			return true
		}
	}
	return false
}
