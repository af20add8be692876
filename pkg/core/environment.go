// pkg/core/environment.go
package core

import "os"

// Environment holds the build environment values that drive copylib
type Environment struct {
	LDFlagsOverride string // Linker flags listing directories to capture from
	HasOverride     bool   // True when the override variable is set, even if empty

	Release    string // Release marker value
	HasRelease bool   // True when the release variable is set
}

// LookupFunc reads one environment variable, like os.LookupEnv
type LookupFunc func(key string) (string, bool)

// LookupEnvironment reads the variables named by cfg through lookup.
// A nil lookup reads the process environment.
func LookupEnvironment(cfg *Config, lookup LookupFunc) Environment {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	var e Environment
	e.LDFlagsOverride, e.HasOverride = lookup(cfg.OverrideEnv)
	e.Release, e.HasRelease = lookup(cfg.ReleaseEnv)
	return e
}
