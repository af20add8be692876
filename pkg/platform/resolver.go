// pkg/platform/resolver.go
package platform

import (
	"fmt"

	"github.com/arc-language/portlib/pkg/binmeta"
)

// ResolveBackend returns the binary metadata backend for the platform's family
func ResolveBackend(platform *Platform, runner binmeta.Runner) (binmeta.Backend, error) {
	if platform == nil {
		return nil, fmt.Errorf("platform is required")
	}

	var backend binmeta.Backend
	switch platform.Family {
	case Darwin:
		backend = binmeta.NewOtoolBackend(runner)
	case Linux:
		backend = binmeta.NewObjdumpBackend(runner)
	case SunOS:
		backend = binmeta.NewElfdumpBackend(runner)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, platform.OS)
	}

	// Only a real runner needs the tools to be installed
	if _, ok := runner.(*binmeta.ExecRunner); ok {
		if missing := MissingTools(platform.Family); len(missing) > 0 {
			return nil, fmt.Errorf("backend '%s' requires %v in PATH", backend.Name(), missing)
		}
	}

	return backend, nil
}

// RequiredTools lists the command line tools a family's backend invokes
func RequiredTools(family Family) []string {
	switch family {
	case Darwin:
		return []string{binmeta.OtoolCommand, binmeta.InstallNameToolCommand}
	case Linux:
		return []string{binmeta.ObjdumpCommand}
	case SunOS:
		return []string{binmeta.ElfdumpCommand}
	default:
		return nil
	}
}

// MissingTools lists the required tools that are not in PATH
func MissingTools(family Family) []string {
	return toolsNotInPath(RequiredTools(family))
}
