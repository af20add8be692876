// pkg/platform/utils.go
package platform

import (
	"os/exec"
	"slices"
)

// toolsNotInPath returns the tools exec.LookPath cannot find, once each
func toolsNotInPath(tools []string) []string {
	var missing []string
	for _, tool := range tools {
		if slices.Contains(missing, tool) {
			continue
		}
		if _, err := exec.LookPath(tool); err != nil {
			missing = append(missing, tool)
		}
	}
	return missing
}
