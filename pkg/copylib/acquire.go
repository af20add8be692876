// acquire.go
package copylib

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/arc-language/portlib/pkg/env"
)

// Outcome reports which branch CopyLib took
type Outcome string

const (
	// OutcomeCopied means the library was copied from an override directory
	OutcomeCopied Outcome = "copied"
	// OutcomeAlreadyPresent means the target directory already had the file
	OutcomeAlreadyPresent Outcome = "present"
	// OutcomeSystemLink means a link to a system library was created
	OutcomeSystemLink Outcome = "system-link"
	// OutcomeExempt means the platform is exempt from capturing in release builds
	OutcomeExempt Outcome = "exempt"
	// OutcomeSystem means the library is assumed to be in a system location
	OutcomeSystem Outcome = "system"
)

// CopyLib makes library shortName available in targetDir.
//
// When the linker-flags override is set its directories are searched in
// order and the first one holding any file of the library wins. Without a
// match, a release build fails unless the platform is exempt or the release
// is "dev"; any other build assumes the library is in a system location.
func (c *Capturer) CopyLib(ctx context.Context, shortName, targetDir string) (Outcome, error) {
	spec := c.Spec(shortName)

	if c.env.HasOverride {
		outcome, found, err := c.copyFromOverride(ctx, spec, targetDir)
		if err != nil {
			return "", err
		}
		if found {
			return outcome, nil
		}
	}

	if c.env.HasRelease {
		if c.config.ReleaseExempt.Matches(c.platform.Arch, c.platform.OS) {
			return OutcomeExempt, nil
		}
		if c.env.Release == env.ReleaseDev {
			c.logger.Warnf("%s not found in %s, but required with %s", shortName, c.config.OverrideEnv, c.config.ReleaseEnv)
			c.logger.Warnf("the resulting release build will not be portable to another system")
		} else {
			return "", fmt.Errorf("%w: %s not found in %s, but required with %s",
				ErrReleaseRequiresLibrary, shortName, c.config.OverrideEnv, c.config.ReleaseEnv)
		}
	}

	c.logger.Infof("%s not found in %s, assuming system location", shortName, c.config.OverrideEnv)
	return OutcomeSystem, nil
}

func (c *Capturer) copyFromOverride(ctx context.Context, spec env.LibrarySpec, targetDir string) (Outcome, bool, error) {
	for _, dir := range env.ParseLinkerFlags(c.env.LDFlagsOverride) {
		if !env.Exists(dir) {
			continue
		}

		candidate, err := env.ChooseCandidate(dir, spec)
		if err != nil {
			return "", false, err
		}
		if candidate == nil {
			continue
		}

		if env.Exists(filepath.Join(targetDir, candidate.Name)) {
			c.logger.Debugw("library already in target", "lib", spec.ShortName, "file", candidate.Name)
			return OutcomeAlreadyPresent, true, nil
		}

		if candidate.IsSymlink {
			c.logger.Debugw("link target", "link", candidate.Path, "target", candidate.LinkTarget)
			if c.config.IsSystemLibrary(candidate.LinkTarget) {
				link := filepath.Join(targetDir, spec.PlainName())
				if err := replaceSymlink(candidate.LinkTarget, link); err != nil {
					return "", false, err
				}
				c.logger.Infow("linked system library", "lib", spec.ShortName, "link", link, "target", candidate.LinkTarget)
				return OutcomeSystemLink, true, nil
			}
		}

		if _, err := c.copier.CopyAndRelink(ctx, spec.ShortName, candidate.Path, spec.PlainName(), targetDir); err != nil {
			return "", false, err
		}
		return OutcomeCopied, true, nil
	}

	return "", false, nil
}
