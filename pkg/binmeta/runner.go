// runner.go
package binmeta

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Runner executes an external command and returns its standard output
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec
type ExecRunner struct {
	// Timeout bounds every invocation; zero waits until the tool exits
	Timeout time.Duration

	Logger *zap.SugaredLogger
}

// NewExecRunner creates a runner with no timeout
func NewExecRunner(logger *zap.SugaredLogger) *ExecRunner {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ExecRunner{Logger: logger}
}

// Output runs name with args and returns stdout. A non-zero exit is an error
// carrying the tool's stderr.
func (r *ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	if r.Logger != nil {
		r.Logger.Debugw("running tool", "cmd", name, "args", args)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, msg)
		}
		return nil, fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}

	return stdout.Bytes(), nil
}
