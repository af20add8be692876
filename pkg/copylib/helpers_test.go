package copylib

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/arc-language/portlib/pkg/binmeta"
	"github.com/arc-language/portlib/pkg/core"
	"github.com/arc-language/portlib/pkg/platform"
)

// fakeBackend answers metadata queries from canned tables and records every call
type fakeBackend struct {
	rpath   bool
	deps    map[string][]string
	sonames map[string]string
	failOn  map[string]bool
	calls   []string
}

func newFakeBackend(rpath bool) *fakeBackend {
	return &fakeBackend{
		rpath:   rpath,
		deps:    make(map[string][]string),
		sonames: make(map[string]string),
		failOn:  make(map[string]bool),
	}
}

func (f *fakeBackend) record(op string, args ...string) error {
	f.calls = append(f.calls, strings.Join(append([]string{op}, args...), " "))
	if f.failOn[op] {
		return fmt.Errorf("%w: %s exited 1", binmeta.ErrToolFailed, op)
	}
	return nil
}

func (f *fakeBackend) Name() string { return "fake" }

func (f *fakeBackend) SupportsRPath() bool { return f.rpath }

func (f *fakeBackend) Dependencies(ctx context.Context, path string) ([]string, error) {
	if err := f.record("deps", path); err != nil {
		return nil, err
	}
	return f.deps[path], nil
}

func (f *fakeBackend) Soname(ctx context.Context, path string) (string, error) {
	if err := f.record("soname", path); err != nil {
		return "", err
	}
	s, ok := f.sonames[path]
	if !ok {
		return "", fmt.Errorf("%w: %s", binmeta.ErrNoSoname, path)
	}
	return s, nil
}

func (f *fakeBackend) SetID(ctx context.Context, path, id string) error {
	return f.record("setid", path, id)
}

func (f *fakeBackend) AddRPath(ctx context.Context, path, rpath string) error {
	return f.record("addrpath", path, rpath)
}

func (f *fakeBackend) ChangeReference(ctx context.Context, path, oldRef, newRef string) error {
	return f.record("change", path, oldRef, newRef)
}

// editCalls filters the recorded calls down to binary edits
func (f *fakeBackend) editCalls() []string {
	var edits []string
	for _, c := range f.calls {
		if strings.HasPrefix(c, "setid ") || strings.HasPrefix(c, "addrpath ") || strings.HasPrefix(c, "change ") {
			edits = append(edits, c)
		}
	}
	return edits
}

func newTestCapturer(t *testing.T, goos, goarch string, backend binmeta.Backend, cfg *core.Config, e core.Environment) *Capturer {
	t.Helper()

	plat, err := platform.New(goos, goarch)
	require.NoError(t, err)

	if cfg == nil {
		cfg = core.DefaultConfig()
	}

	c, err := New(Options{
		Config:   cfg,
		Platform: plat,
		Backend:  backend,
		Env:      e,
		Logger:   zaptest.NewLogger(t).Sugar(),
	})
	require.NoError(t, err)
	return c
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func symlink(t *testing.T, target, link string) {
	t.Helper()
	require.NoError(t, os.Symlink(target, link))
}

func readLink(t *testing.T, link string) string {
	t.Helper()
	target, err := os.Readlink(link)
	require.NoError(t, err)
	return target
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func dirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
