package platform

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopRunner struct{}

func (nopRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return nil, nil
}

func TestFamilyFor(t *testing.T) {
	tests := []struct {
		goos   string
		family Family
		ext    string
		rpath  bool
	}{
		{"darwin", Darwin, "dylib", true},
		{"linux", Linux, "so", false},
		{"solaris", SunOS, "so", false},
		{"illumos", SunOS, "so", false},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			f, err := FamilyFor(tt.goos)
			require.NoError(t, err)
			assert.Equal(t, tt.family, f)
			assert.Equal(t, tt.ext, f.SharedLibraryExtension())
			assert.Equal(t, tt.rpath, f.SupportsRPath())
		})
	}

	_, err := FamilyFor("windows")
	assert.ErrorIs(t, err, ErrUnsupportedOS)
}

func TestNew(t *testing.T) {
	p, err := New("solaris", "sparcv9")
	require.NoError(t, err)
	assert.Equal(t, SunOS, p.Family)
	assert.Equal(t, "sparcv9", p.Arch)
	assert.Contains(t, p.String(), "family: sunos")

	_, err = New("plan9", "386")
	assert.ErrorIs(t, err, ErrUnsupportedOS)
}

func TestResolveBackend(t *testing.T) {
	tests := []struct {
		goos    string
		backend string
		rpath   bool
	}{
		{"darwin", "otool", true},
		{"linux", "objdump", false},
		{"solaris", "elfdump", false},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			p, err := New(tt.goos, "amd64")
			require.NoError(t, err)

			b, err := ResolveBackend(p, nopRunner{})
			require.NoError(t, err)
			assert.Equal(t, tt.backend, b.Name())
			assert.Equal(t, tt.rpath, b.SupportsRPath())
			assert.NotEmpty(t, RequiredTools(p.Family))
		})
	}

	_, err := ResolveBackend(&Platform{OS: "plan9"}, nopRunner{})
	assert.ErrorIs(t, err, ErrUnsupportedOS)

	_, err = ResolveBackend(nil, nopRunner{})
	assert.Error(t, err)
}

func TestToolsNotInPath(t *testing.T) {
	missing := toolsNotInPath([]string{"portlib-no-such-tool", "portlib-no-such-tool"})
	assert.Equal(t, []string{"portlib-no-such-tool"}, missing)
	assert.Empty(t, toolsNotInPath(nil))
}
