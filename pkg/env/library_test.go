package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibrarySpec(t *testing.T) {
	spec := NewLibrarySpec("pcre", ".dylib")
	assert.Equal(t, "libpcre.", spec.FilePrefix)
	assert.Equal(t, "dylib", spec.Extension)
	assert.Equal(t, "libpcre.dylib", spec.PlainName())
	assert.True(t, spec.Matches("libpcre.1.dylib"))
	assert.False(t, spec.Matches("libpcreposix.dylib"))
}

func TestParseLinkerFlags(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected []string
	}{
		{
			name:     "empty",
			value:    "",
			expected: nil,
		},
		{
			name:     "plain flags",
			value:    "-L/opt/pcre/lib -L/opt/zlib/lib",
			expected: []string{"/opt/pcre/lib", "/opt/zlib/lib"},
		},
		{
			name:     "quoted flags and double spaces",
			value:    `"-L/opt/pcre/lib"  -L/opt/zlib/lib`,
			expected: []string{"/opt/pcre/lib", "/opt/zlib/lib"},
		},
		{
			name:     "bare directory",
			value:    "/usr/local/lib",
			expected: []string{"/usr/local/lib"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLinkerFlags(tt.value))
		})
	}
}

func TestIsSharedLibraryName(t *testing.T) {
	assert.True(t, IsSharedLibraryName("libz.dylib"))
	assert.True(t, IsSharedLibraryName("libz.so"))
	assert.True(t, IsSharedLibraryName("libz.so.1"))
	assert.False(t, IsSharedLibraryName("libz.a"))
	assert.False(t, IsSharedLibraryName("libz.solist"))
	assert.False(t, IsSharedLibraryName("libz.so", "dylib"))
}

func TestChooseCandidate(t *testing.T) {
	dir := t.TempDir()
	spec := NewLibrarySpec("pcre", "so")

	c, err := ChooseCandidate(filepath.Join(dir, "missing"), spec)
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = ChooseCandidate(dir, spec)
	require.NoError(t, err)
	assert.Nil(t, c)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "libpcre.so.3"), []byte("elf"), 0o644))
	c, err = ChooseCandidate(dir, spec)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "libpcre.so.3", c.Name)
	assert.False(t, c.IsSymlink)

	require.NoError(t, os.Symlink("libpcre.so.3", filepath.Join(dir, "libpcre.so")))
	c, err = ChooseCandidate(dir, spec)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "libpcre.so", c.Name)
	assert.True(t, c.IsSymlink)
	assert.Equal(t, filepath.Join(dir, "libpcre.so.3"), c.LinkTarget)
}

func TestLinkTargetAbsolute(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "libSystem.dylib")
	require.NoError(t, os.Symlink("/usr/lib/libSystem.B.dylib", link))

	target, isLink, err := LinkTarget(link)
	require.NoError(t, err)
	assert.True(t, isLink)
	assert.Equal(t, "/usr/lib/libSystem.B.dylib", target)
	assert.False(t, Exists(filepath.Join(dir, "nothing")))
}
