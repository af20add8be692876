package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "lib", cfg.LibDir)
	assert.Equal(t, "PKG_LDFLAGS_OVERRIDE", cfg.OverrideEnv)
	assert.Equal(t, "FASTR_RELEASE", cfg.ReleaseEnv)
	assert.Contains(t, cfg.SystemLibraries, "/usr/lib/libSystem.B.dylib")
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `suite_dir: /work/fastr
locally_built: [R, Rblas]
tool_timeout: 30s
debug: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/work/fastr", cfg.SuiteDir)
	assert.Equal(t, []string{"R", "Rblas"}, cfg.LocallyBuilt)
	assert.Equal(t, 30*time.Second, cfg.ToolTimeout)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "lib", cfg.LibDir)
	assert.Equal(t, []string{"solaris"}, cfg.ReleaseExempt.OS)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locally_built: {"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.SuiteDir = "/work/fastr"
	cfg.LibDir = "/abs/lib"

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLibraryDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SuiteDir = ""
	_, err := cfg.LibraryDir()
	assert.ErrorIs(t, err, ErrNoSuiteDir)

	cfg.SuiteDir = "/work/fastr"
	dir, err := cfg.LibraryDir()
	require.NoError(t, err)
	assert.Equal(t, "/work/fastr/lib", dir)

	cfg.LibDir = "/opt/fastr/lib"
	dir, err = cfg.LibraryDir()
	require.NoError(t, err)
	assert.Equal(t, "/opt/fastr/lib", dir)
}

func TestConfigPredicates(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, cfg.IsLocallyBuilt("libR.dylib", "dylib"))
	assert.True(t, cfg.IsLocallyBuilt("libjniboot.dylib", "dylib"))
	assert.False(t, cfg.IsLocallyBuilt("libpcre.1.dylib", "dylib"))

	assert.True(t, cfg.IsSystemLibrary("/usr/lib/libSystem.dylib"))
	assert.False(t, cfg.IsSystemLibrary("/usr/local/lib/libSystem.dylib"))

	assert.True(t, cfg.ReleaseExempt.Matches("sparcv9", "linux"))
	assert.True(t, cfg.ReleaseExempt.Matches("amd64", "solaris"))
	assert.False(t, cfg.ReleaseExempt.Matches("amd64", "linux"))
}

func TestLookupEnvironment(t *testing.T) {
	cfg := DefaultConfig()
	vars := map[string]string{
		"PKG_LDFLAGS_OVERRIDE": "-L/opt/lib",
	}
	lookup := func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}

	e := LookupEnvironment(cfg, lookup)
	assert.True(t, e.HasOverride)
	assert.Equal(t, "-L/opt/lib", e.LDFlagsOverride)
	assert.False(t, e.HasRelease)

	vars["FASTR_RELEASE"] = ""
	e = LookupEnvironment(cfg, lookup)
	assert.True(t, e.HasRelease)
	assert.Equal(t, "", e.Release)
}
