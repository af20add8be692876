package binmeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const otoolLOutput = `/usr/local/opt/pcre/lib/libpcre.dylib:
	/usr/local/opt/pcre/lib/libpcre.1.dylib (compatibility version 4.0.0, current version 4.11.0)
	/usr/lib/libSystem.B.dylib (compatibility version 1.0.0, current version 1281.100.1)
`

const otoolFatOutput = `/opt/lib/libz.dylib (architecture x86_64):
	@rpath/libz.1.dylib (compatibility version 1.0.0, current version 1.2.13)
	/usr/lib/libSystem.B.dylib (compatibility version 1.0.0, current version 1311.0.0)
/opt/lib/libz.dylib (architecture arm64):
	@rpath/libz.1.dylib (compatibility version 1.0.0, current version 1.2.13)
	/usr/lib/libSystem.B.dylib (compatibility version 1.0.0, current version 1311.0.0)
`

const objdumpOutput = `
/usr/lib/x86_64-linux-gnu/libpcre.so:     file format elf64-x86-64

Dynamic Section:
  NEEDED               libc.so.6
  NEEDED               libpthread.so.0
  SONAME               libpcre.so.3
  INIT                 0x0000000000002000
`

const elfdumpOutput = `
Dynamic Section:  .dynamic
     index  tag                value
       [0]  NEEDED            0x1a5               libc.so.1
       [1]  SONAME            0x1b0               libgfortran.so.3
       [2]  RUNPATH           0x1c1               /opt/gcc/lib
`

func TestParseOtoolDependencies(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected []string
	}{
		{
			name:   "single architecture",
			output: otoolLOutput,
			expected: []string{
				"/usr/local/opt/pcre/lib/libpcre.1.dylib",
				"/usr/lib/libSystem.B.dylib",
			},
		},
		{
			name:   "universal binary lists each reference once",
			output: otoolFatOutput,
			expected: []string{
				"@rpath/libz.1.dylib",
				"/usr/lib/libSystem.B.dylib",
			},
		},
		{
			name:     "header only",
			output:   "/tmp/libfoo.dylib:\n",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseOtoolDependencies(tt.output))
		})
	}
}

func TestParseOtoolID(t *testing.T) {
	out := "/usr/local/opt/pcre/lib/libpcre.1.dylib:\n/usr/local/opt/pcre/lib/libpcre.1.dylib\n"
	assert.Equal(t, "/usr/local/opt/pcre/lib/libpcre.1.dylib", ParseOtoolID(out))
	assert.Equal(t, "", ParseOtoolID("/usr/local/bin/R:\n"))
}

func TestParseSoname(t *testing.T) {
	assert.Equal(t, "libpcre.so.3", ParseSoname(objdumpOutput))
	assert.Equal(t, "libgfortran.so.3", ParseSoname(elfdumpOutput))
	assert.Equal(t, "", ParseSoname("Dynamic Section:\n  NEEDED libc.so.6\n"))
}

func TestParseNeeded(t *testing.T) {
	assert.Equal(t, []string{"libc.so.6", "libpthread.so.0"}, ParseNeeded(objdumpOutput))
	assert.Equal(t, []string{"libc.so.1"}, ParseNeeded(elfdumpOutput))
}
