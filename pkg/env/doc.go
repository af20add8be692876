// pkg/env/doc.go

/*
Package env describes the on-disk environment portlib works against.

It handles:
  - Naming libraries the way the linker does (libpcre.dylib, libz.so.1)
  - Parsing linker flags for extra library search directories
  - Picking the file to capture from a search directory
  - Reading symlink targets without following them

Basic Usage:

	spec := env.NewLibrarySpec("pcre", "dylib")
	for _, dir := range env.ParseLinkerFlags(os.Getenv(env.DefaultOverrideVar)) {
		c, err := env.ChooseCandidate(dir, spec)
		if err != nil {
			return err
		}
		if c != nil {
			fmt.Printf("Found: %s\n", c.Path) // /opt/pcre/lib/libpcre.dylib
		}
	}

Version-agnostic names:

A library is usually installed as a versioned file (libpcre.1.dylib,
libpcre.so.3) plus a symlink carrying the plain name (libpcre.dylib,
libpcre.so). ChooseCandidate prefers the plain name so the versioned file is
discovered from the binary's own metadata rather than from directory order.
*/
package env
