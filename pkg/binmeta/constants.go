// constants.go
package binmeta

const (
	// OtoolCommand lists dependencies and the install name of Mach-O binaries
	OtoolCommand = "otool"

	// InstallNameToolCommand edits install names and rpaths of Mach-O binaries
	InstallNameToolCommand = "install_name_tool"

	// ObjdumpCommand dumps the dynamic section of ELF binaries on Linux
	ObjdumpCommand = "objdump"

	// ElfdumpCommand dumps the dynamic section of ELF binaries on Solaris
	ElfdumpCommand = "elfdump"

	// RPathToken is the install name prefix resolved against the loader's rpath list
	RPathToken = "@rpath"

	// LoaderPathToken is the rpath entry resolved against the loading binary's directory
	LoaderPathToken = "@loader_path/"

	sonameMarker = "SONAME"
	neededMarker = "NEEDED"
)
