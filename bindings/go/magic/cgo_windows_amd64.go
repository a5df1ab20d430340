//go:build windows && amd64 && cgo && !magic_purego

package magic

// Windows builds use MinGW (MSYS2 mingw-w64-x86_64-file) for CGo compatibility.
// libmagic depends on the TRE regex library there.

/*
#cgo LDFLAGS: -lmagic -ltre -lshlwapi
#include <magic.h>
*/
import "C"
