//go:build linux && cgo && !magic_purego && magic_static

package magic

// Static builds pull in the decompressors libmagic was built against.
// Debian/Ubuntu and Alpine (musl) both ship libmagic.a with zlib, bzip2,
// xz and zstd support enabled.

/*
#cgo LDFLAGS: -Wl,-Bstatic -lmagic -lz -lbz2 -llzma -lzstd -Wl,-Bdynamic -lm -lpthread
#include <magic.h>
*/
import "C"
