//go:build cgo && !magic_purego

package magic

/*
#include <stdlib.h>
#include <magic.h>
*/
import "C"
import "unsafe"

const backendName = "cgo"

// The cgo backend links libmagic at build time, so there is nothing to load.
func nativeLoad() error { return nil }

func nativeOpen(flags Flag) unsafe.Pointer {
	return unsafe.Pointer(C.magic_open(C.int(flags)))
}

func nativeClose(m unsafe.Pointer) {
	C.magic_close(C.magic_t(m))
}

func nativeError(m unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.magic_error(C.magic_t(m)))
}

func nativeErrno(m unsafe.Pointer) int {
	return int(C.magic_errno(C.magic_t(m)))
}

func nativeFile(m unsafe.Pointer, name *byte) unsafe.Pointer {
	return unsafe.Pointer(C.magic_file(C.magic_t(m), (*C.char)(unsafe.Pointer(name))))
}

func nativeBuffer(m unsafe.Pointer, buf unsafe.Pointer, n int) unsafe.Pointer {
	return unsafe.Pointer(C.magic_buffer(C.magic_t(m), buf, C.size_t(n)))
}

func nativeDescriptor(m unsafe.Pointer, fd int) unsafe.Pointer {
	return unsafe.Pointer(C.magic_descriptor(C.magic_t(m), C.int(fd)))
}

func nativeSetFlags(m unsafe.Pointer, flags Flag) int {
	return int(C.magic_setflags(C.magic_t(m), C.int(flags)))
}

func nativeCheck(m unsafe.Pointer, name *byte) int {
	return int(C.magic_check(C.magic_t(m), (*C.char)(unsafe.Pointer(name))))
}

func nativeCompile(m unsafe.Pointer, name *byte) int {
	return int(C.magic_compile(C.magic_t(m), (*C.char)(unsafe.Pointer(name))))
}

func nativeList(m unsafe.Pointer, name *byte) int {
	return int(C.magic_list(C.magic_t(m), (*C.char)(unsafe.Pointer(name))))
}

func nativeLoadDatabase(m unsafe.Pointer, name *byte) int {
	return int(C.magic_load(C.magic_t(m), (*C.char)(unsafe.Pointer(name))))
}

func nativeVersion() int {
	return int(C.magic_version())
}
