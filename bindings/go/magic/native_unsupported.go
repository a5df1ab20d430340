//go:build !cgo && !linux && !darwin && !freebsd

package magic

import "unsafe"

const backendName = "none"

// Without cgo there is no way to reach libmagic on this platform. Every
// entry point is unreachable because nativeLoad always fails first.
func nativeLoad() error {
	return &Error{Code: ErrLibraryUnavailable, Op: "load", Message: "libmagic requires cgo on this platform"}
}

func nativeOpen(Flag) unsafe.Pointer { return nil }
func nativeClose(unsafe.Pointer) {}
func nativeError(unsafe.Pointer) unsafe.Pointer { return nil }
func nativeErrno(unsafe.Pointer) int { return 0 }
func nativeFile(unsafe.Pointer, *byte) unsafe.Pointer { return nil }
func nativeBuffer(unsafe.Pointer, unsafe.Pointer, int) unsafe.Pointer { return nil }
func nativeDescriptor(unsafe.Pointer, int) unsafe.Pointer { return nil }
func nativeSetFlags(unsafe.Pointer, Flag) int { return -1 }
func nativeCheck(unsafe.Pointer, *byte) int { return -1 }
func nativeCompile(unsafe.Pointer, *byte) int { return -1 }
func nativeList(unsafe.Pointer, *byte) int { return -1 }
func nativeLoadDatabase(unsafe.Pointer, *byte) int { return -1 }
func nativeVersion() int { return 0 }
