//go:build (linux || darwin || freebsd) && (!cgo || magic_purego)

package magic

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

const backendName = "purego"

// LibraryEnv names an environment variable holding an explicit path to the
// libmagic shared object. It is consulted before the platform defaults.
const LibraryEnv = "MAGICPRIMS_LIBMAGIC"

var (
	libHandle uintptr
	libOnce   sync.Once
	libErr    error
)

// Library function pointers (populated by nativeLoad)
var (
	fnOpen       func(flags int32) unsafe.Pointer
	fnClose      func(m unsafe.Pointer)
	fnError      func(m unsafe.Pointer) unsafe.Pointer
	fnErrno      func(m unsafe.Pointer) int32
	fnFile       func(m unsafe.Pointer, name *byte) unsafe.Pointer
	fnBuffer     func(m unsafe.Pointer, buf unsafe.Pointer, n uintptr) unsafe.Pointer
	fnDescriptor func(m unsafe.Pointer, fd int32) unsafe.Pointer
	fnSetFlags   func(m unsafe.Pointer, flags int32) int32
	fnCheck      func(m unsafe.Pointer, name *byte) int32
	fnCompile    func(m unsafe.Pointer, name *byte) int32
	fnList       func(m unsafe.Pointer, name *byte) int32
	fnLoad       func(m unsafe.Pointer, name *byte) int32
	fnVersion    func() int32
)

// nativeLoad dlopens libmagic once per process and registers every entry
// point. The library is never unloaded.
func nativeLoad() error {
	libOnce.Do(func() {
		candidates := libraryCandidates
		if p := os.Getenv(LibraryEnv); p != "" {
			candidates = append([]string{p}, candidates...)
		}

		var tried []string
		for _, name := range candidates {
			h, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
			if err == nil {
				libHandle = h
				break
			}
			tried = append(tried, fmt.Sprintf("%s (%v)", name, err))
		}
		if libHandle == 0 {
			libErr = &Error{
				Code:    ErrLibraryUnavailable,
				Op:      "dlopen",
				Message: "failed to load libmagic: " + strings.Join(tried, "; "),
			}
			return
		}

		purego.RegisterLibFunc(&fnOpen, libHandle, "magic_open")
		purego.RegisterLibFunc(&fnClose, libHandle, "magic_close")
		purego.RegisterLibFunc(&fnError, libHandle, "magic_error")
		purego.RegisterLibFunc(&fnErrno, libHandle, "magic_errno")
		purego.RegisterLibFunc(&fnFile, libHandle, "magic_file")
		purego.RegisterLibFunc(&fnBuffer, libHandle, "magic_buffer")
		purego.RegisterLibFunc(&fnDescriptor, libHandle, "magic_descriptor")
		purego.RegisterLibFunc(&fnSetFlags, libHandle, "magic_setflags")
		purego.RegisterLibFunc(&fnCheck, libHandle, "magic_check")
		purego.RegisterLibFunc(&fnCompile, libHandle, "magic_compile")
		purego.RegisterLibFunc(&fnList, libHandle, "magic_list")
		purego.RegisterLibFunc(&fnLoad, libHandle, "magic_load")
		purego.RegisterLibFunc(&fnVersion, libHandle, "magic_version")
	})
	return libErr
}

func nativeOpen(flags Flag) unsafe.Pointer { return fnOpen(int32(flags)) }

func nativeClose(m unsafe.Pointer) { fnClose(m) }

func nativeError(m unsafe.Pointer) unsafe.Pointer { return fnError(m) }

func nativeErrno(m unsafe.Pointer) int { return int(fnErrno(m)) }

func nativeFile(m unsafe.Pointer, name *byte) unsafe.Pointer { return fnFile(m, name) }

func nativeBuffer(m unsafe.Pointer, buf unsafe.Pointer, n int) unsafe.Pointer {
	return fnBuffer(m, buf, uintptr(n))
}

func nativeDescriptor(m unsafe.Pointer, fd int) unsafe.Pointer { return fnDescriptor(m, int32(fd)) }

func nativeSetFlags(m unsafe.Pointer, flags Flag) int { return int(fnSetFlags(m, int32(flags))) }

func nativeCheck(m unsafe.Pointer, name *byte) int { return int(fnCheck(m, name)) }

func nativeCompile(m unsafe.Pointer, name *byte) int { return int(fnCompile(m, name)) }

func nativeList(m unsafe.Pointer, name *byte) int { return int(fnList(m, name)) }

func nativeLoadDatabase(m unsafe.Pointer, name *byte) int { return int(fnLoad(m, name)) }

func nativeVersion() int {
	if nativeLoad() != nil {
		return 0
	}
	return int(fnVersion())
}
