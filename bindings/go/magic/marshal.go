package magic

import (
	"strings"
	"syscall"
	"unsafe"
)

// cString returns s as a NUL-terminated byte slice for passing to libmagic.
//
// Strings with an embedded NUL are refused: C would silently truncate them
// and the native side would act on a different path than the caller named.
func cString(op, s string) ([]byte, *Error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, &Error{
			Code:    ErrInvalidArgument,
			Op:      op,
			Errno:   syscall.EINVAL,
			Message: "string contains NUL byte: " + strings.ReplaceAll(s, "\x00", `\x00`),
		}
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b, nil
}

// cPath is cString for database paths, where "" becomes a NULL pointer
// meaning "the default database".
func cPath(op, s string) ([]byte, *Error) {
	if s == "" {
		return nil, nil
	}
	return cString(op, s)
}

// bytePtr returns a pointer to the first byte of b, or nil for an empty slice.
func bytePtr(b []byte) *byte {
	if len(b) == 0 {
		return nil
	}
	return &b[0]
}

// goString copies a NUL-terminated native string into Go memory.
//
// The boolean is false when p is nil, which is how libmagic signals
// "no result". The native buffer belongs to the cookie and is overwritten
// by the next call, so it must be copied before returning.
func goString(p unsafe.Pointer) (string, bool) {
	if p == nil {
		return "", false
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n)), true
}
