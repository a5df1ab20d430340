package magic

import "syscall"

// ErrorCode classifies failures reported by this package.
type ErrorCode int32

// Error codes carried by [Error].
const (
	// ErrOK indicates no error - operation succeeded.
	ErrOK ErrorCode = 0
	// ErrOpenFailed indicates magic_open returned NULL. libmagic gives no
	// further detail because there is no cookie to attach it to.
	ErrOpenFailed ErrorCode = 1
	// ErrLibraryUnavailable indicates the native library could not be loaded
	// (purego backend only).
	ErrLibraryUnavailable ErrorCode = 2
	// ErrInvalidArgument indicates an argument could not be marshaled for
	// the native layer, e.g. a path containing a NUL byte.
	ErrInvalidArgument ErrorCode = 3
	// ErrClosed indicates the cookie has already been released.
	ErrClosed ErrorCode = 4
	// ErrOperationFailed indicates a native call returned its failure
	// sentinel. Message and Errno come from magic_error and magic_errno.
	ErrOperationFailed ErrorCode = 5
)

// String returns a human-readable name for the error code.
func (c ErrorCode) String() string {
	switch c {
	case ErrOK:
		return "OK"
	case ErrOpenFailed:
		return "OpenFailed"
	case ErrLibraryUnavailable:
		return "LibraryUnavailable"
	case ErrInvalidArgument:
		return "InvalidArgument"
	case ErrClosed:
		return "Closed"
	case ErrOperationFailed:
		return "OperationFailed"
	default:
		return "Unknown"
	}
}

// Error represents a magic error with code and message.
//
// Detection calls never return an *Error themselves; they report absence
// and leave the detail on the cookie. Use [Cookie.Err] to collect it:
//
//	desc, ok := cookie.File(path)
//	if !ok {
//	    err := cookie.Err("file")
//	    if errors.Is(err, fs.ErrNotExist) {
//	        ...
//	    }
//	}
type Error struct {
	// Code classifies the failure.
	Code ErrorCode
	// Op is the operation that failed ("open", "file", "load", ...).
	Op string
	// Errno is the platform error number, if any.
	Errno syscall.Errno
	// Message is the detail text, usually from magic_error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		if e.Errno != 0 {
			msg = e.Errno.Error()
		} else {
			msg = e.Code.String()
		}
	}
	if e.Op == "" {
		return "magic: " + msg
	}
	return "magic: " + e.Op + ": " + msg
}

// Unwrap returns the platform errno so errors.Is(err, fs.ErrNotExist) and
// friends work. It returns nil when no errno was recorded.
func (e *Error) Unwrap() error {
	if e.Errno == 0 {
		return nil
	}
	return e.Errno
}
