// Package magic provides Go bindings for libmagic, the content detection
// library behind file(1).
//
// A [Cookie] wraps one native magic_t. It describes files, open descriptors
// or in-memory buffers as a human-readable description, a MIME type, or a
// MIME encoding, depending on the [Flag] values it was opened with.
//
//	cookie, err := magic.Open(magic.MimeType)
//	if err != nil {
//	    return err
//	}
//	defer cookie.Close()
//
//	if !cookie.Load("") {
//	    return cookie.Err()
//	}
//	mime, ok := cookie.File("logo.png") // "image/png", true
//
// # Memory Management
//
// Strings returned by libmagic are copied into Go memory before any call
// returns; you never free anything. The native cookie itself is released by
// [Cookie.Close], which is idempotent. A finalizer releases cookies that are
// dropped without being closed, but callers should not rely on it.
//
// # Error Handling
//
// libmagic reports failure with a sentinel (NULL or a non-zero code) and
// keeps the detail on the cookie. The bindings preserve that split:
// detection calls return (string, bool) and administrative calls return
// bool. After a failure, [Cookie.LastError] and [Cookie.Errno] describe the
// problem until the next call on the same cookie. [Cookie.Err] bundles both
// into an [*Error] for callers who prefer Go errors.
//
// Arguments that cannot be represented as C strings (an embedded NUL) are
// rejected before reaching libmagic; the cookie then reports
// [ErrInvalidArgument] with errno EINVAL.
//
// # Thread Safety
//
// libmagic stores flags and error state per cookie, not per OS thread, so
// no thread locking is needed. A single Cookie must not be used from more
// than one goroutine at a time. Open one Cookie per goroutine.
//
// # Backends
//
// By default the package links libmagic through cgo. Building with
// CGO_ENABLED=0, or with the magic_purego tag, switches to a purego backend
// that loads the shared library at runtime; set MAGICPRIMS_LIBMAGIC to point
// it at a specific libmagic.so. Building with the magic_static tag links
// libmagic statically on Linux.
package magic

// Version returns the libmagic version as an integer, e.g. 545 for 5.45.
//
// It returns 0 when the native library is unavailable.
func Version() int {
	if nativeLoad() != nil {
		return 0
	}
	return nativeVersion()
}

// Backend returns the name of the native backend compiled in: "cgo",
// "purego", or "none".
func Backend() string {
	return backendName
}

// Available reports whether libmagic can be reached.
func Available() error {
	return nativeLoad()
}
