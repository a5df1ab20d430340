package magic

import (
	"runtime"
	"syscall"
	"unsafe"
)

// noCopy may be embedded into structs which must not be copied after first
// use. go vet's copylocks check reports violations.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Cookie owns one libmagic cookie (magic_t).
//
// A Cookie is only ever handed out by pointer and must not be copied. It is
// not safe for concurrent use; libmagic keeps the current flags and the
// last error inside the cookie. Open one Cookie per goroutine instead of
// sharing one.
//
// The native cookie is released by [Cookie.Close]. If a Cookie becomes
// unreachable without being closed, a finalizer releases it.
type Cookie struct {
	_ noCopy

	ptr unsafe.Pointer

	// lastOp names the most recent operation, for [Cookie.Err].
	lastOp string
	// boundary holds a failure detected on the Go side of the most recent
	// call, before anything crossed into libmagic.
	boundary *Error
}

// Open allocates a new cookie with the given flags.
//
// The cookie has no database loaded; call [Cookie.Load] (usually with "")
// before detecting anything, or use [OpenConfig].
//
// # Errors
//
//   - [ErrLibraryUnavailable]: libmagic could not be loaded (purego backend)
//   - [ErrOpenFailed]: magic_open returned NULL
func Open(flags ...Flag) (*Cookie, error) {
	if err := nativeLoad(); err != nil {
		return nil, err
	}

	ptr := nativeOpen(Combine(flags...))
	if ptr == nil {
		return nil, &Error{Code: ErrOpenFailed, Op: "open"}
	}

	c := &Cookie{ptr: ptr}
	runtime.SetFinalizer(c, (*Cookie).release)
	return c, nil
}

// Close releases the native cookie.
//
// Close is safe to call more than once; only the first call reaches
// libmagic. It always returns nil and exists to satisfy io.Closer.
func (c *Cookie) Close() error {
	if c == nil || c.ptr == nil {
		return nil
	}
	runtime.SetFinalizer(c, nil)
	c.release()
	return nil
}

func (c *Cookie) release() {
	if c.ptr != nil {
		nativeClose(c.ptr)
		c.ptr = nil
	}
}

// Closed reports whether the cookie has been released.
func (c *Cookie) Closed() bool {
	return c.ptr == nil
}

// begin resets per-call error state and refuses calls on a released cookie.
func (c *Cookie) begin(op string) bool {
	c.lastOp = op
	c.boundary = nil
	if c.ptr == nil {
		c.boundary = closedError(op)
		return false
	}
	return true
}

func closedError(op string) *Error {
	return &Error{Code: ErrClosed, Op: op, Errno: syscall.EBADF, Message: "cookie is closed"}
}

// File describes the contents of the file at path.
//
// ok is false when libmagic produced no result; [Cookie.LastError] and
// [Cookie.Errno] then describe why. File reads the target and, unless
// [PreserveAtime] is set, may update its access time.
func (c *Cookie) File(path string) (desc string, ok bool) {
	if !c.begin("file") {
		return "", false
	}
	name, err := cString("file", path)
	if err != nil {
		c.boundary = err
		return "", false
	}

	desc, ok = goString(nativeFile(c.ptr, bytePtr(name)))
	runtime.KeepAlive(name)
	runtime.KeepAlive(c)
	return desc, ok
}

// Buffer describes the contents of b. No filesystem access takes place.
//
// b is passed to libmagic without copying and is not retained.
func (c *Cookie) Buffer(b []byte) (desc string, ok bool) {
	if !c.begin("buffer") {
		return "", false
	}

	desc, ok = goString(nativeBuffer(c.ptr, unsafe.Pointer(unsafe.SliceData(b)), len(b)))
	runtime.KeepAlive(b)
	runtime.KeepAlive(c)
	return desc, ok
}

// Descriptor describes the contents readable from the open file descriptor
// fd, e.g. os.File.Fd(). libmagic reads from the current offset and does
// not close fd.
func (c *Cookie) Descriptor(fd uintptr) (desc string, ok bool) {
	if !c.begin("descriptor") {
		return "", false
	}
	if fd > uintptr(^uint32(0)>>1) {
		c.boundary = &Error{Code: ErrInvalidArgument, Op: "descriptor", Errno: syscall.EBADF, Message: "descriptor out of range"}
		return "", false
	}

	desc, ok = goString(nativeDescriptor(c.ptr, int(fd)))
	runtime.KeepAlive(c)
	return desc, ok
}

// SetFlags replaces the cookie's flags with the combination of flags.
//
// It reports whether libmagic accepted them. libmagic refuses
// [PreserveAtime] on platforms that cannot restore access times; the
// previous flags stay in effect then.
func (c *Cookie) SetFlags(flags ...Flag) bool {
	if !c.begin("setflags") {
		return false
	}
	rc := nativeSetFlags(c.ptr, Combine(flags...))
	runtime.KeepAlive(c)
	return rc == 0
}

// Check checks the validity of entries in the colon-separated database
// files named by path, or the default database when path is "".
func (c *Cookie) Check(path string) bool {
	return c.callPath("check", path, nativeCheck)
}

// Compile compiles the colon-separated list of database source files named
// by path. The output file name is derived by libmagic by appending ".mgc"
// to each base name and is written to the current directory.
func (c *Cookie) Compile(path string) bool {
	return c.callPath("compile", path, nativeCompile)
}

// List dumps the entries of the database named by path to stdout.
func (c *Cookie) List(path string) bool {
	return c.callPath("list", path, nativeList)
}

// Load loads the colon-separated list of database files named by path.
// An empty path loads the default database, honouring $MAGIC.
func (c *Cookie) Load(path string) bool {
	return c.callPath("load", path, nativeLoadDatabase)
}

// callPath marshals path, runs one of the database entry points and
// reduces its return code to success (0) or failure.
func (c *Cookie) callPath(op, path string, call func(unsafe.Pointer, *byte) int) bool {
	if !c.begin(op) {
		return false
	}
	name, err := cPath(op, path)
	if err != nil {
		c.boundary = err
		return false
	}

	rc := call(c.ptr, bytePtr(name))
	runtime.KeepAlive(name)
	runtime.KeepAlive(c)
	return rc == 0
}

// LastError returns the error text left on the cookie by the most recent
// call, or ok == false if there is none.
//
// The text is only meaningful right after a call reported failure; the
// next call replaces it.
func (c *Cookie) LastError() (msg string, ok bool) {
	if c.boundary != nil {
		return c.boundary.Message, true
	}
	if c.ptr == nil {
		return closedError(c.lastOp).Message, true
	}
	msg, ok = goString(nativeError(c.ptr))
	runtime.KeepAlive(c)
	return msg, ok
}

// Errno returns the platform error number left on the cookie by the most
// recent call, or 0 if there is none.
func (c *Cookie) Errno() syscall.Errno {
	if c.boundary != nil {
		return c.boundary.Errno
	}
	if c.ptr == nil {
		return syscall.EBADF
	}
	errno := nativeErrno(c.ptr)
	runtime.KeepAlive(c)
	return syscall.Errno(errno)
}

// Err collects [Cookie.LastError] and [Cookie.Errno] into an *Error, or
// returns nil if the cookie carries no error state.
func (c *Cookie) Err() error {
	if c.boundary != nil {
		e := *c.boundary
		return &e
	}
	if c.ptr == nil {
		return closedError(c.lastOp)
	}

	msg, ok := c.LastError()
	errno := c.Errno()
	if !ok && errno == 0 {
		return nil
	}
	return &Error{Code: ErrOperationFailed, Op: c.lastOp, Errno: errno, Message: msg}
}
