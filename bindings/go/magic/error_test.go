package magic_test

import (
	"errors"
	"io/fs"
	"syscall"
	"testing"

	"github.com/3leaps/magicprims/bindings/go/magic"
)

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		err  *magic.Error
		want string
	}{
		{&magic.Error{Code: magic.ErrOpenFailed, Op: "open"}, "magic: open: OpenFailed"},
		{&magic.Error{Code: magic.ErrOperationFailed, Op: "file", Message: "cannot open `x'"}, "magic: file: cannot open `x'"},
		{&magic.Error{Code: magic.ErrOperationFailed, Op: "load", Errno: syscall.ENOENT}, "magic: load: " + syscall.ENOENT.Error()},
		{&magic.Error{Code: magic.ErrClosed}, "magic: Closed"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("Error() = %q, expected %q", got, tc.want)
		}
	}
}

// TestErrorUnwrapErrno verifies that errno-carrying errors match the
// standard fs sentinels.
func TestErrorUnwrapErrno(t *testing.T) {
	var err error = &magic.Error{Code: magic.ErrOperationFailed, Op: "file", Errno: syscall.ENOENT}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("ENOENT error should match fs.ErrNotExist")
	}

	err = &magic.Error{Code: magic.ErrOperationFailed, Op: "file", Errno: syscall.EACCES}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("EACCES error should match fs.ErrPermission")
	}

	err = &magic.Error{Code: magic.ErrOpenFailed, Op: "open"}
	if errors.Unwrap(err) != nil {
		t.Error("error without errno should not unwrap")
	}
}

func TestErrorCodeString(t *testing.T) {
	codes := map[magic.ErrorCode]string{
		magic.ErrOK:                 "OK",
		magic.ErrOpenFailed:         "OpenFailed",
		magic.ErrLibraryUnavailable: "LibraryUnavailable",
		magic.ErrInvalidArgument:    "InvalidArgument",
		magic.ErrClosed:             "Closed",
		magic.ErrOperationFailed:    "OperationFailed",
		magic.ErrorCode(42):         "Unknown",
	}
	for code, want := range codes {
		if got := code.String(); got != want {
			t.Errorf("ErrorCode(%d).String() = %q, expected %q", code, got, want)
		}
	}
}
