package magic

import (
	"syscall"
	"testing"
	"unsafe"
)

func TestCString(t *testing.T) {
	b, err := cString("file", "logo.png")
	if err != nil {
		t.Fatalf("cString failed: %v", err)
	}
	if string(b) != "logo.png\x00" {
		t.Errorf("cString = %q, expected NUL-terminated copy", b)
	}

	b, err = cString("file", "")
	if err != nil {
		t.Fatalf("cString(\"\") failed: %v", err)
	}
	if len(b) != 1 || b[0] != 0 {
		t.Errorf("cString(\"\") = %q, expected a lone NUL", b)
	}
}

func TestCStringRejectsNUL(t *testing.T) {
	b, err := cString("load", "a\x00b")
	if err == nil {
		t.Fatalf("cString with NUL = %q, expected error", b)
	}
	if err.Code != ErrInvalidArgument || err.Errno != syscall.EINVAL || err.Op != "load" {
		t.Errorf("unexpected error: %+v", err)
	}
	if b != nil {
		t.Error("cString returned bytes alongside an error")
	}
}

func TestCPathEmptyIsNULL(t *testing.T) {
	b, err := cPath("load", "")
	if err != nil {
		t.Fatalf("cPath(\"\") failed: %v", err)
	}
	if bytePtr(b) != nil {
		t.Error("cPath(\"\") should marshal to a NULL pointer")
	}

	b, _ = cPath("load", "/usr/share/misc/magic.mgc")
	if bytePtr(b) == nil || b[len(b)-1] != 0 {
		t.Errorf("cPath = %q, expected NUL-terminated path", b)
	}
}

func TestGoString(t *testing.T) {
	if s, ok := goString(nil); ok || s != "" {
		t.Errorf("goString(nil) = %q, %v, expected absent", s, ok)
	}

	buf := []byte("image/png\x00garbage")
	s, ok := goString(unsafe.Pointer(&buf[0]))
	if !ok || s != "image/png" {
		t.Errorf("goString = %q, %v, expected %q", s, ok, "image/png")
	}

	// The result must not alias native memory that libmagic reuses.
	buf[0] = 'X'
	if s != "image/png" {
		t.Errorf("goString result changed with its source: %q", s)
	}

	empty := []byte{0}
	if s, ok := goString(unsafe.Pointer(&empty[0])); !ok || s != "" {
		t.Errorf("goString(empty) = %q, %v, expected present empty string", s, ok)
	}
}
