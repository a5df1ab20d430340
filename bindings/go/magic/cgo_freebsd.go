//go:build freebsd && cgo && !magic_purego

package magic

/*
#cgo LDFLAGS: -lmagic
#include <magic.h>
*/
import "C"
