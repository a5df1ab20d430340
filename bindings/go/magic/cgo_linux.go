//go:build linux && cgo && !magic_purego && !magic_static

package magic

/*
#cgo LDFLAGS: -lmagic
#include <magic.h>
*/
import "C"
