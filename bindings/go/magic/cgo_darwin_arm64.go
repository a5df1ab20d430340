//go:build darwin && arm64 && cgo && !magic_purego

package magic

/*
#cgo CFLAGS: -I/opt/homebrew/include -I/opt/homebrew/opt/libmagic/include
#cgo LDFLAGS: -L/opt/homebrew/lib -L/opt/homebrew/opt/libmagic/lib -lmagic
#include <magic.h>
*/
import "C"
