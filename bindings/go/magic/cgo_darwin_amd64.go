//go:build darwin && amd64 && cgo && !magic_purego

package magic

/*
#cgo CFLAGS: -I/usr/local/include -I/usr/local/opt/libmagic/include -I/opt/local/include
#cgo LDFLAGS: -L/usr/local/lib -L/usr/local/opt/libmagic/lib -L/opt/local/lib -lmagic
#include <magic.h>
*/
import "C"
