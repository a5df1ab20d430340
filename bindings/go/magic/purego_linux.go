//go:build linux && (!cgo || magic_purego)

package magic

var libraryCandidates = []string{
	"libmagic.so.1",
	"libmagic.so",
	"/usr/lib/x86_64-linux-gnu/libmagic.so.1",
	"/usr/lib/aarch64-linux-gnu/libmagic.so.1",
	"/usr/lib64/libmagic.so.1",
	"/usr/lib/libmagic.so.1",
}
