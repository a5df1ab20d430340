//go:build freebsd && (!cgo || magic_purego)

package magic

// libmagic ships in the FreeBSD base system.
var libraryCandidates = []string{
	"libmagic.so.4",
	"/usr/lib/libmagic.so.4",
	"/usr/local/lib/libmagic.so.1",
}
