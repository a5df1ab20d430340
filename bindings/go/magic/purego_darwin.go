//go:build darwin && (!cgo || magic_purego)

package magic

// Homebrew installs under /opt/homebrew on Apple Silicon and /usr/local on Intel.
var libraryCandidates = []string{
	"/opt/homebrew/lib/libmagic.1.dylib",
	"/usr/local/lib/libmagic.1.dylib",
	"/opt/local/lib/libmagic.1.dylib",
	"libmagic.1.dylib",
}
