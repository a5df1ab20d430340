package magic

import (
	"strconv"
	"strings"
)

// Flag is a libmagic behavior option.
//
// Flags map directly to the MAGIC_* bits in magic.h and are combined with
// bitwise OR (see [Combine]).
type Flag int

// Flags accepted by [Open] and [Cookie.SetFlags].
const (
	// None requests default behavior.
	None Flag = 0x000000
	// Debug turns on libmagic debugging output.
	Debug Flag = 0x000001
	// Symlink follows symlinks.
	Symlink Flag = 0x000002
	// Compress checks inside compressed files.
	Compress Flag = 0x000004
	// Devices looks at the contents of devices.
	Devices Flag = 0x000008
	// MimeType returns the MIME type.
	MimeType Flag = 0x000010
	// Continue returns all matches, not just the first.
	Continue Flag = 0x000020
	// Check prints warnings to stderr.
	Check Flag = 0x000040
	// PreserveAtime restores the access time of inspected files.
	PreserveAtime Flag = 0x000080
	// Raw does not translate unprintable characters.
	Raw Flag = 0x000100
	// ReportErrors treats ENOENT and similar conditions as real errors
	// instead of printing them into the result (MAGIC_ERROR).
	ReportErrors Flag = 0x000200
	// MimeEncoding returns the MIME encoding.
	MimeEncoding Flag = 0x000400
	// Mime is MimeType and MimeEncoding.
	Mime Flag = MimeType | MimeEncoding
	// Apple returns the Apple creator and type.
	Apple Flag = 0x000800

	NoCheckCompress Flag = 0x001000 // Don't check for compressed files
	NoCheckTar      Flag = 0x002000 // Don't check for tar files
	NoCheckSoft     Flag = 0x004000 // Don't check magic entries
	NoCheckAppType  Flag = 0x008000 // Don't check application type
	NoCheckELF      Flag = 0x010000 // Don't check for ELF details
	NoCheckText     Flag = 0x020000 // Don't check for text files
	NoCheckCDF      Flag = 0x040000 // Don't check for CDF files
	NoCheckTokens   Flag = 0x100000 // Don't check tokens
	NoCheckEncoding Flag = 0x200000 // Don't check text encodings
)

// Combine folds flags into a single mask with bitwise OR.
//
// The result does not depend on order, and repeating a flag has no effect.
// Combine() is [None].
func Combine(flags ...Flag) Flag {
	var mask Flag
	for _, f := range flags {
		mask |= f
	}
	return mask
}

// Has reports whether every bit of other is set in f.
func (f Flag) Has(other Flag) bool {
	return f&other == other
}

// flagNames lists single-bit flags in bit order. Mime is derived and
// intentionally absent so String never reports it twice.
var flagNames = []struct {
	flag Flag
	name string
}{
	{Debug, "debug"},
	{Symlink, "symlink"},
	{Compress, "compress"},
	{Devices, "devices"},
	{MimeType, "mime_type"},
	{Continue, "continue"},
	{Check, "check"},
	{PreserveAtime, "preserve_atime"},
	{Raw, "raw"},
	{ReportErrors, "error"},
	{MimeEncoding, "mime_encoding"},
	{Apple, "apple"},
	{NoCheckCompress, "no_check_compress"},
	{NoCheckTar, "no_check_tar"},
	{NoCheckSoft, "no_check_soft"},
	{NoCheckAppType, "no_check_apptype"},
	{NoCheckELF, "no_check_elf"},
	{NoCheckText, "no_check_text"},
	{NoCheckCDF, "no_check_cdf"},
	{NoCheckTokens, "no_check_tokens"},
	{NoCheckEncoding, "no_check_encoding"},
}

// String returns the set bits as a "|"-joined list of names, e.g.
// "mime_type|mime_encoding". Unknown bits are rendered in hex.
func (f Flag) String() string {
	if f == None {
		return "none"
	}
	var parts []string
	rest := f
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
			rest &^= fn.flag
		}
	}
	if rest != 0 {
		parts = append(parts, "0x"+strconv.FormatInt(int64(rest), 16))
	}
	return strings.Join(parts, "|")
}

// ParseFlag resolves a flag by name.
//
// Names are case-insensitive and may carry the C "MAGIC_" prefix, so
// "mime_type", "MIME_TYPE" and "MAGIC_MIME_TYPE" are equivalent. "mime" and
// "none" are accepted as well.
func ParseFlag(name string) (Flag, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "magic_")
	n = strings.ReplaceAll(n, "-", "_")
	switch n {
	case "none":
		return None, nil
	case "mime":
		return Mime, nil
	}
	for _, fn := range flagNames {
		if fn.name == n {
			return fn.flag, nil
		}
	}
	return None, &Error{Code: ErrInvalidArgument, Op: "parse flag", Message: "unknown flag: " + name}
}
