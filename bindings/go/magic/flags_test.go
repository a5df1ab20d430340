package magic_test

import (
	"testing"

	"github.com/3leaps/magicprims/bindings/go/magic"
)

// TestCombineEmpty verifies that no flags encode to the zero mask.
func TestCombineEmpty(t *testing.T) {
	if got := magic.Combine(); got != magic.None {
		t.Errorf("Combine() = %#x, expected 0", int(got))
	}
	if got := magic.Combine(magic.None, magic.None); got != magic.None {
		t.Errorf("Combine(None, None) = %#x, expected 0", int(got))
	}
}

// TestCombineOrderAndDuplicates verifies that reordering or repeating flags
// does not change the mask.
func TestCombineOrderAndDuplicates(t *testing.T) {
	want := magic.Combine(magic.Symlink, magic.MimeType, magic.Compress)

	cases := [][]magic.Flag{
		{magic.MimeType, magic.Compress, magic.Symlink},
		{magic.Compress, magic.Symlink, magic.MimeType},
		{magic.Symlink, magic.Symlink, magic.MimeType, magic.Compress, magic.MimeType},
		{magic.None, magic.Compress, magic.MimeType, magic.Symlink, magic.None},
	}
	for _, flags := range cases {
		if got := magic.Combine(flags...); got != want {
			t.Errorf("Combine(%v) = %#x, expected %#x", flags, int(got), int(want))
		}
	}
}

// TestMimeIsTypeAndEncoding verifies the pre-combined Mime flag.
func TestMimeIsTypeAndEncoding(t *testing.T) {
	if got := magic.Combine(magic.MimeType, magic.MimeEncoding); got != magic.Mime {
		t.Errorf("Combine(MimeType, MimeEncoding) = %#x, expected Mime (%#x)", int(got), int(magic.Mime))
	}
	if !magic.Mime.Has(magic.MimeType) || !magic.Mime.Has(magic.MimeEncoding) {
		t.Error("Mime should contain MimeType and MimeEncoding")
	}
	if magic.MimeType.Has(magic.Mime) {
		t.Error("MimeType alone should not contain Mime")
	}
}

// TestFlagValues pins the bit patterns to magic.h.
func TestFlagValues(t *testing.T) {
	cases := []struct {
		flag magic.Flag
		want int
	}{
		{magic.Debug, 0x000001},
		{magic.Symlink, 0x000002},
		{magic.Compress, 0x000004},
		{magic.Devices, 0x000008},
		{magic.MimeType, 0x000010},
		{magic.Continue, 0x000020},
		{magic.Check, 0x000040},
		{magic.PreserveAtime, 0x000080},
		{magic.Raw, 0x000100},
		{magic.ReportErrors, 0x000200},
		{magic.MimeEncoding, 0x000400},
		{magic.Mime, 0x000410},
		{magic.Apple, 0x000800},
		{magic.NoCheckCompress, 0x001000},
		{magic.NoCheckTar, 0x002000},
		{magic.NoCheckSoft, 0x004000},
		{magic.NoCheckAppType, 0x008000},
		{magic.NoCheckELF, 0x010000},
		{magic.NoCheckText, 0x020000},
		{magic.NoCheckCDF, 0x040000},
		{magic.NoCheckTokens, 0x100000},
		{magic.NoCheckEncoding, 0x200000},
	}
	for _, tc := range cases {
		if int(tc.flag) != tc.want {
			t.Errorf("%s = %#x, expected %#x", tc.flag, int(tc.flag), tc.want)
		}
	}
}

func TestFlagString(t *testing.T) {
	cases := []struct {
		flag magic.Flag
		want string
	}{
		{magic.None, "none"},
		{magic.MimeType, "mime_type"},
		{magic.Mime, "mime_type|mime_encoding"},
		{magic.Symlink | magic.ReportErrors, "symlink|error"},
		{magic.Flag(0x080000), "0x80000"},
	}
	for _, tc := range cases {
		if got := tc.flag.String(); got != tc.want {
			t.Errorf("Flag(%#x).String() = %q, expected %q", int(tc.flag), got, tc.want)
		}
	}
}

func TestParseFlag(t *testing.T) {
	cases := map[string]magic.Flag{
		"mime_type":         magic.MimeType,
		"MIME_TYPE":         magic.MimeType,
		"MAGIC_MIME_TYPE":   magic.MimeType,
		"mime-encoding":     magic.MimeEncoding,
		"mime":              magic.Mime,
		"none":              magic.None,
		" symlink ":         magic.Symlink,
		"error":             magic.ReportErrors,
		"no_check_compress": magic.NoCheckCompress,
	}
	for name, want := range cases {
		got, err := magic.ParseFlag(name)
		if err != nil {
			t.Errorf("ParseFlag(%q) failed: %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("ParseFlag(%q) = %s, expected %s", name, got, want)
		}
	}

	_, err := magic.ParseFlag("bogus")
	if err == nil {
		t.Fatal("ParseFlag(bogus) should return error")
	}
	mErr, ok := err.(*magic.Error)
	if !ok {
		t.Fatalf("Expected *magic.Error, got %T", err)
	}
	if mErr.Code != magic.ErrInvalidArgument {
		t.Errorf("Expected ErrInvalidArgument, got %d (%s)", mErr.Code, mErr.Code)
	}
}

// TestParseFlagRoundTrip verifies every single-bit flag parses back from
// its String form.
func TestParseFlagRoundTrip(t *testing.T) {
	for bit := 0; bit < 22; bit++ {
		f := magic.Flag(1 << bit)
		if f == 0x080000 {
			continue // unassigned in magic.h
		}
		got, err := magic.ParseFlag(f.String())
		if err != nil {
			t.Errorf("ParseFlag(%q) failed: %v", f.String(), err)
			continue
		}
		if got != f {
			t.Errorf("ParseFlag(%q) = %#x, expected %#x", f.String(), int(got), int(f))
		}
	}
}
