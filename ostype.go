package icns

import "fmt"

// OSType is a four-byte identifier used throughout classic Mac OS. In an
// ICNS file it tags the contents of one IconElement, e.g. "it32" for
// 128x128 RLE-compressed color data, or "t8mk" for its alpha mask.
type OSType [4]byte

// String returns the OSType as four characters, each the Unicode scalar
// value of the corresponding byte. This is a diagnostic representation
// (used by readicns and by error messages). Bytes above 0x7F become
// multi-byte UTF-8 runes, but every byte 0-255 maps to a distinct rune, so
// no information is lost and ParseOSType recovers the original bytes.
func (t OSType) String() string {
	r := make([]rune, 4)
	for i, b := range t {
		r[i] = rune(b)
	}
	return string(r)
}

// ParseOSType parses a four-character string into an OSType. It returns an
// error unless s contains exactly four characters, each with a scalar
// value of at most 255.
func ParseOSType(s string) (OSType, error) {
	runes := []rune(s)
	if len(runes) != 4 {
		return OSType{}, fmt.Errorf("OSType string must be 4 characters (was %d)", len(runes))
	}
	var t OSType
	for i, r := range runes {
		if r > 255 {
			return OSType{}, fmt.Errorf("OSType characters must have value of at most 0xFF (found 0x%X)", r)
		}
		t[i] = byte(r)
	}
	return t, nil
}
