package icns

import "errors"

// Sentinel error kinds. Every error this package returns that corresponds
// to one of these conditions wraps the matching sentinel, so callers can
// test for it with errors.Is regardless of the added context.
var (
	// ErrInvalidMagic means the outer file did not start with "icns".
	ErrInvalidMagic = errors.New("icns: not an icns file (wrong magic literal)")
	// ErrInvalidLength means a declared length was inconsistent with the
	// data that followed it (a framed length under 8, or an element whose
	// framed length would overrun the family's declared total length).
	ErrInvalidLength = errors.New("icns: invalid length")
	// ErrUnsupportedOSType means an element's tag is not in the icon-type
	// registry, when decoding that element was requested.
	ErrUnsupportedOSType = errors.New("icns: unsupported OSType")
	// ErrDimensionMismatch means an image's dimensions don't match the
	// icon type it was encoded or decoded against.
	ErrDimensionMismatch = errors.New("icns: dimension mismatch")
	// ErrPayloadSize means a fixed-size payload (Mask8, Mono, MonoA) had
	// the wrong length for its icon type's dimensions.
	ErrPayloadSize = errors.New("icns: wrong payload size")
	// ErrInvalidRLE means an RLE24 stream was truncated, over-long, or
	// straddled a channel boundary.
	ErrInvalidRLE = errors.New("icns: invalid RLE24 stream")
	// ErrUnsupportedPayload means a JP2/PNG payload could not be decoded:
	// a JPEG-2000 payload with no decoder available, a PNG with an
	// unsupported color type, or a JP2 with a CMYK or ICC-profile color
	// space.
	ErrUnsupportedPayload = errors.New("icns: unsupported payload")
	// ErrNoMatchingType means auto-variant selection found no icon type
	// matching the given image dimensions.
	ErrNoMatchingType = errors.New("icns: no icon type matches these dimensions")
	// ErrNotFound means a requested icon type is not present in the
	// family.
	ErrNotFound = errors.New("icns: icon type not found in family")
)
