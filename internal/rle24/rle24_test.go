package rle24_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julian-bruyers/icns/internal/rle24"
)

// byteExactDecodeInput is an is32 payload whose first pixel decodes to
// (12, 34, 56). Red is a one-byte literal then runs of 130 and 125; green
// is a run of 3 then runs of 130 and 123; blue is a two-byte literal then
// runs of 130 and 124.
var byteExactDecodeInput = []byte{0, 12, 255, 0, 250, 0, 128, 34, 255, 0, 248, 0, 1, 56, 99, 255, 0, 249, 0}

func TestDecodeByteExact(t *testing.T) {
	r, g, b, err := rle24.Decode(16*16, byteExactDecodeInput)
	assert.NoError(t, err)
	assert.Equal(t, byte(12), r[0])
	assert.Equal(t, byte(34), g[0])
	assert.Equal(t, byte(56), b[0])
	assert.Len(t, r, 256)
	assert.Len(t, g, 256)
	assert.Len(t, b, 256)
}

func TestDecodeTreatsLeadingQuirkBytesAsOptional(t *testing.T) {
	quirked := append([]byte{0, 0, 0, 0}, byteExactDecodeInput...)
	r, g, b, err := rle24.Decode(16*16, quirked)
	assert.NoError(t, err)
	wantR, wantG, wantB, err := rle24.Decode(16*16, byteExactDecodeInput)
	assert.NoError(t, err)
	assert.Equal(t, wantR, r)
	assert.Equal(t, wantG, g)
	assert.Equal(t, wantB, b)
}

func TestEncode128x128AlwaysEmitsQuirkPrefix(t *testing.T) {
	n := 128 * 128
	channel := make([]byte, n)
	out := rle24.Encode(n, [3][]byte{channel, channel, channel})
	assert.GreaterOrEqual(t, len(out), 4)
	assert.Equal(t, []byte{0, 0, 0, 0}, out[:4])
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	n := 16 * 16
	r := make([]byte, n)
	g := make([]byte, n)
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		r[i] = byte(i)
		g[i] = byte(i * 3)
		b[i] = 200
	}
	encoded := rle24.EncodeQuirked([3][]byte{r, g, b}, false)
	gotR, gotG, gotB, err := rle24.Decode(n, encoded)
	assert.NoError(t, err)
	assert.Equal(t, r, gotR)
	assert.Equal(t, g, gotG)
	assert.Equal(t, b, gotB)
}

func TestDecodeTruncatedStreamIsInvalid(t *testing.T) {
	_, _, _, err := rle24.Decode(16*16, []byte{1, 2, 3})
	assert.ErrorIs(t, err, rle24.ErrInvalidRLE)
}

func TestDecodeRejectsTrailingBytes(t *testing.T) {
	n := 1
	encoded := rle24.EncodeQuirked([3][]byte{{1}, {2}, {3}}, false)
	withTrailer := append(encoded, 0xFF)
	_, _, _, err := rle24.Decode(n, withTrailer)
	assert.ErrorIs(t, err, rle24.ErrInvalidRLE)
}
