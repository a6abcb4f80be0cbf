package icns_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julian-bruyers/icns"
)

// These exercise the RLE24 and PNG-backed icon variants listed below end
// to end.
// There are no binary PNG/ICNS fixtures to read in, so each case builds
// its own deterministic pixel buffer and checks round-trip fidelity
// instead of comparing against an external file: byte-exact for the
// RLE24 variants (is32, il32, it32), pixel-exact for the PNG-backed
// RGBA32 variants (icp4, icp5, ic07, ic08, ic11, ic13).
var rle24GoldenVariants = []icns.IconType{
	icns.RGB24_16x16,   // is32
	icns.RGB24_32x32,   // il32
	icns.RGB24_128x128, // it32
}

func TestGoldenRLE24VariantsByteExactRoundTrip(t *testing.T) {
	for _, iconType := range rle24GoldenVariants {
		width, height := iconType.PixelWidth(), iconType.PixelHeight()
		img := icns.NewImage(icns.RGB, width, height)
		for i := range img.Pix {
			// Gray pixels in alternating blocks of eight: distinct values,
			// which exercise literal packets, then one repeated value, which
			// exercises compressed packets.
			p := i / 3
			if p%16 < 8 {
				img.Pix[i] = byte(p % 251)
			} else {
				img.Pix[i] = byte(p / 16)
			}
		}

		element, err := icns.EncodeImage(img, iconType)
		assert.NoError(t, err, "%s", iconType)

		decoded, err := element.DecodeImage()
		assert.NoError(t, err, "%s", iconType)
		assert.Equal(t, img.Pix, decoded.Pix, "%s", iconType)

		reEncoded, err := icns.EncodeImage(decoded, iconType)
		assert.NoError(t, err, "%s", iconType)
		assert.Equal(t, element.Data, reEncoded.Data, "%s: re-encoding a decoded image must reproduce the same bytes", iconType)
	}
}

var pngGoldenVariants = []icns.IconType{
	icns.RGBA32_16x16,      // icp4
	icns.RGBA32_32x32,      // icp5
	icns.RGBA32_128x128,    // ic07
	icns.RGBA32_256x256,    // ic08
	icns.RGBA32_16x16_2x,   // ic11
	icns.RGBA32_128x128_2x, // ic13
}

func TestGoldenPNGVariantsPixelExactRoundTrip(t *testing.T) {
	for _, iconType := range pngGoldenVariants {
		width, height := iconType.PixelWidth(), iconType.PixelHeight()
		img := icns.NewImage(icns.RGBA, width, height)
		for i := 0; i < width*height; i++ {
			o := 4 * i
			img.Pix[o] = byte(i % 256)
			img.Pix[o+1] = byte((i * 7) % 256)
			img.Pix[o+2] = byte((i * 13) % 256)
			img.Pix[o+3] = byte((i*3 + 17) % 256)
		}

		element, err := icns.EncodeImage(img, iconType)
		assert.NoError(t, err, "%s", iconType)

		decoded, err := element.DecodeImage()
		assert.NoError(t, err, "%s", iconType)
		assert.Equal(t, img.Format, decoded.Format, "%s", iconType)
		assert.Equal(t, img.Pix, decoded.Pix, "%s", iconType)
	}
}
