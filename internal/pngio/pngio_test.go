package pngio_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julian-bruyers/icns/internal/pngio"
)

func encodeGoPNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeRGBADetectsTrueColorAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	data := encodeGoPNG(t, src)

	decoded, err := pngio.Decode(data)
	assert.NoError(t, err)
	assert.Equal(t, pngio.RGBA, decoded.Format)
	assert.Equal(t, []byte{10, 20, 30, 40}, decoded.Pix[:4])
}

func TestDecodeGrayDetectsGrayscale(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.Gray{Y: 77})
	data := encodeGoPNG(t, src)

	decoded, err := pngio.Decode(data)
	assert.NoError(t, err)
	assert.Equal(t, pngio.Gray, decoded.Format)
	assert.Equal(t, byte(77), decoded.Pix[0])
}

func TestEncodeGrayAlphaPromotesToRGBA(t *testing.T) {
	d := pngio.Decoded{Format: pngio.GrayAlpha, Width: 1, Height: 1, Pix: []byte{0x55, 0x80}}
	var buf bytes.Buffer
	assert.NoError(t, pngio.Encode(&buf, d))

	decoded, err := pngio.Decode(buf.Bytes())
	assert.NoError(t, err)
	assert.Equal(t, pngio.RGBA, decoded.Format)
	assert.Equal(t, []byte{0x55, 0x55, 0x55, 0x80}, decoded.Pix)
}

func TestDecodePalettedYieldsRGB(t *testing.T) {
	pal := color.Palette{color.NRGBA{R: 1, G: 2, B: 3, A: 255}, color.NRGBA{R: 4, G: 5, B: 6, A: 255}}
	src := image.NewPaletted(image.Rect(0, 0, 2, 1), pal)
	src.SetColorIndex(0, 0, 0)
	src.SetColorIndex(1, 0, 1)
	data := encodeGoPNG(t, src)

	decoded, err := pngio.Decode(data)
	assert.NoError(t, err)
	assert.Equal(t, pngio.RGB, decoded.Format)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, decoded.Pix)
}

func TestDecodeRejectsTruncatedFile(t *testing.T) {
	_, err := pngio.Decode([]byte{0x89, 0x50, 0x4E})
	assert.ErrorIs(t, err, pngio.ErrUnsupportedColorType)
}

func TestEncodeRGBARoundTrips(t *testing.T) {
	d := pngio.Decoded{Format: pngio.RGBA, Width: 1, Height: 1, Pix: []byte{11, 22, 33, 44}}
	var buf bytes.Buffer
	assert.NoError(t, pngio.Encode(&buf, d))

	decoded, err := pngio.Decode(buf.Bytes())
	assert.NoError(t, err)
	assert.Equal(t, pngio.RGBA, decoded.Format)
	assert.Equal(t, d.Pix, decoded.Pix)
}

func TestEncodeRGBRoundTrips(t *testing.T) {
	d := pngio.Decoded{Format: pngio.RGB, Width: 1, Height: 1, Pix: []byte{11, 22, 33}}
	var buf bytes.Buffer
	assert.NoError(t, pngio.Encode(&buf, d))

	decoded, err := pngio.Decode(buf.Bytes())
	assert.NoError(t, err)
	assert.Equal(t, pngio.RGB, decoded.Format)
	assert.Equal(t, []byte{11, 22, 33}, decoded.Pix)
}

func TestEncodeGrayRoundTrips(t *testing.T) {
	d := pngio.Decoded{Format: pngio.Gray, Width: 1, Height: 1, Pix: []byte{200}}
	var buf bytes.Buffer
	assert.NoError(t, pngio.Encode(&buf, d))

	decoded, err := pngio.Decode(buf.Bytes())
	assert.NoError(t, err)
	assert.Equal(t, pngio.Gray, decoded.Format)
	assert.Equal(t, []byte{200}, decoded.Pix)
}
