// Package pngio bridges this module's pixel-format model to the standard
// library's PNG codec: encode an image to PNG bytes, or decode PNG bytes
// back into pixel data and the format they were stored in.
package pngio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/pkg/errors"
)

// ErrUnsupportedColorType is returned by Decode for a PNG color type this
// package cannot represent: anything other than grayscale, RGB, paletted,
// grayscale+alpha, or RGBA (the five types the PNG spec actually defines,
// so in practice this only fires on a malformed IHDR chunk).
var ErrUnsupportedColorType = errors.New("pngio: unsupported PNG color type")

// Format mirrors icns.PixelFormat without importing the parent package
// (which would create an import cycle, since the parent package imports
// this one). The element codec translates between the two.
type Format int

const (
	RGBA Format = iota
	RGB
	GrayAlpha
	Gray
)

// Decoded is a decoded PNG's pixel data in one of the four Formats above.
type Decoded struct {
	Format Format
	Width  int
	Height int
	Pix    []byte
}

// pngColorType values, from the IHDR chunk (ISO/IEC 15948 §11.2.2).
const (
	ctGrayscale      = 0
	ctTrueColor      = 2
	ctPaletted       = 3
	ctGrayscaleAlpha = 4
	ctTrueColorAlpha = 6
)

// Decode reads a PNG file's pixels into the Format its IHDR color type
// implies. Every source pixel is converted through color.NRGBAModel,
// which transparently strips any 16-bit depth down to 8 and expands a
// palette index into its RGB(A) color, without this package needing its
// own IHDR-to-pixel-buffer unpacker.
func Decode(data []byte) (Decoded, error) {
	colorType, err := sniffColorType(data)
	if err != nil {
		return Decoded{}, err
	}
	format, err := formatForColorType(colorType)
	if err != nil {
		return Decoded{}, err
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return Decoded{}, errors.Wrap(err, "pngio: decoding PNG")
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	out := Decoded{Format: format, Width: width, Height: height}
	out.Pix = make([]byte, pixBufferLen(format, width, height))

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			writePixel(out.Pix, format, i, c)
			i++
		}
	}
	return out, nil
}

func pixBufferLen(format Format, width, height int) int {
	bitsPerPixel := map[Format]int{RGBA: 32, RGB: 24, GrayAlpha: 16, Gray: 8}[format]
	return (bitsPerPixel*width*height + 7) / 8
}

func writePixel(pix []byte, format Format, i int, c color.NRGBA) {
	switch format {
	case RGBA:
		o := 4 * i
		pix[o], pix[o+1], pix[o+2], pix[o+3] = c.R, c.G, c.B, c.A
	case RGB:
		o := 3 * i
		pix[o], pix[o+1], pix[o+2] = c.R, c.G, c.B
	case GrayAlpha:
		o := 2 * i
		pix[o], pix[o+1] = c.R, c.A
	case Gray:
		pix[i] = c.R
	}
}

func formatForColorType(colorType byte) (Format, error) {
	switch colorType {
	case ctGrayscale:
		return Gray, nil
	case ctTrueColor, ctPaletted:
		return RGB, nil
	case ctGrayscaleAlpha:
		return GrayAlpha, nil
	case ctTrueColorAlpha:
		return RGBA, nil
	default:
		return 0, errors.Wrapf(ErrUnsupportedColorType, "color type %d", colorType)
	}
}

// sniffColorType reads the color-type byte out of a PNG's IHDR chunk
// directly, the same kind of magic-byte inspection the rest of this
// module uses elsewhere to sniff a file's real type. The standard
// library's png.Decode discards this information once it picks a
// concrete image.Image type to return, so there is no other way to learn
// whether a true-color PNG had an alpha channel in the file versus one
// synthesized by the decoder.
func sniffColorType(data []byte) (byte, error) {
	// 8-byte signature, then a 4-byte length + "IHDR" + 13 bytes of IHDR
	// data (width, height, bit depth, color type, ...).
	const headerLen = 8 + 4 + 4 + 13
	if len(data) < headerLen {
		return 0, errors.Wrap(ErrUnsupportedColorType, "file too short to contain an IHDR chunk")
	}
	if !bytes.Equal(data[12:16], []byte("IHDR")) {
		return 0, errors.Wrap(ErrUnsupportedColorType, "first chunk is not IHDR")
	}
	// IHDR data starts at offset 16: width(4) height(4) bitDepth(1) colorType(1) ...
	return data[16+9], nil
}

// Encode writes d as a PNG file to w. Gray encodes as a grayscale PNG.
// Every other format is copied into an image.NRGBA first (RGB with alpha
// 0xFF, GrayAlpha with the gray replicated to all three channels), and the
// standard library's encoder then writes a true-color PNG if every pixel
// is opaque and a true-color-with-alpha PNG otherwise. Pixel values are
// preserved, but the Format that Decode reports back follows the on-disk
// color type: RGB comes back as RGB, RGBA and GrayAlpha come back as RGBA,
// or as RGB when every pixel is opaque.
func Encode(w io.Writer, d Decoded) error {
	bounds := image.Rect(0, 0, d.Width, d.Height)
	switch d.Format {
	case Gray:
		img := image.NewGray(bounds)
		copy(img.Pix, d.Pix)
		return errors.Wrap(png.Encode(w, img), "pngio: encoding PNG")
	default:
		img := image.NewNRGBA(bounds)
		fillNRGBA(img, d)
		return errors.Wrap(png.Encode(w, img), "pngio: encoding PNG")
	}
}

func fillNRGBA(img *image.NRGBA, d Decoded) {
	n := d.Width * d.Height
	for i := 0; i < n; i++ {
		var c color.NRGBA
		switch d.Format {
		case RGBA:
			o := 4 * i
			c = color.NRGBA{R: d.Pix[o], G: d.Pix[o+1], B: d.Pix[o+2], A: d.Pix[o+3]}
		case RGB:
			o := 3 * i
			c = color.NRGBA{R: d.Pix[o], G: d.Pix[o+1], B: d.Pix[o+2], A: 0xFF}
		case GrayAlpha:
			o := 2 * i
			gray := d.Pix[o]
			c = color.NRGBA{R: gray, G: gray, B: gray, A: d.Pix[o+1]}
		}
		img.Set(i%d.Width, i/d.Width, c)
	}
}
