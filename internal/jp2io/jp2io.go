// Package jp2io bridges this module's pixel-format model to
// github.com/mrjoshuak/go-jpeg2000 for optional JPEG-2000 decoding of
// JP2PNG-encoded icon elements. It is decode-only: this package has no
// JPEG-2000 encoder, since no icon variant is ever written as JP2.
package jp2io

import (
	"bytes"
	"image/color"

	"github.com/mrjoshuak/go-jpeg2000"
	"github.com/pkg/errors"
)

// ErrUnsupportedColorSpace is returned for a JPEG-2000 color space this
// package (and the format generally) doesn't support for icons: CMYK, or
// any file carrying an embedded ICC color profile.
var ErrUnsupportedColorSpace = errors.New("jp2io: unsupported JPEG-2000 color space")

// Format mirrors icns.PixelFormat, for the same import-cycle reason as
// internal/pngio.Format.
type Format int

const (
	RGBA Format = iota
	RGB
	GrayAlpha
	Gray
)

// Decoded is a decoded JPEG-2000 image's pixel data.
type Decoded struct {
	Format Format
	Width  int
	Height int
	Pix    []byte
}

// Decode decodes a JPEG-2000 (JP2 or raw codestream) byte slice. It
// rejects CMYK color spaces and any file with an embedded ICC profile
// before running the full decode.
func Decode(data []byte) (Decoded, error) {
	meta, err := jpeg2000.DecodeMetadata(bytes.NewReader(data))
	if err != nil {
		return Decoded{}, errors.Wrap(err, "jp2io: reading JPEG-2000 metadata")
	}
	if meta.ColorSpace == jpeg2000.ColorSpaceCMYK {
		return Decoded{}, errors.Wrap(ErrUnsupportedColorSpace, "CMYK color space")
	}
	if len(meta.ICCProfile) > 0 {
		return Decoded{}, errors.Wrap(ErrUnsupportedColorSpace, "embedded ICC profile")
	}

	img, err := jpeg2000.Decode(bytes.NewReader(data))
	if err != nil {
		return Decoded{}, errors.Wrap(err, "jp2io: decoding JPEG-2000 image")
	}

	format := formatFor(meta)
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

// formatFor picks a pixel format from the decoded metadata's color space
// and component count.
func formatFor(meta *jpeg2000.Metadata) Format {
	switch meta.ColorSpace {
	case jpeg2000.ColorSpaceGray:
		if meta.NumComponents >= 2 {
			return GrayAlpha
		}
		return Gray
	default:
		if meta.NumComponents >= 4 {
			return RGBA
		}
		return RGB
	}
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
