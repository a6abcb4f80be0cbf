package icns

// Image is a decoded raster icon: a pixel format, dimensions, and a
// row-major pixel buffer, top-left first, channels in the order the format
// implies (R,G,B[,A] or gray[,A]).
type Image struct {
	Format PixelFormat
	Width  int
	Height int
	Pix    []byte
}

// NewImage creates a new image of the given format and dimensions, with
// every byte of its pixel buffer set to zero.
func NewImage(format PixelFormat, width, height int) Image {
	bits := format.BitsPerPixel() * width * height
	return Image{
		Format: format,
		Width:  width,
		Height: height,
		Pix:    make([]byte, (bits+7)/8),
	}
}

// HasAlpha reports whether this image's pixel format carries a meaningful
// alpha channel (RGBA, GrayAlpha, or Alpha).
func (img Image) HasAlpha() bool {
	switch img.Format {
	case RGBA, GrayAlpha, Alpha:
		return true
	default:
		return false
	}
}

// rgba returns this image's i-th pixel as four 8-bit samples, regardless
// of the image's native format. Color channels are zero for an Alpha
// image; alpha is 0xFF for any format that has no alpha channel of its
// own. This is the common pivot every ConvertTo conversion passes through.
func (img Image) rgba(i int) (r, g, b, a byte) {
	switch img.Format {
	case RGBA:
		o := 4 * i
		return img.Pix[o], img.Pix[o+1], img.Pix[o+2], img.Pix[o+3]
	case RGB:
		o := 3 * i
		return img.Pix[o], img.Pix[o+1], img.Pix[o+2], 0xFF
	case GrayAlpha:
		o := 2 * i
		gray := img.Pix[o]
		return gray, gray, gray, img.Pix[o+1]
	case Gray:
		gray := img.Pix[i]
		return gray, gray, gray, 0xFF
	case Alpha:
		return 0, 0, 0, img.Pix[i]
	default:
		return 0, 0, 0, 0
	}
}

// ConvertTo returns a copy of this image in the given pixel format.
// Conversion is total and deterministic:
//
//   - converting a format to itself is an identity copy;
//   - RGB(A) -> Gray(Alpha) computes gray as the integer mean (R+G+B)/3;
//   - dropping alpha (-> RGB or -> Gray) discards it silently;
//   - producing alpha from a source with no alpha channel yields 0xFF
//     (fully opaque) for every pixel;
//   - producing color from an alpha-only source yields all-zero color.
func (img Image) ConvertTo(format PixelFormat) Image {
	if format == img.Format {
		out := NewImage(format, img.Width, img.Height)
		copy(out.Pix, img.Pix)
		return out
	}

	out := NewImage(format, img.Width, img.Height)
	n := img.Width * img.Height
	for i := 0; i < n; i++ {
		r, g, b, a := img.rgba(i)
		switch format {
		case RGBA:
			o := 4 * i
			out.Pix[o], out.Pix[o+1], out.Pix[o+2], out.Pix[o+3] = r, g, b, a
		case RGB:
			o := 3 * i
			out.Pix[o], out.Pix[o+1], out.Pix[o+2] = r, g, b
		case GrayAlpha:
			o := 2 * i
			out.Pix[o] = grayMean(r, g, b)
			out.Pix[o+1] = a
		case Gray:
			out.Pix[i] = grayMean(r, g, b)
		case Alpha:
			out.Pix[i] = a
		}
	}
	return out
}

// grayMean computes the integer mean (r+g+b)/3.
func grayMean(r, g, b byte) byte {
	return byte((int(r) + int(g) + int(b)) / 3)
}
