package icns

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/julian-bruyers/icns/internal/jp2io"
	"github.com/julian-bruyers/icns/internal/pngio"
	"github.com/julian-bruyers/icns/internal/rle24"
)

// jp2Magic is the 12-byte JPEG-2000 (JP2 container) signature.
var jp2Magic = []byte{0x00, 0x00, 0x00, 0x0C, 0x6A, 0x50, 0x20, 0x20, 0x0D, 0x0A, 0x87, 0x0A}

// IconElement is one framed data block of an icon family: a four-byte
// OSType tag and the payload bytes it owns.
type IconElement struct {
	OSType OSType
	Data   []byte
}

// NewElement builds an element directly from a tag and payload, without
// any image encoding. It is mostly useful for round-tripping opaque
// elements a family didn't originate, such as metadata or resource
// blocks this package doesn't interpret.
func NewElement(ostype OSType, data []byte) IconElement {
	return IconElement{OSType: ostype, Data: data}
}

// TotalLength returns this element's framed length: 8 header bytes plus
// its payload.
func (e IconElement) TotalLength() uint32 {
	return uint32(8 + len(e.Data))
}

// ReadElement reads one framed element from r: four OSType bytes, a
// big-endian uint32 framed length (including those 8 header bytes), then
// framedLen-8 bytes of payload.
func ReadElement(r io.Reader) (IconElement, error) {
	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return IconElement{}, errors.Wrap(err, "icns: reading element header")
	}
	framedLen := binary.BigEndian.Uint32(header[4:8])
	if framedLen < 8 {
		return IconElement{}, errors.Wrapf(ErrInvalidLength, "element framed length %d is less than 8", framedLen)
	}
	data := make([]byte, framedLen-8)
	if _, err := io.ReadFull(r, data); err != nil {
		return IconElement{}, errors.Wrap(err, "icns: reading element payload")
	}
	var ostype OSType
	copy(ostype[:], header[:4])
	return IconElement{OSType: ostype, Data: data}, nil
}

// WriteTo writes this element's framing and payload to w.
func (e IconElement) WriteTo(w io.Writer) (int64, error) {
	var header [8]byte
	copy(header[:4], e.OSType[:])
	binary.BigEndian.PutUint32(header[4:8], e.TotalLength())
	if _, err := w.Write(header[:]); err != nil {
		return 0, errors.Wrap(err, "icns: writing element header")
	}
	if _, err := w.Write(e.Data); err != nil {
		return 0, errors.Wrap(err, "icns: writing element payload")
	}
	return int64(e.TotalLength()), nil
}

// EncodeImage builds an element for iconType from image. image's
// dimensions must equal iconType's pixel dimensions.
func EncodeImage(image Image, iconType IconType) (IconElement, error) {
	if image.Width != iconType.PixelWidth() || image.Height != iconType.PixelHeight() {
		return IconElement{}, errors.Wrapf(ErrDimensionMismatch,
			"image is %dx%d, %s wants %dx%d",
			image.Width, image.Height, iconType, iconType.PixelWidth(), iconType.PixelHeight())
	}

	var data []byte
	var err error
	switch iconType.Encoding() {
	case JP2PNG:
		data, err = encodeJP2PNG(image)
	case RLE24:
		data, err = encodeRLE24(image, iconType)
	case Mask8:
		data, err = encodeMask8(image)
	case Mono:
		data, err = encodeMono(image)
	case MonoA:
		data, err = encodeMonoA(image)
	default:
		return IconElement{}, errors.Errorf("icns: unhandled encoding %s", iconType.Encoding())
	}
	if err != nil {
		return IconElement{}, err
	}
	return IconElement{OSType: iconType.OSType(), Data: data}, nil
}

func encodeJP2PNG(image Image) ([]byte, error) {
	format := image.Format
	// pngio has no Alpha format (the PNG bridge never represents an
	// alpha-only plane on its own); convert to GrayAlpha first, the same
	// compromise the reference PNG bridge makes.
	if format == Alpha {
		image = image.ConvertTo(GrayAlpha)
		format = GrayAlpha
	}
	var buf bytes.Buffer
	decoded := pngio.Decoded{
		Format: pngFormatFor(format),
		Width:  image.Width,
		Height: image.Height,
		Pix:    image.Pix,
	}
	if err := pngio.Encode(&buf, decoded); err != nil {
		return nil, errors.Wrap(err, "icns: encoding PNG payload")
	}
	return buf.Bytes(), nil
}

func pngFormatFor(format PixelFormat) pngio.Format {
	switch format {
	case RGBA:
		return pngio.RGBA
	case RGB:
		return pngio.RGB
	case GrayAlpha:
		return pngio.GrayAlpha
	case Gray:
		return pngio.Gray
	default:
		return pngio.RGBA
	}
}

func encodeRLE24(image Image, iconType IconType) ([]byte, error) {
	if image.Format != RGB {
		image = image.ConvertTo(RGB)
	}
	n := image.Width * image.Height
	r, g, b := make([]byte, n), make([]byte, n), make([]byte, n)
	for i := 0; i < n; i++ {
		o := 3 * i
		r[i], g[i], b[i] = image.Pix[o], image.Pix[o+1], image.Pix[o+2]
	}
	quirk := iconType == RGB24_128x128
	return rle24.EncodeQuirked([3][]byte{r, g, b}, quirk), nil
}

func encodeMask8(image Image) ([]byte, error) {
	alpha := image.ConvertTo(Alpha)
	out := make([]byte, len(alpha.Pix))
	copy(out, alpha.Pix)
	return out, nil
}

func encodeMono(image Image) ([]byte, error) {
	gray := image.ConvertTo(Gray)
	n := gray.Width * gray.Height
	if n%8 != 0 {
		return nil, errors.Wrapf(ErrPayloadSize, "pixel count %d is not divisible by 8", n)
	}
	return packMonoBits(gray.Pix), nil
}

func encodeMonoA(image Image) ([]byte, error) {
	ga := image.ConvertTo(GrayAlpha)
	n := ga.Width * ga.Height
	if n%8 != 0 {
		return nil, errors.Wrapf(ErrPayloadSize, "pixel count %d is not divisible by 8", n)
	}
	gray := make([]byte, n)
	alpha := make([]byte, n)
	for i := 0; i < n; i++ {
		gray[i] = ga.Pix[2*i]
		alpha[i] = ga.Pix[2*i+1]
	}
	out := make([]byte, 0, n/4)
	out = append(out, packMonoBits(gray)...)
	out = append(out, packAlphaBits(alpha)...)
	return out, nil
}

// packMonoBits packs one gray byte per pixel into 1-bpp MSB-first bytes:
// pixel value < 128 sets the bit (black/ink), else the bit is clear.
func packMonoBits(gray []byte) []byte {
	out := make([]byte, len(gray)/8)
	for i, v := range gray {
		if v < 128 {
			out[i/8] |= 1 << (7 - uint(i%8))
		}
	}
	return out
}

// packAlphaBits packs one alpha byte per pixel into 1-bpp MSB-first
// bytes: alpha >= 128 sets the bit (opaque).
func packAlphaBits(alpha []byte) []byte {
	out := make([]byte, len(alpha)/8)
	for i, v := range alpha {
		if v >= 128 {
			out[i/8] |= 1 << (7 - uint(i%8))
		}
	}
	return out
}

// DecodeImage decodes this element into an image. The element's OSType
// must be a known icon type.
func (e IconElement) DecodeImage() (Image, error) {
	iconType, ok := IconTypeFromOSType(e.OSType)
	if !ok {
		return Image{}, errors.Wrapf(ErrUnsupportedOSType, "OSType %q", e.OSType)
	}
	width, height := iconType.PixelWidth(), iconType.PixelHeight()

	switch iconType.Encoding() {
	case JP2PNG:
		return decodeJP2PNG(e.Data, width, height)
	case RLE24:
		return decodeRLE24(e.Data, width, height)
	case Mask8:
		return decodeMask8(e.Data, width, height)
	case Mono:
		return decodeMono(e.Data, width, height)
	case MonoA:
		return decodeMonoA(e.Data, width, height)
	default:
		return Image{}, errors.Errorf("icns: unhandled encoding %s", iconType.Encoding())
	}
}

func decodeJP2PNG(data []byte, width, height int) (Image, error) {
	if len(data) >= len(jp2Magic) && bytes.Equal(data[:len(jp2Magic)], jp2Magic) {
		decoded, err := jp2io.Decode(data)
		if err != nil {
			return Image{}, errors.Wrap(ErrUnsupportedPayload, err.Error())
		}
		if decoded.Width != width || decoded.Height != height {
			return Image{}, errors.Wrapf(ErrDimensionMismatch, "JP2 payload is %dx%d, want %dx%d", decoded.Width, decoded.Height, width, height)
		}
		return Image{Format: jp2FormatToImage(decoded.Format), Width: decoded.Width, Height: decoded.Height, Pix: decoded.Pix}, nil
	}

	decoded, err := pngio.Decode(data)
	if err != nil {
		return Image{}, errors.Wrap(ErrUnsupportedPayload, err.Error())
	}
	if decoded.Width != width || decoded.Height != height {
		return Image{}, errors.Wrapf(ErrDimensionMismatch, "PNG payload is %dx%d, want %dx%d", decoded.Width, decoded.Height, width, height)
	}
	return Image{Format: pngFormatToImage(decoded.Format), Width: decoded.Width, Height: decoded.Height, Pix: decoded.Pix}, nil
}

func pngFormatToImage(format pngio.Format) PixelFormat {
	switch format {
	case pngio.RGBA:
		return RGBA
	case pngio.RGB:
		return RGB
	case pngio.GrayAlpha:
		return GrayAlpha
	case pngio.Gray:
		return Gray
	default:
		return RGBA
	}
}

func jp2FormatToImage(format jp2io.Format) PixelFormat {
	switch format {
	case jp2io.RGBA:
		return RGBA
	case jp2io.RGB:
		return RGB
	case jp2io.GrayAlpha:
		return GrayAlpha
	case jp2io.Gray:
		return Gray
	default:
		return RGBA
	}
}

func decodeRLE24(data []byte, width, height int) (Image, error) {
	r, g, b, err := rle24.Decode(width*height, data)
	if err != nil {
		return Image{}, errors.Wrap(ErrInvalidRLE, err.Error())
	}
	out := NewImage(RGB, width, height)
	for i := range r {
		o := 3 * i
		out.Pix[o], out.Pix[o+1], out.Pix[o+2] = r[i], g[i], b[i]
	}
	return out, nil
}

func decodeMask8(data []byte, width, height int) (Image, error) {
	if len(data) != width*height {
		return Image{}, errors.Wrapf(ErrPayloadSize, "s8mk-style payload is %d bytes, want %d", len(data), width*height)
	}
	out := NewImage(Alpha, width, height)
	copy(out.Pix, data)
	return out, nil
}

func decodeMono(data []byte, width, height int) (Image, error) {
	n := width * height
	if len(data) != n/8 {
		return Image{}, errors.Wrapf(ErrPayloadSize, "Mono payload is %d bytes, want %d", len(data), n/8)
	}
	out := NewImage(Gray, width, height)
	unpackMonoBits(data, out.Pix, true)
	return out, nil
}

func decodeMonoA(data []byte, width, height int) (Image, error) {
	n := width * height
	if len(data) != n/4 {
		return Image{}, errors.Wrapf(ErrPayloadSize, "MonoA payload is %d bytes, want %d", len(data), n/4)
	}
	half := n / 8
	gray := make([]byte, n)
	alpha := make([]byte, n)
	unpackMonoBits(data[:half], gray, true)
	unpackMonoBits(data[half:], alpha, false)
	out := NewImage(GrayAlpha, width, height)
	for i := 0; i < n; i++ {
		out.Pix[2*i], out.Pix[2*i+1] = gray[i], alpha[i]
	}
	return out, nil
}

// unpackMonoBits unpacks 1-bpp MSB-first bits into one output byte per
// bit. When invert is true (the Mono color plane), a set bit ("ink")
// decodes to 0x00 and a clear bit to 0xFF; when false (the MonoA alpha
// plane), a set bit decodes to 0xFF (opaque) and a clear bit to 0x00.
func unpackMonoBits(packed []byte, out []byte, invert bool) {
	for i := range out {
		bit := (packed[i/8] >> (7 - uint(i%8))) & 1
		switch {
		case invert && bit == 1:
			out[i] = 0x00
		case invert:
			out[i] = 0xFF
		case bit == 1:
			out[i] = 0xFF
		default:
			out[i] = 0x00
		}
	}
}

// DecodeImageWithMask decodes a color element together with its paired
// mask element into a single RGBA image. e must be an RLE24 element and
// mask.OSType must equal e's icon type's paired mask OSType.
func (e IconElement) DecodeImageWithMask(mask IconElement) (Image, error) {
	iconType, ok := IconTypeFromOSType(e.OSType)
	if !ok {
		return Image{}, errors.Wrapf(ErrUnsupportedOSType, "OSType %q", e.OSType)
	}
	if iconType.Encoding() != RLE24 {
		return Image{}, errors.Wrapf(ErrUnsupportedOSType, "%s is not an RLE24 variant", iconType)
	}
	maskType, ok := iconType.MaskType()
	if !ok || mask.OSType != maskType.OSType() {
		return Image{}, errors.Wrapf(ErrUnsupportedOSType, "mask OSType %q does not pair with %s", mask.OSType, iconType)
	}

	width, height := iconType.PixelWidth(), iconType.PixelHeight()
	n := width * height
	if len(mask.Data) != n {
		return Image{}, errors.Wrapf(ErrPayloadSize, "mask payload is %d bytes, want %d", len(mask.Data), n)
	}

	r, g, b, err := rle24.Decode(n, e.Data)
	if err != nil {
		return Image{}, errors.Wrap(ErrInvalidRLE, err.Error())
	}

	out := NewImage(RGBA, width, height)
	for i := 0; i < n; i++ {
		o := 4 * i
		out.Pix[o], out.Pix[o+1], out.Pix[o+2], out.Pix[o+3] = r[i], g[i], b[i], mask.Data[i]
	}
	return out, nil
}
