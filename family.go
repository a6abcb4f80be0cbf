package icns

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// magic is the four-byte literal every ICNS file starts with.
var magic = [4]byte{'i', 'c', 'n', 's'}

// IconFamily is an ordered list of icon elements: the in-memory model of
// one ICNS file. OSType is not required to be unique across elements;
// readers preserve input order.
type IconFamily struct {
	Elements []IconElement
}

// NewFamily returns an empty family.
func NewFamily() IconFamily {
	return IconFamily{}
}

// TotalLength returns this family's framed length: 8 header bytes plus
// every element's framed length.
func (f IconFamily) TotalLength() uint32 {
	total := uint32(8)
	for _, e := range f.Elements {
		total += e.TotalLength()
	}
	return total
}

// AddIcon infers an icon type from image's dimensions and whether it has
// an alpha channel, then delegates to AddIconWithType. It returns
// ErrNoMatchingType if no variant matches image's dimensions.
func (f *IconFamily) AddIcon(image Image) error {
	iconType, ok := iconTypeForPixelSize(image.Width, image.Height, image.HasAlpha())
	if !ok {
		return errors.Wrapf(ErrNoMatchingType, "no icon type matches %dx%d", image.Width, image.Height)
	}
	return f.AddIconWithType(image, iconType)
}

// AddIconWithType builds one element from image for iconType (and, if
// iconType has a paired mask, a second element carrying the same
// image's alpha), appending them to the family in that order.
func (f *IconFamily) AddIconWithType(image Image, iconType IconType) error {
	element, err := EncodeImage(image, iconType)
	if err != nil {
		return err
	}
	f.Elements = append(f.Elements, element)

	if maskType, ok := iconType.MaskType(); ok {
		maskElement, err := EncodeImage(image, maskType)
		if err != nil {
			return err
		}
		f.Elements = append(f.Elements, maskElement)
	}
	return nil
}

// AvailableIcons returns the icon types for which a complete decoding is
// possible: every non-mask element whose tag is a known variant, if it
// needs no mask, or if an element bearing its paired mask's tag is also
// present anywhere in the family.
func (f IconFamily) AvailableIcons() []IconType {
	var out []IconType
	for _, e := range f.Elements {
		iconType, ok := IconTypeFromOSType(e.OSType)
		if !ok || iconType.IsMask() {
			continue
		}
		if f.HasIconWithType(iconType) {
			out = append(out, iconType)
		}
	}
	return out
}

// HasIconWithType reports whether iconType can be fully decoded from
// this family: its color element is present, and if it requires a
// paired mask, that mask element is present too.
func (f IconFamily) HasIconWithType(iconType IconType) bool {
	if _, ok := f.findElement(iconType.OSType()); !ok {
		return false
	}
	if maskType, ok := iconType.MaskType(); ok {
		if _, ok := f.findElement(maskType.OSType()); !ok {
			return false
		}
	}
	return true
}

// GetIconWithType locates and decodes iconType from this family, fusing
// its paired mask element when one is required.
func (f IconFamily) GetIconWithType(iconType IconType) (Image, error) {
	element, ok := f.findElement(iconType.OSType())
	if !ok {
		return Image{}, errors.Wrapf(ErrNotFound, "%s", iconType)
	}
	maskType, needsMask := iconType.MaskType()
	if !needsMask {
		return element.DecodeImage()
	}
	maskElement, ok := f.findElement(maskType.OSType())
	if !ok {
		return Image{}, errors.Wrapf(ErrNotFound, "mask %s for %s", maskType, iconType)
	}
	return element.DecodeImageWithMask(maskElement)
}

func (f IconFamily) findElement(ostype OSType) (IconElement, bool) {
	for _, e := range f.Elements {
		if e.OSType == ostype {
			return e, true
		}
	}
	return IconElement{}, false
}

// ReadFamily reads a whole ICNS file from r: the 4-byte magic, a
// big-endian uint32 total length, then elements back to back until
// totalLen bytes have been consumed. It returns ErrInvalidMagic if the
// file does not start with "icns", ErrInvalidLength if the declared
// total length is under 8, and ErrInvalidLength if any element's framed
// length would overrun the declared total.
func ReadFamily(r io.Reader) (IconFamily, error) {
	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return IconFamily{}, errors.Wrap(err, "icns: reading file header")
	}
	if [4]byte(header[:4]) != magic {
		return IconFamily{}, errors.Wrapf(ErrInvalidMagic, "got %q", header[:4])
	}
	totalLen := binary.BigEndian.Uint32(header[4:8])
	if totalLen < 8 {
		return IconFamily{}, errors.Wrapf(ErrInvalidLength, "total length %d is less than 8", totalLen)
	}

	var family IconFamily
	pos := uint32(8)
	for pos < totalLen {
		var elementHeader [8]byte
		if _, err := io.ReadFull(r, elementHeader[:]); err != nil {
			return IconFamily{}, errors.Wrap(err, "icns: reading element header")
		}
		framedLen := binary.BigEndian.Uint32(elementHeader[4:8])
		if uint64(pos)+uint64(framedLen) > uint64(totalLen) {
			return IconFamily{}, errors.Wrapf(ErrInvalidLength,
				"element %q overruns declared total length %d", elementHeader[:4], totalLen)
		}
		element, err := ReadElement(io.MultiReader(bytes.NewReader(elementHeader[:]), r))
		if err != nil {
			return IconFamily{}, err
		}
		pos += element.TotalLength()
		family.Elements = append(family.Elements, element)
	}
	return family, nil
}

// WriteTo writes this family as a complete ICNS file: magic, the sum of
// framed lengths as a big-endian uint32, then each element in list
// order.
func (f IconFamily) WriteTo(w io.Writer) (int64, error) {
	var header [8]byte
	copy(header[:4], magic[:])
	binary.BigEndian.PutUint32(header[4:8], f.TotalLength())
	if _, err := w.Write(header[:]); err != nil {
		return 0, errors.Wrap(err, "icns: writing file header")
	}
	written := int64(8)
	for _, e := range f.Elements {
		n, err := e.WriteTo(w)
		if err != nil {
			return written, err
		}
		written += n
	}
	return written, nil
}
