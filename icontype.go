package icns

// IconType enumerates the closed set of icon variants this package knows
// how to encode and decode. Each variant binds an OSType to pixel
// dimensions, a pixel density, a storage Encoding, and (for the RLE24
// variants) a paired Mask8 variant.
//
// This is modeled as a tagged sum with static tables rather than as an
// open registry: the set of icon types a .icns file can contain is fixed
// by Apple's format, not extensible by callers of this package.
type IconType int

// The full closed set, in Apple's canonical OSType order.
const (
	Mono32x32 IconType = iota
	MonoA32x32
	RGB24_16x16
	Mask8_16x16
	RGB24_32x32
	Mask8_32x32
	RGB24_48x48
	Mask8_48x48
	RGB24_128x128
	Mask8_128x128
	RGBA32_16x16
	RGBA32_32x32
	RGBA32_64x64
	RGBA32_128x128
	RGBA32_256x256
	RGBA32_512x512
	RGBA32_512x512_2x
	RGBA32_16x16_2x
	RGBA32_32x32_2x
	RGBA32_128x128_2x
	RGBA32_256x256_2x

	numIconTypes
)

type iconTypeInfo struct {
	ostype    OSType
	screenW   int
	screenH   int
	density   int
	encoding  Encoding
	maskType  IconType
	hasMask   bool
	isMask    bool
}

var iconTypeTable = [numIconTypes]iconTypeInfo{
	Mono32x32:  {ostype: OSType{'I', 'C', 'O', 'N'}, screenW: 32, screenH: 32, density: 1, encoding: Mono},
	MonoA32x32: {ostype: OSType{'I', 'C', 'N', '#'}, screenW: 32, screenH: 32, density: 1, encoding: MonoA},

	RGB24_16x16:  {ostype: OSType{'i', 's', '3', '2'}, screenW: 16, screenH: 16, density: 1, encoding: RLE24, maskType: Mask8_16x16, hasMask: true},
	Mask8_16x16:  {ostype: OSType{'s', '8', 'm', 'k'}, screenW: 16, screenH: 16, density: 1, encoding: Mask8, isMask: true},
	RGB24_32x32:  {ostype: OSType{'i', 'l', '3', '2'}, screenW: 32, screenH: 32, density: 1, encoding: RLE24, maskType: Mask8_32x32, hasMask: true},
	Mask8_32x32:  {ostype: OSType{'l', '8', 'm', 'k'}, screenW: 32, screenH: 32, density: 1, encoding: Mask8, isMask: true},
	RGB24_48x48:  {ostype: OSType{'i', 'h', '3', '2'}, screenW: 48, screenH: 48, density: 1, encoding: RLE24, maskType: Mask8_48x48, hasMask: true},
	Mask8_48x48:  {ostype: OSType{'h', '8', 'm', 'k'}, screenW: 48, screenH: 48, density: 1, encoding: Mask8, isMask: true},
	RGB24_128x128: {ostype: OSType{'i', 't', '3', '2'}, screenW: 128, screenH: 128, density: 1, encoding: RLE24, maskType: Mask8_128x128, hasMask: true},
	Mask8_128x128: {ostype: OSType{'t', '8', 'm', 'k'}, screenW: 128, screenH: 128, density: 1, encoding: Mask8, isMask: true},

	RGBA32_16x16:       {ostype: OSType{'i', 'c', 'p', '4'}, screenW: 16, screenH: 16, density: 1, encoding: JP2PNG},
	RGBA32_32x32:       {ostype: OSType{'i', 'c', 'p', '5'}, screenW: 32, screenH: 32, density: 1, encoding: JP2PNG},
	RGBA32_64x64:       {ostype: OSType{'i', 'c', 'p', '6'}, screenW: 64, screenH: 64, density: 1, encoding: JP2PNG},
	RGBA32_128x128:     {ostype: OSType{'i', 'c', '0', '7'}, screenW: 128, screenH: 128, density: 1, encoding: JP2PNG},
	RGBA32_256x256:     {ostype: OSType{'i', 'c', '0', '8'}, screenW: 256, screenH: 256, density: 1, encoding: JP2PNG},
	RGBA32_512x512:     {ostype: OSType{'i', 'c', '0', '9'}, screenW: 512, screenH: 512, density: 1, encoding: JP2PNG},
	RGBA32_512x512_2x:  {ostype: OSType{'i', 'c', '1', '0'}, screenW: 512, screenH: 512, density: 2, encoding: JP2PNG},
	RGBA32_16x16_2x:    {ostype: OSType{'i', 'c', '1', '1'}, screenW: 16, screenH: 16, density: 2, encoding: JP2PNG},
	RGBA32_32x32_2x:    {ostype: OSType{'i', 'c', '1', '2'}, screenW: 32, screenH: 32, density: 2, encoding: JP2PNG},
	RGBA32_128x128_2x:  {ostype: OSType{'i', 'c', '1', '3'}, screenW: 128, screenH: 128, density: 2, encoding: JP2PNG},
	RGBA32_256x256_2x:  {ostype: OSType{'i', 'c', '1', '4'}, screenW: 256, screenH: 256, density: 2, encoding: JP2PNG},
}

var ostypeToIconType map[OSType]IconType

func init() {
	ostypeToIconType = make(map[OSType]IconType, numIconTypes)
	for t := IconType(0); t < numIconTypes; t++ {
		ostypeToIconType[iconTypeTable[t].ostype] = t
	}
}

// IconTypeFromOSType returns the icon type associated with the given
// OSType, if any.
func IconTypeFromOSType(ostype OSType) (IconType, bool) {
	t, ok := ostypeToIconType[ostype]
	return t, ok
}

// OSType returns the four-byte identifier that represents this icon type.
func (t IconType) OSType() OSType {
	return iconTypeTable[t].ostype
}

// ScreenWidth returns the screen (logical) width of this icon type, in
// points. For 2x "retina" variants this is half the pixel width.
func (t IconType) ScreenWidth() int { return iconTypeTable[t].screenW }

// ScreenHeight returns the screen (logical) height of this icon type.
func (t IconType) ScreenHeight() int { return iconTypeTable[t].screenH }

// PixelDensity returns 2 for 2x "retina" variants, 1 otherwise.
func (t IconType) PixelDensity() int { return iconTypeTable[t].density }

// PixelWidth returns the pixel width of this icon type's raster data:
// ScreenWidth() * PixelDensity().
func (t IconType) PixelWidth() int { return iconTypeTable[t].screenW * iconTypeTable[t].density }

// PixelHeight returns the pixel height of this icon type's raster data:
// ScreenHeight() * PixelDensity().
func (t IconType) PixelHeight() int { return iconTypeTable[t].screenH * iconTypeTable[t].density }

// Encoding returns the on-disk payload encoding for this icon type.
func (t IconType) Encoding() Encoding { return iconTypeTable[t].encoding }

// IsMask reports whether this icon type is itself a mask for some other
// icon type (as opposed to a color or combined-color-and-alpha type).
func (t IconType) IsMask() bool { return iconTypeTable[t].isMask }

// MaskType returns the mask icon type paired with this one, if any. Only
// the RLE24 color variants have a paired mask; mask types and JP2/PNG
// (already-RGBA) types return ok == false.
func (t IconType) MaskType() (IconType, bool) {
	info := iconTypeTable[t]
	return info.maskType, info.hasMask
}

// String returns the OSType string for this icon type, for diagnostics.
func (t IconType) String() string {
	if t < 0 || t >= numIconTypes {
		return "IconType(invalid)"
	}
	return iconTypeTable[t].ostype.String()
}

// iconTypeForPixelSize implements the auto-variant-selection policy:
// given the pixel dimensions of an image and whether it carries an alpha
// channel, pick the icon type AddIcon should use.
func iconTypeForPixelSize(width, height int, hasAlpha bool) (IconType, bool) {
	if width != height {
		return 0, false
	}
	switch width {
	case 16:
		if hasAlpha {
			return RGBA32_16x16, true
		}
		return RGB24_16x16, true
	case 32:
		if hasAlpha {
			return RGBA32_32x32, true
		}
		return RGB24_32x32, true
	case 48:
		return RGB24_48x48, true
	case 64:
		return RGBA32_64x64, true
	case 128:
		if hasAlpha {
			return RGBA32_128x128, true
		}
		return RGB24_128x128, true
	case 256:
		return RGBA32_256x256, true
	case 512:
		return RGBA32_512x512, true
	case 1024:
		return RGBA32_512x512_2x, true
	default:
		return 0, false
	}
}

// AllIconTypes returns every icon type in the registry, in table order.
// It is used by tests that must exercise the whole closed set.
func AllIconTypes() []IconType {
	types := make([]IconType, 0, numIconTypes)
	for t := IconType(0); t < numIconTypes; t++ {
		types = append(types, t)
	}
	return types
}
