package icns_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julian-bruyers/icns"
)

func TestOSTypeRoundTripsForEveryVariant(t *testing.T) {
	for _, iconType := range icns.AllIconTypes() {
		got, ok := icns.IconTypeFromOSType(iconType.OSType())
		assert.True(t, ok, "%s", iconType)
		assert.Equal(t, iconType, got)
	}
}

func TestOSTypeFromUnknownBytesIsNotFound(t *testing.T) {
	ostype, err := icns.ParseOSType("zzzz")
	assert.NoError(t, err)
	_, ok := icns.IconTypeFromOSType(ostype)
	assert.False(t, ok)
}

func TestParseOSTypeRejectsWrongLength(t *testing.T) {
	_, err := icns.ParseOSType("abc")
	assert.Error(t, err)
	_, err = icns.ParseOSType("abcde")
	assert.Error(t, err)
}

func TestAutoVariantSelection64x64RGBAYieldsRGBA32_64x64(t *testing.T) {
	family := icns.NewFamily()
	img := icns.NewImage(icns.RGBA, 64, 64)
	assert.NoError(t, family.AddIcon(img))
	assert.Len(t, family.Elements, 1)
	assert.Equal(t, icns.RGBA32_64x64.OSType(), family.Elements[0].OSType)
}

func TestAutoVariantSelection48x48RGBYieldsColorAndMaskPair(t *testing.T) {
	family := icns.NewFamily()
	img := icns.NewImage(icns.RGB, 48, 48)
	assert.NoError(t, family.AddIcon(img))
	assert.True(t, family.HasIconWithType(icns.RGB24_48x48))
	assert.True(t, family.HasIconWithType(icns.Mask8_48x48))
}

func TestAutoVariantSelection1024x1024YieldsIc10(t *testing.T) {
	family := icns.NewFamily()
	img := icns.NewImage(icns.RGBA, 1024, 1024)
	assert.NoError(t, family.AddIcon(img))
	assert.Equal(t, icns.RGBA32_512x512_2x.OSType(), family.Elements[0].OSType)
}

func TestAutoVariantSelectionRejectsUnmatchedSize(t *testing.T) {
	family := icns.NewFamily()
	img := icns.NewImage(icns.RGB, 13, 13)
	err := family.AddIcon(img)
	assert.ErrorIs(t, err, icns.ErrNoMatchingType)
}
