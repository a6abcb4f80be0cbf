package icns_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julian-bruyers/icns"
)

func TestConvertToSelfIsIdentity(t *testing.T) {
	img := icns.NewImage(icns.RGBA, 2, 1)
	copy(img.Pix, []byte{10, 20, 30, 40, 50, 60, 70, 80})
	out := img.ConvertTo(icns.RGBA)
	assert.Equal(t, img.Pix, out.Pix)
}

func TestConvertRGBAToRGBToRGBAZeroesAlphaToOpaque(t *testing.T) {
	img := icns.NewImage(icns.RGBA, 1, 1)
	copy(img.Pix, []byte{10, 20, 30, 42})
	rgb := img.ConvertTo(icns.RGB)
	back := rgb.ConvertTo(icns.RGBA)
	assert.Equal(t, []byte{10, 20, 30}, rgb.Pix)
	assert.Equal(t, []byte{10, 20, 30, 0xFF}, back.Pix)
}

func TestConvertGrayToRGBAToGrayIsIdentity(t *testing.T) {
	img := icns.NewImage(icns.Gray, 1, 1)
	img.Pix[0] = 123
	rgba := img.ConvertTo(icns.RGBA)
	back := rgba.ConvertTo(icns.Gray)
	assert.Equal(t, img.Pix, back.Pix)
}

func TestConvertAlphaToGrayYieldsZero(t *testing.T) {
	img := icns.NewImage(icns.Alpha, 1, 1)
	img.Pix[0] = 200
	gray := img.ConvertTo(icns.Gray)
	assert.Equal(t, byte(0), gray.Pix[0])
}

func TestConvertGrayMeanIsIntegerDivision(t *testing.T) {
	img := icns.NewImage(icns.RGB, 1, 1)
	copy(img.Pix, []byte{1, 2, 2})
	gray := img.ConvertTo(icns.Gray)
	assert.Equal(t, byte(1), gray.Pix[0])
}

func TestHasAlpha(t *testing.T) {
	assert.True(t, icns.NewImage(icns.RGBA, 1, 1).HasAlpha())
	assert.True(t, icns.NewImage(icns.GrayAlpha, 1, 1).HasAlpha())
	assert.True(t, icns.NewImage(icns.Alpha, 1, 1).HasAlpha())
	assert.False(t, icns.NewImage(icns.RGB, 1, 1).HasAlpha())
	assert.False(t, icns.NewImage(icns.Gray, 1, 1).HasAlpha())
}
