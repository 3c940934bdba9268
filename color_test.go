package frascr

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frascr/frascr/reference"
)

func TestColorSpaces(t *testing.T) {
	tests := []struct {
		c    Color
		want ColorSpace
	}{
		{LCH{}, SpaceLCH},
		{Lab{}, SpaceLab},
		{Luv{}, SpaceLuv},
		{XYZ{}, SpaceXYZ},
		{RGBA8{}, SpaceSRGB8},
		{RGBA16{}, SpaceSRGB16},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.c.Space(), "%T", tt.c)
	}
}

func TestWordPacking(t *testing.T) {
	c := RGBA8{R: 0x11, G: 0x22, B: 0x33, A: 0x44}
	assert.Equal(t, uint32(0x44332211), c.Word())
	assert.Equal(t, c, RGBA8FromWord(c.Word()))
	assert.Equal(t, [4]byte{0x11, 0x22, 0x33, 0x44}, c.Bytes())

	c16 := RGBA16{R: 0x1122, G: 0x3344, B: 0x5566, A: 0x7788}
	assert.Equal(t, uint64(0x7788556633441122), c16.Word())
	assert.Equal(t, c16, RGBA16FromWord(c16.Word()))
	assert.Equal(t, [8]byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}, c16.Bytes())
}

func TestImageColor(t *testing.T) {
	var _ color.Color = RGBA8{}
	var _ color.Color = RGBA16{}

	got := color.NRGBAModel.Convert(RGBA8{R: 200, G: 100, B: 50, A: 255}).(color.NRGBA)
	assert.Equal(t, color.NRGBA{R: 200, G: 100, B: 50, A: 255}, got)

	r, _, _, a := RGBA16{R: 0xffff, A: 0x8000}.RGBA()
	assert.Equal(t, uint32(0x8000), a)
	assert.Equal(t, uint32(0x8000), r) // premultiplied
}

func TestWidenNarrow(t *testing.T) {
	c := RGBA8{R: 0xff, G: 0x80, B: 0, A: 0x01}
	assert.Equal(t, RGBA16{R: 0xffff, G: 0x8080, B: 0, A: 0x0101}, c.To16())
	assert.Equal(t, c, c.To16().To8())
}

func TestColorStrings(t *testing.T) {
	assert.Equal(t, "lch(50, 20, 330)", LCH{50, 20, 330}.String())
	assert.Equal(t, "#ff800001", RGBA8{0xff, 0x80, 0, 1}.String())
	assert.Equal(t, "lab(50, -1.5, 2)", Lab{50, -1.5, 2}.String())
}

func TestSpaceFromName(t *testing.T) {
	tests := []struct {
		name string
		want ColorSpace
	}{
		{"lch", SpaceLCH},
		{"LCH", SpaceLCH},
		{"cielab", SpaceLab},
		{"CIELuv", SpaceLuv},
		{" ciexyz ", SpaceXYZ},
		{"srgb8", SpaceSRGB8},
		{"sRGB16", SpaceSRGB16},
		{"mono", SpaceMono},
		{"hsv", SpaceMono},
		{"", SpaceMono},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SpaceFromName(tt.name))
		})
	}
	for _, s := range Spaces() {
		assert.Equal(t, s, SpaceFromName(s.String()))
	}
	assert.Equal(t, "ColorSpace(42)", ColorSpace(42).String())
}

func TestModeFromName(t *testing.T) {
	assert.Equal(t, ModeSample, ModeFromName("sample"))
	assert.Equal(t, ModeLinear, ModeFromName("Linear"))
	assert.Equal(t, ModeOther, ModeFromName("cubic"))
	assert.Equal(t, "other", ModeOther.String())
	assert.Equal(t, "linear", ModeLinear.String())
}

func TestIlluminantFromName(t *testing.T) {
	assert.Equal(t, reference.D50Deg2, IlluminantFromName("D50 2deg"))
	assert.Equal(t, reference.IllumE, IlluminantFromName("E"))
	assert.Equal(t, reference.Unknown, IlluminantFromName("D75"))
}

func TestParseSwatch(t *testing.T) {
	tests := []struct {
		space   ColorSpace
		a, b, c float64
		want    Color
	}{
		{SpaceLCH, 50.4, 20.6, 359.5, LCH{50, 21, 360}},
		{SpaceLab, 50, -10.5, 3, Lab{50, -10.5, 3}},
		{SpaceLuv, 1, 2, 3, Luv{1, 2, 3}},
		{SpaceXYZ, 0.1, 0.2, 0.3, XYZ{0.1, 0.2, 0.3}},
		{SpaceSRGB8, -5, 127.6, 300, RGBA8{0, 128, 255, 255}},
		{SpaceSRGB16, 70000, 1, 0, RGBA16{65535, 1, 0, 65535}},
	}
	for _, tt := range tests {
		t.Run(tt.space.String(), func(t *testing.T) {
			got, err := ParseSwatch(tt.space, tt.a, tt.b, tt.c)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseSwatch(SpaceMono, 1, 2, 3)
	assert.ErrorIs(t, err, ErrBadCall)
}

func TestAxes(t *testing.T) {
	a, b, c, err := Axes(Lab{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, [3]float64{1, 2, 3}, [3]float64{a, b, c})

	a, b, c, err = Axes(RGBA16{4, 5, 6, 7})
	require.NoError(t, err)
	assert.Equal(t, [3]float64{4, 5, 6}, [3]float64{a, b, c})

	_, _, _, err = Axes(nil)
	assert.ErrorIs(t, err, ErrBadCall)
}
