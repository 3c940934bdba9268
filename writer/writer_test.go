package writer

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/frascr/frascr"
	"github.com/frascr/frascr/algorithm"
	"github.com/frascr/frascr/field"
	"github.com/frascr/frascr/reference"
)

// ramp returns a w x h field whose count equals the column index.
func ramp(t *testing.T, w, h int) *field.Field {
	t.Helper()
	f, err := field.New(w, h)
	require.NoError(t, err)
	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			f.Set(i, j, field.Datum{Re: float64(i), Im: float64(j), N: uint32(i)})
		}
	}
	return f
}

func grayWheel(t *testing.T) *frascr.Wheel {
	t.Helper()
	w, err := frascr.NewWheel(frascr.SpaceSRGB8, 2, frascr.ModeLinear, []frascr.Color{
		frascr.RGBA8{A: 255},
		frascr.RGBA8{R: 255, G: 255, B: 255, A: 255},
	})
	require.NoError(t, err)
	return w
}

func vis(t *testing.T, depth int) Visualization {
	return Visualization{
		Depth:     depth,
		Wheel:     grayWheel(t),
		Reference: reference.MustValues(reference.D65Deg2),
		Alpha:     0xffff,
		Canvas:    field.Canvas{PixelWidth: 8, PixelHeight: 4, Width: 1, Height: 1, Escape: 7},
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"colorpng", "libcolorpng.so", "BWPNG", "/opt/lib/libtiff.so", "jpeg", "minimalout"} {
		w, err := Lookup(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, w.Name())
	}
	_, err := Lookup("gif")
	assert.ErrorIs(t, err, ErrUnknownWriter)
	assert.Equal(t, []string{"bmp", "bwpng", "bwtiff", "colorpng", "jpeg", "minimalout", "tiff"}, Names())
}

func TestColorize(t *testing.T) {
	f := ramp(t, 8, 4)
	f.Set(0, 0, field.Datum{N: 7})

	pm, err := Colorize(context.Background(), f, vis(t, 8))
	require.NoError(t, err)
	img := pm.Image().(*image.NRGBA)

	// field row 0 is the bottom image row
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, img.NRGBAAt(0, 3))
	assert.Equal(t, color.NRGBA{A: 255}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, img.NRGBAAt(7, 0))

	v := vis(t, 16)
	v.Alpha = 0x1234
	pm, err = Colorize(context.Background(), f, v)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA64{R: 0xffff, G: 0xffff, B: 0xffff, A: 0x1234}, pm.Image().(*image.NRGBA64).NRGBA64At(7, 2))

	v.Wheel = nil
	_, err = Colorize(context.Background(), f, v)
	assert.ErrorIs(t, err, ErrNoPalette)

	v = vis(t, 12)
	_, err = Colorize(context.Background(), f, v)
	assert.ErrorIs(t, err, ErrDepth)
}

func TestColorizeFailuresAreBlack(t *testing.T) {
	f := ramp(t, 4, 2)
	v := vis(t, 8)
	v.Alpha = 0x80
	v.Wheel.Destroy()

	pm, err := Colorize(context.Background(), f, v)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{A: 0x80}, pm.Image().(*image.NRGBA).NRGBAAt(3, 1))
}

func TestGrayscale(t *testing.T) {
	f := ramp(t, 4, 2)
	img, err := Grayscale(f, 8)
	require.NoError(t, err)
	g := img.(*image.Gray)
	assert.Equal(t, uint8(0), g.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(85), g.GrayAt(1, 0).Y)
	assert.Equal(t, uint8(255), g.GrayAt(3, 1).Y)

	img, err = Grayscale(f, 16)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x5555), img.(*image.Gray16).Gray16At(1, 1).Y)

	_, err = Grayscale(f, 4)
	assert.ErrorIs(t, err, ErrDepth)
}

func TestPNG(t *testing.T) {
	f := ramp(t, 8, 4)
	var buf bytes.Buffer
	require.NoError(t, WriteTo(context.Background(), "colorpng", f, vis(t, 8), &buf))

	data := buf.Bytes()
	assert.Contains(t, string(data), "tEXtTitle\x00"+DefaultTitle)
	assert.Contains(t, string(data), "tEXtAuthor\x00"+DefaultAuthor)
	assert.Contains(t, string(data), "tEXtDescription\x00Size 8 x 4. Color type RGBA 8-bit.")

	// the decoder verifies every chunk CRC
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 4), img.Bounds())

	buf.Reset()
	v := vis(t, 16)
	v.Title = "ramp"
	v.Compression = 9
	require.NoError(t, WriteTo(context.Background(), "bwpng", f, v, &buf))
	assert.Contains(t, buf.String(), "tEXtTitle\x00ramp")
	img, err = png.Decode(&buf)
	require.NoError(t, err)
	require.IsType(t, &image.Gray16{}, img)
	assert.Equal(t, uint16(0xffff), img.(*image.Gray16).Gray16At(7, 0).Y)
}

func TestOtherFormats(t *testing.T) {
	f := ramp(t, 8, 4)
	ctx := context.Background()

	var buf bytes.Buffer
	require.NoError(t, WriteTo(ctx, "tiff", f, vis(t, 16), &buf))
	img, err := tiff.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())

	buf.Reset()
	v := vis(t, 8)
	v.Compression = 1
	require.NoError(t, WriteTo(ctx, "bwtiff", f, v, &buf))
	img, err = tiff.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, color.GrayModel, img.ColorModel())

	buf.Reset()
	require.NoError(t, WriteTo(ctx, "bmp", f, vis(t, 16), &buf))
	img, err = bmp.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dy())

	buf.Reset()
	require.NoError(t, WriteTo(ctx, "jpeg", f, vis(t, 8), &buf))
	img, err = jpeg.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 4), img.Bounds())

	err = WriteTo(ctx, "colorpng", f, vis(t, 3), &buf)
	assert.ErrorIs(t, err, ErrDepth)
}

func TestText(t *testing.T) {
	f := ramp(t, 2, 2)
	var buf bytes.Buffer
	require.NoError(t, WriteTo(context.Background(), "minimalout", f, Visualization{}, &buf))
	assert.Equal(t, "0.000000 0.000000 0\n0.000000 1.000000 0\n1.000000 0.000000 1\n1.000000 1.000000 1\n", buf.String())
}

func TestLegend(t *testing.T) {
	f := ramp(t, 64, 64)
	v := vis(t, 8)
	v.Legend = true
	v.Algorithm = "ramp"

	var buf bytes.Buffer
	require.NoError(t, WriteTo(context.Background(), "colorpng", f, v, &buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	r, g, b, _ := img.At(0, 63).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0}, [3]uint32{r, g, b})
	// the last strip column samples just below intensity 1
	r, _, _, _ = img.At(63, 63).RGBA()
	assert.Greater(t, r, uint32(0xf000))
}

func TestRender(t *testing.T) {
	column := algorithm.New("column", func(field.Canvas) (algorithm.Iterator, error) {
		return func(re, _ float64) uint32 { return uint32(re) }, nil
	})
	c := field.Canvas{PixelWidth: 8, PixelHeight: 6, Width: 8, Height: 6, Escape: 10}

	dir := t.TempDir()
	outs := []string{filepath.Join(dir, "a.png"), filepath.Join(dir, "b.png")}
	wr, err := Lookup("colorpng")
	require.NoError(t, err)

	v := vis(t, 8)
	v.Supersample = 2
	require.NoError(t, Render(context.Background(), Job{
		Algorithm: column,
		Canvas:    c,
		Vis:       v,
		Writer:    wr,
		Outputs:   outs,
		Workers:   2,
	}))

	for _, out := range outs {
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 8, 6), img.Bounds())
		assert.Contains(t, string(data), "Size 8 x 6.")
	}

	// text output is never supersampled
	txt := filepath.Join(dir, "out.txt")
	tw, _ := Lookup("minimalout")
	require.NoError(t, Render(context.Background(), Job{Algorithm: column, Canvas: c, Vis: v, Writer: tw, Outputs: []string{txt}}))
	data, err := os.ReadFile(txt)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 48)
}

func TestRenderErrors(t *testing.T) {
	a, _ := algorithm.Lookup("mandelquadbrute")
	wr, _ := Lookup("colorpng")
	c := field.Canvas{PixelWidth: 4, PixelHeight: 4, Width: 1, Height: 1, Escape: 5}

	err := Render(context.Background(), Job{Algorithm: a, Canvas: c, Writer: wr})
	assert.ErrorIs(t, err, ErrNoOutputs)

	err = Render(context.Background(), Job{Algorithm: a, Canvas: c, Outputs: []string{"x"}})
	assert.ErrorIs(t, err, ErrUnknownWriter)

	err = Render(context.Background(), Job{Algorithm: a, Canvas: c, Writer: wr, Vis: vis(t, 8),
		Outputs: []string{filepath.Join(t.TempDir(), "missing", "x.png")}})
	assert.Error(t, err)
}

func TestDescription(t *testing.T) {
	v := Visualization{Canvas: field.Canvas{PixelWidth: 2, PixelHeight: 3, Left: -1, Bottom: -2, Width: 2, Height: 4, OffsetRe: 0.5, Escape: 9}}
	assert.Equal(t,
		"Size 2 x 3. Color type grey 8-bit. Re domain: [ -1.000000 , 1.000000 ]. Im domain: [ -2.000000 , 2.000000 ]. Offset: 0.500000 + i 0.000000. Escape: 9",
		v.Description("grey 8-bit"))
}

func TestPixmap(t *testing.T) {
	_, err := NewPixmap(2, 2, 10)
	assert.ErrorIs(t, err, ErrDepth)

	p, err := NewPixmap(2, 2, 8)
	require.NoError(t, err)
	p.Set(0, 0, frascr.RGBA16{R: 0x1234, G: 0xff00, B: 0x00ff, A: 0xffff})
	p.Set(5, 5, frascr.RGBA8{R: 1})
	assert.Equal(t, color.NRGBA{R: 0x12, G: 0xff, B: 0x00, A: 0xff}, p.Image().(*image.NRGBA).NRGBAAt(0, 0))

	p, err = NewPixmap(2, 2, 16)
	require.NoError(t, err)
	p.Set(1, 1, frascr.RGBA8{R: 0xff, G: 0x01, A: 0x80})
	assert.Equal(t, color.NRGBA64{R: 0xffff, G: 0x0101, A: 0x8080}, p.Image().(*image.NRGBA64).NRGBA64At(1, 1))
	assert.Equal(t, 16, p.Depth())
}
