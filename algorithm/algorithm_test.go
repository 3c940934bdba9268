package algorithm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frascr/frascr/field"
)

func canvas(escape uint32, secondary ...string) field.Canvas {
	return field.Canvas{
		PixelWidth: 16, PixelHeight: 12,
		Left: -2, Bottom: -1.5, Width: 3, Height: 3,
		Escape:    escape,
		Secondary: secondary,
	}
}

func iterator(t *testing.T, name string, c field.Canvas) Iterator {
	t.Helper()
	a, err := Lookup(name)
	require.NoError(t, err)
	it, err := a.Prepare(c)
	require.NoError(t, err)
	return it
}

func TestLookup(t *testing.T) {
	for _, name := range []string{
		"mandelquadbrute",
		"MandelQuadBrute",
		"libmandelquadbrute.so",
		"/usr/lib/frascr/libmandelquadbrute.so",
	} {
		a, err := Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, "mandelquadbrute", a.Name())
	}

	_, err := Lookup("newton")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	assert.Equal(t, []string{"brd", "generalmjexponential", "juliaquadbrute", "mandelquadbrute"}, Names())
}

func TestRegister(t *testing.T) {
	constant := New("constant", func(field.Canvas) (Iterator, error) {
		return func(float64, float64) uint32 { return 3 }, nil
	})
	Register("constant", constant)
	t.Cleanup(func() {
		registryMu.Lock()
		delete(registry, "constant")
		registryMu.Unlock()
	})

	a, err := Lookup("libconstant.so")
	require.NoError(t, err)
	f, err := Execute(context.Background(), a, canvas(10), 2)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), f.MaxIntensity())
}

func TestMandelbrot(t *testing.T) {
	it := iterator(t, "mandelquadbrute", canvas(50))
	tests := []struct {
		re, im float64
		want   uint32
	}{
		{0, 0, 50},
		{-1, 0, 50},
		{1, 1, 2},
		{3, 0, 0},
		{-2.1, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, it(tt.re, tt.im), "c=(%v, %v)", tt.re, tt.im)
	}
}

func TestJulia(t *testing.T) {
	c := canvas(40)
	it := iterator(t, "juliaquadbrute", c)
	assert.Equal(t, uint32(40), it(0.5, 0))
	assert.Equal(t, uint32(40), it(1, 0))
	assert.Equal(t, uint32(1), it(1.2, 0))
	assert.Equal(t, uint32(0), it(2, 0))

	c.OffsetRe = -1
	it = iterator(t, "juliaquadbrute", c)
	// 0 -> -1 -> 0 -> -1 is bounded
	assert.Equal(t, uint32(40), it(0, 0))
}

func TestExponential(t *testing.T) {
	it := iterator(t, "brd", canvas(30))
	assert.Equal(t, uint32(30), it(0, 0))
	assert.Equal(t, uint32(3), it(2, 0))
	assert.Equal(t, uint32(0), it(60, 0))

	// explicit w = 1 matches the default
	it1 := iterator(t, "brd", canvas(30, "1", "0"))
	for _, p := range [][2]float64{{0.1, 0.2}, {-1, 0.5}, {2, 0}} {
		assert.Equal(t, it(p[0], p[1]), it1(p[0], p[1]))
	}

	a, _ := Lookup("brd")
	_, err := a.Prepare(canvas(30, "1"))
	assert.ErrorIs(t, err, ErrSecondary)
	_, err = a.Prepare(canvas(30, "x", "0"))
	assert.ErrorIs(t, err, ErrSecondary)
}

func TestGeneralExponential(t *testing.T) {
	a, err := Lookup("generalmjexponential")
	require.NoError(t, err)

	bad := [][]string{
		nil,
		{"1", "0", "0", "0"},
		{"1", "0", "0", "0", "4"},
		{"1", "0", "0", "0", "one"},
		{"1", "0", "zero", "0", "1"},
		{"1", "0", "0", "0", "3"},
	}
	for _, sec := range bad {
		_, err := a.Prepare(canvas(10, sec...))
		assert.ErrorIs(t, err, ErrSecondary, "%v", sec)
	}

	// exp(z + 0) from a tiny orbit resets to lambda = 0 every step
	it := iterator(t, "generalmjexponential", canvas(25, "1", "0", "0", "0", "2"))
	assert.Equal(t, uint32(25), it(0, 0))
	assert.Equal(t, uint32(0), it(51, 0))

	// lambda*exp(z) from a large real start escapes immediately
	it = iterator(t, "generalmjexponential", canvas(25, "1", "0", "1", "0", "1"))
	assert.Equal(t, uint32(1), it(49, 0))

	it = iterator(t, "generalmjexponential", canvas(25, "1", "0", "1", "0", "3"))
	assert.Equal(t, uint32(1), it(49, 0))
}

func TestExecute(t *testing.T) {
	c := canvas(64)
	a, err := Lookup("mandelquadbrute")
	require.NoError(t, err)
	it, err := a.Prepare(c)
	require.NoError(t, err)

	for _, workers := range []int{1, 3, 0} {
		f, err := Execute(context.Background(), a, c, workers)
		require.NoError(t, err)
		require.Equal(t, c.PixelWidth, f.Width)
		require.Equal(t, c.PixelHeight, f.Height)
		for i := 0; i < f.Width; i++ {
			for j := 0; j < f.Height; j++ {
				re, im := c.Point(i, j)
				d := f.At(i, j)
				assert.Equal(t, re, d.Re)
				assert.Equal(t, im, d.Im)
				assert.Equal(t, it(re, im), d.N)
			}
		}
	}
}

func TestExecuteErrors(t *testing.T) {
	a, _ := Lookup("mandelquadbrute")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Execute(ctx, a, canvas(10), 2)
	assert.True(t, errors.Is(err, context.Canceled))

	bad := canvas(10)
	bad.PixelWidth = 0
	_, err = Execute(context.Background(), a, bad, 2)
	assert.ErrorIs(t, err, field.ErrGeometry)

	_, err = Execute(context.Background(), nil, canvas(10), 2)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	g, _ := Lookup("generalmjexponential")
	_, err = Execute(context.Background(), g, canvas(10), 2)
	assert.ErrorIs(t, err, ErrSecondary)
}

func BenchmarkMandelbrot(b *testing.B) {
	a, _ := Lookup("mandelquadbrute")
	c := field.Canvas{PixelWidth: 128, PixelHeight: 128, Left: -2, Bottom: -1.5, Width: 3, Height: 3, Escape: 200}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Execute(context.Background(), a, c, 0); err != nil {
			b.Fatal(err)
		}
	}
}
