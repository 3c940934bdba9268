package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frascr/frascr"
	"github.com/frascr/frascr/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { frascr.SetLogger(nil) })
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderFlags(t *testing.T) {
	out := filepath.Join(t.TempDir(), "m.png")
	_, err := run(t, "-a", "mandelquadbrute", "-o", "bwpng",
		"-l", "-2", "-b", "-1.5", "-J", "3", "-I", "3",
		"-j", "40", "-i", "30", "-e", "50", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())
	assert.Contains(t, string(data), "Escape: 50")
}

func TestRenderConfig(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "run.yaml")
	out := filepath.Join(dir, "c.png")
	require.NoError(t, os.WriteFile(conf, []byte(fmt.Sprintf(`core:
  algorithm: juliaquadbrute
  output: colorpng
  file: [%q]
canvas:
  left: -1.6
  bottom: -1.2
  realwidth: 3.2
  realheight: 2.4
  pixelwidth: 32
  pixelheight: 24
  offset_Re: -0.8
  offset_Im: 0.156
  escape: 60
visualization:
  channeldepth: 8
  colorization:
    space: lch
    algorithm: {type: linear, n: 2}
    swatches:
      - {caxisa: 10, caxisb: 30, caxisc: 250}
      - {caxisa: 90, caxisb: 20, caxisc: 60}
`, out)), 0o600))

	// flags override the file; --left 0 must apply even though it is zero
	_, err := run(t, "-f", conf, "-j", "16", "--left", "0")
	require.NoError(t, err)
	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 24, img.Bounds().Dy())
}

func TestRenderErrors(t *testing.T) {
	_, err := run(t, "-a", "mandelquadbrute")
	assert.ErrorIs(t, err, errTooFew)

	_, err = run(t, "-a", "newton", filepath.Join(t.TempDir(), "x.png"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(describe(err), "unknown algorithm: "))

	_, err = run(t, "-f", "run.ini", "x.png")
	assert.ErrorIs(t, err, config.ErrFormat)

	_, err = run(t, "--watch", "x.png")
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestDescribe(t *testing.T) {
	err := fmt.Errorf("load: %w", config.ErrSwatchCount)
	assert.Equal(t, "configuration file: number of color swatches does not match stated number 'n': load: "+config.ErrSwatchCount.Error(), describe(err))
	assert.Equal(t, "plain", describe(fmt.Errorf("plain")))
}

func TestPalette(t *testing.T) {
	out, err := run(t, "palette", "--space", "srgb8", "--mode", "linear",
		"--swatch", "0,0,0", "--swatch", "255,255,255", "--steps", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "#000000 … #ffffff  (5 samples, srgb8)")

	_, err = run(t, "palette", "--swatch", "1,2")
	assert.ErrorIs(t, err, config.ErrConfig)

	_, err = run(t, "palette", "--space", "hsv", "--swatch", "1,2,3", "--swatch", "1,2,3")
	assert.Error(t, err)
}

func TestHexColors(t *testing.T) {
	c := &config.Colorization{
		Space:     "srgb8",
		Algorithm: config.Generation{Type: "sample", N: 2},
		Swatches:  []config.Swatch{{A: 255}, {C: 255}},
	}
	hex, err := hexColors(c, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"#ff0000", "#0000ff", "#0000ff"}, hex)
}

func TestListings(t *testing.T) {
	out, err := run(t, "illuminants")
	require.NoError(t, err)
	assert.Contains(t, out, "D65 2deg")
	assert.Contains(t, out, "0.95049")

	out, err = run(t, "algorithms")
	require.NoError(t, err)
	assert.Contains(t, out, "mandelquadbrute\n")
	assert.Contains(t, out, "4 available")

	out, err = run(t, "writers")
	require.NoError(t, err)
	assert.Contains(t, out, "minimalout\n")
}
