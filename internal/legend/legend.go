// Package legend draws a palette strip and a one-line caption onto a
// rendered image.
package legend

import (
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MinStrip is the smallest strip height in pixels.
const MinStrip = 4

// Options describes what to draw.
type Options struct {
	// Caption is centred just above the strip. Empty draws no text.
	Caption string

	// Colors are spread evenly across the strip, left to right.
	Colors []color.Color
}

var (
	parseOnce sync.Once
	parsed    *sfnt.Font
	parseErr  error
)

func regular() (*sfnt.Font, error) {
	parseOnce.Do(func() {
		parsed, parseErr = opentype.Parse(goregular.TTF)
	})
	return parsed, parseErr
}

// StripHeight returns the strip height used for an image of height h.
func StripHeight(h int) int {
	return max(h/16, MinStrip)
}

// Draw overlays the strip along the bottom edge of dst and the caption
// above it. Images too small to hold both are left untouched.
func Draw(dst draw.Image, opts Options) error {
	b := dst.Bounds()
	h := StripHeight(b.Dy())
	if len(opts.Colors) == 0 || b.Dx() < 2 || b.Dy() < 2*h {
		return nil
	}

	n := len(opts.Colors)
	for x := b.Min.X; x < b.Max.X; x++ {
		c := opts.Colors[(x-b.Min.X)*n/b.Dx()]
		col := image.Rect(x, b.Max.Y-h, x+1, b.Max.Y)
		draw.Draw(dst, col, image.NewUniform(c), image.Point{}, draw.Src)
	}

	if opts.Caption == "" {
		return nil
	}
	return caption(dst, opts.Caption, float64(h), b.Max.Y-h-h/4)
}

func caption(dst draw.Image, text string, size float64, baseline int) error {
	f, err := regular()
	if err != nil {
		return err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = face.Close()
	}()

	width, err := Measure(text, size)
	if err != nil {
		return err
	}
	b := dst.Bounds()
	left := b.Min.X + (b.Dx()-int(width))/2
	left = max(left, b.Min.X)

	// dark offset copy first so the text reads on light and dark palettes
	for _, pass := range []struct {
		src image.Image
		dx  int
	}{
		{image.Black, 1},
		{image.White, 0},
	} {
		d := &font.Drawer{
			Dst:  dst,
			Src:  pass.src,
			Face: face,
			Dot:  fixed.P(left+pass.dx, baseline+pass.dx),
		}
		d.DrawString(text)
	}
	return nil
}

// Caption formats the standard legend line with English digit grouping.
func Caption(algorithm string, escape, peak uint32) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%s  escape %d  peak %d", algorithm, escape, peak)
}
