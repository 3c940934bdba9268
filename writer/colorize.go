package writer

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/frascr/frascr"
	"github.com/frascr/frascr/field"
)

// Colorize maps every sample of f through the palette in vis and returns
// the image. Intensities are counts divided by the field maximum. Row 0 of
// the field, the bottom of the canvas, becomes the bottom image row.
//
// Rows are colourised in parallel. A pixel whose query or conversion fails
// is painted opaque black and counted in one warning.
func Colorize(ctx context.Context, f *field.Field, vis Visualization) (*Pixmap, error) {
	if vis.Wheel == nil {
		return nil, ErrNoPalette
	}
	pm, err := NewPixmap(f.Width, f.Height, vis.Depth)
	if err != nil {
		return nil, err
	}

	peak := f.MaxIntensity()
	black := blackPixel(vis)
	var failures atomic.Int64

	workers := vis.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	log := frascr.Logger()
	for j := 0; j < f.Height; j++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			y := f.Height - 1 - j
			for i := 0; i < f.Width; i++ {
				px, err := colorAt(vis, f.Intensity(i, j, peak))
				if err != nil {
					failures.Add(1)
					px = black
				}
				pm.Set(i, y, px)
			}
			log.Log(ctx, frascr.LevelTrace, "row colourised", "row", j)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if n := failures.Load(); n > 0 {
		log.Warn("palette queries failed, painted black", "pixels", n)
	}
	return pm, nil
}

func colorAt(vis Visualization, intensity float64) (frascr.Color, error) {
	c, err := vis.Wheel.At(intensity)
	if err != nil {
		return nil, err
	}
	if vis.Depth == 16 {
		return frascr.ToRGBA16(c, vis.Alpha, vis.Reference)
	}
	return frascr.ToRGBA8(c, vis.Alpha, vis.Reference)
}

func blackPixel(vis Visualization) frascr.Color {
	if vis.Depth == 16 {
		return frascr.RGBA16{A: vis.Alpha}
	}
	return frascr.RGBA8{A: uint8(vis.Alpha)}
}

// Grayscale renders the normalised intensity of each sample as a grey
// level, scaled to the full channel range and truncated. Row 0 of the
// field becomes the bottom image row.
func Grayscale(f *field.Field, depth int) (image.Image, error) {
	peak := f.MaxIntensity()
	r := image.Rect(0, 0, f.Width, f.Height)
	switch depth {
	case 8:
		img := image.NewGray(r)
		for j := 0; j < f.Height; j++ {
			row := img.Pix[(f.Height-1-j)*img.Stride:]
			for i := 0; i < f.Width; i++ {
				row[i] = uint8(f.Intensity(i, j, peak) * 0xff)
			}
		}
		return img, nil
	case 16:
		img := image.NewGray16(r)
		for j := 0; j < f.Height; j++ {
			row := img.Pix[(f.Height-1-j)*img.Stride:]
			for i := 0; i < f.Width; i++ {
				v := uint16(f.Intensity(i, j, peak) * 0xffff)
				row[2*i] = uint8(v >> 8)
				row[2*i+1] = uint8(v)
			}
		}
		return img, nil
	default:
		return nil, fmt.Errorf("%w: got %d", ErrDepth, depth)
	}
}
