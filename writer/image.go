package writer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/draw"

	"github.com/frascr/frascr"
	"github.com/frascr/frascr/field"
	"github.com/frascr/frascr/internal/legend"
)

// legendSamples is the number of palette samples drawn in the strip.
const legendSamples = 256

type encodeFunc func(w io.Writer, img image.Image, vis Visualization, kind string) error

// imageWriter builds a colour or grey image from the field and hands it
// to a format encoder.
type imageWriter struct {
	name   string
	gray   bool
	encode encodeFunc
}

func (iw *imageWriter) Name() string { return iw.name }

// Supersampled reports whether the writer scales the field down to the
// requested size, so the field must be computed larger.
func (iw *imageWriter) Supersampled() bool { return true }

func (iw *imageWriter) Write(ctx context.Context, f *field.Field, vis Visualization, w io.Writer) error {
	if err := vis.validDepth(); err != nil {
		return err
	}
	img, kind, err := iw.build(ctx, f, vis)
	if err != nil {
		return err
	}
	if s := vis.Supersample; s > 1 {
		img = downscale(img, f.Width/s, f.Height/s)
	}
	if vis.Legend && !iw.gray {
		if err := drawLegend(img.(draw.Image), f, vis); err != nil {
			return fmt.Errorf("writer: legend: %w", err)
		}
	}
	frascr.Logger().Debug("encoding image", "writer", iw.name, "kind", kind,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return iw.encode(w, img, vis, kind)
}

func (iw *imageWriter) build(ctx context.Context, f *field.Field, vis Visualization) (image.Image, string, error) {
	if iw.gray {
		img, err := Grayscale(f, vis.Depth)
		return img, fmt.Sprintf("grey %d-bit", vis.Depth), err
	}
	pm, err := Colorize(ctx, f, vis)
	if err != nil {
		return nil, "", err
	}
	return pm.Image(), fmt.Sprintf("RGBA %d-bit", vis.Depth), nil
}

// downscale resamples img to w x h with Catmull-Rom, keeping its pixel type.
func downscale(img image.Image, w, h int) image.Image {
	w, h = max(w, 1), max(h, 1)
	r := image.Rect(0, 0, w, h)
	var dst draw.Image
	switch img.(type) {
	case *image.Gray:
		dst = image.NewGray(r)
	case *image.Gray16:
		dst = image.NewGray16(r)
	case *image.NRGBA64:
		dst = image.NewNRGBA64(r)
	default:
		dst = image.NewNRGBA(r)
	}
	draw.CatmullRom.Scale(dst, r, img, img.Bounds(), draw.Src, nil)
	return dst
}

func drawLegend(dst draw.Image, f *field.Field, vis Visualization) error {
	colors := make([]color.Color, 0, legendSamples)
	for k := 0; k < legendSamples; k++ {
		c, err := colorAt(vis, float64(k)/float64(legendSamples-1))
		if err != nil {
			c = blackPixel(vis)
		}
		if rgb, ok := c.(color.Color); ok {
			colors = append(colors, rgb)
		}
	}
	return legend.Draw(dst, legend.Options{
		Caption: legend.Caption(vis.Algorithm, vis.Canvas.Escape, f.MaxIntensity()),
		Colors:  colors,
	})
}
