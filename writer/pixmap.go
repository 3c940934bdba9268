package writer

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/frascr/frascr"
)

// Pixmap is an 8- or 16-bit non-premultiplied RGBA pixel buffer.
type Pixmap struct {
	width  int
	height int
	depth  int

	img8  *image.NRGBA
	img16 *image.NRGBA64
}

// NewPixmap creates a pixmap of the given size and channel depth.
func NewPixmap(width, height, depth int) (*Pixmap, error) {
	p := &Pixmap{width: width, height: height, depth: depth}
	r := image.Rect(0, 0, width, height)
	switch depth {
	case 8:
		p.img8 = image.NewNRGBA(r)
	case 16:
		p.img16 = image.NewNRGBA64(r)
	default:
		return nil, fmt.Errorf("%w: got %d", ErrDepth, depth)
	}
	return p, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int { return p.height }

// Depth returns the channel depth, 8 or 16.
func (p *Pixmap) Depth() int { return p.depth }

// Set stores c at (x, y), narrowing or widening it to the pixmap depth.
// Out-of-range coordinates are ignored.
func (p *Pixmap) Set(x, y int, c frascr.Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	switch v := c.(type) {
	case frascr.RGBA8:
		if p.img8 != nil {
			p.img8.SetNRGBA(x, y, color.NRGBA{R: v.R, G: v.G, B: v.B, A: v.A})
		} else {
			p.set16(x, y, v.To16())
		}
	case frascr.RGBA16:
		if p.img16 != nil {
			p.set16(x, y, v)
		} else {
			w := v.To8()
			p.img8.SetNRGBA(x, y, color.NRGBA{R: w.R, G: w.G, B: w.B, A: w.A})
		}
	}
}

func (p *Pixmap) set16(x, y int, v frascr.RGBA16) {
	p.img16.SetNRGBA64(x, y, color.NRGBA64{R: v.R, G: v.G, B: v.B, A: v.A})
}

// Image returns the backing image: *image.NRGBA for depth 8,
// *image.NRGBA64 for depth 16. It aliases the pixmap.
func (p *Pixmap) Image() draw.Image {
	if p.img8 != nil {
		return p.img8
	}
	return p.img16
}
