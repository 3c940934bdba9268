// Package field holds the output of an escape-time iteration: a grid of
// complex sample points and the iteration count each one reached.
package field

import (
	"errors"
	"fmt"
	"math"
)

// ErrGeometry reports a canvas that cannot be sampled.
var ErrGeometry = errors.New("field: invalid canvas geometry")

// Canvas describes the region of the complex plane to sample and the
// pixel grid laid over it.
type Canvas struct {
	// PixelWidth and PixelHeight are the grid dimensions.
	PixelWidth, PixelHeight int

	// Left and Bottom are the real and imaginary parts of the lower-left
	// corner. Width and Height are the extent of the region.
	Left, Bottom  float64
	Width, Height float64

	// OffsetRe and OffsetIm are a fixed complex parameter used by Julia
	// style iterations.
	OffsetRe, OffsetIm float64

	// Escape is the iteration limit.
	Escape uint32

	// Secondary carries algorithm-specific parameters as text.
	Secondary []string
}

// Validate reports whether the canvas can be sampled.
func (c Canvas) Validate() error {
	switch {
	case c.PixelWidth <= 0 || c.PixelHeight <= 0:
		return fmt.Errorf("%w: pixel size %dx%d", ErrGeometry, c.PixelWidth, c.PixelHeight)
	case !(c.Width > 0) || !(c.Height > 0):
		return fmt.Errorf("%w: region %gx%g", ErrGeometry, c.Width, c.Height)
	case math.IsInf(c.Left, 0) || math.IsNaN(c.Left) || math.IsInf(c.Bottom, 0) || math.IsNaN(c.Bottom):
		return fmt.Errorf("%w: origin (%g, %g)", ErrGeometry, c.Left, c.Bottom)
	}
	return nil
}

// Point returns the complex sample for column i and row j, counted from
// the lower-left corner.
func (c Canvas) Point(i, j int) (re, im float64) {
	re = c.Left + float64(i)*c.Width/float64(c.PixelWidth)
	im = c.Bottom + float64(j)*c.Height/float64(c.PixelHeight)
	return re, im
}

// Spacing returns the smaller of the horizontal and vertical sample steps.
func (c Canvas) Spacing() float64 {
	return math.Min(c.Width/float64(c.PixelWidth), c.Height/float64(c.PixelHeight))
}

// Datum is one sample: its point in the plane and the iteration count.
type Datum struct {
	Re, Im float64
	N      uint32
}

// Field is a column-major grid of samples. Column i, row j is stored at
// Data[i*Height+j]; row 0 is the bottom of the canvas.
type Field struct {
	Width, Height int
	Data          []Datum
}

// New allocates a field of the given size.
func New(width, height int) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: field size %dx%d", ErrGeometry, width, height)
	}
	return &Field{Width: width, Height: height, Data: make([]Datum, width*height)}, nil
}

// ForCanvas allocates a field matching c's pixel grid.
func ForCanvas(c Canvas) (*Field, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return New(c.PixelWidth, c.PixelHeight)
}

// Column returns the samples of column i, bottom to top. The slice
// aliases the field.
func (f *Field) Column(i int) []Datum {
	return f.Data[i*f.Height : (i+1)*f.Height]
}

// At returns the sample at column i, row j.
func (f *Field) At(i, j int) Datum {
	return f.Data[i*f.Height+j]
}

// Set stores the sample at column i, row j.
func (f *Field) Set(i, j int, d Datum) {
	f.Data[i*f.Height+j] = d
}

// MaxIntensity returns the largest iteration count in the field.
func (f *Field) MaxIntensity() uint32 {
	var m uint32
	for _, d := range f.Data {
		if d.N > m {
			m = d.N
		}
	}
	return m
}

// Intensity returns the count at (i, j) divided by peak, or 0 when peak is 0.
func (f *Field) Intensity(i, j int, peak uint32) float64 {
	if peak == 0 {
		return 0
	}
	return float64(f.At(i, j).N) / float64(peak)
}

// Histogram counts samples per iteration value, indexed 0..max.
func (f *Field) Histogram() []int {
	h := make([]int, f.MaxIntensity()+1)
	for _, d := range f.Data {
		h[d.N]++
	}
	return h
}
