package frascr

import (
	"fmt"
	"math"

	"github.com/frascr/frascr/internal/interp"
)

// MaxSwatches bounds the size of a palette. Larger requests fail with
// ErrAllocation.
const MaxSwatches = 1 << 20

// Wheel is an ordered palette of swatches in one colour space, queried by
// an intensity in [0, 1]. The first swatch sits at intensity 0 and the last
// at intensity 1, evenly spaced in between.
//
// A Wheel is immutable after NewWheel returns and may be queried from many
// goroutines at once. Destroy must not run concurrently with queries.
type Wheel struct {
	space    ColorSpace
	mode     Mode
	swatches []Color
}

// NewWheel builds a palette of n swatches in space. The swatches are
// copied; later changes to the caller's slice do not affect the Wheel.
//
// Errors:
//   - ErrBadCall: swatches is nil, n <= 0, space is SpaceMono or unknown,
//     or mode is ModeLinear with fewer than two swatches
//   - ErrAllocation: n exceeds MaxSwatches
//   - ErrDimensionMismatch: len(swatches) != n
//   - ErrSpaceMismatch: a swatch is nil or belongs to another space
func NewWheel(space ColorSpace, n int, mode Mode, swatches []Color) (*Wheel, error) {
	switch {
	case swatches == nil:
		return nil, fmt.Errorf("%w: nil swatch sequence", ErrBadCall)
	case n <= 0:
		return nil, fmt.Errorf("%w: palette size %d", ErrBadCall, n)
	case !space.valid():
		return nil, fmt.Errorf("%w: palette space %v", ErrBadCall, space)
	case mode == ModeLinear && n < 2:
		return nil, fmt.Errorf("%w: linear palette needs at least 2 swatches, have %d", ErrBadCall, n)
	case n > MaxSwatches:
		return nil, fmt.Errorf("%w: %d swatches (max %d)", ErrAllocation, n, MaxSwatches)
	case len(swatches) != n:
		return nil, fmt.Errorf("%w: declared %d, got %d", ErrDimensionMismatch, n, len(swatches))
	}

	owned := make([]Color, n)
	for i, c := range swatches {
		if c == nil {
			return nil, fmt.Errorf("%w: swatch %d is nil", ErrSpaceMismatch, i)
		}
		if c.Space() != space {
			return nil, fmt.Errorf("%w: swatch %d is %v, palette is %v", ErrSpaceMismatch, i, c.Space(), space)
		}
		// concrete colours are values, so the interface copy is deep
		owned[i] = c
	}

	Logger().Debug("palette built", "space", space, "swatches", n, "mode", mode)
	return &Wheel{space: space, mode: mode, swatches: owned}, nil
}

// Destroy releases the swatches. Further queries fail with ErrNoResult.
// It is safe to call more than once and on a nil Wheel.
func (w *Wheel) Destroy() {
	if w == nil {
		return
	}
	w.swatches = nil
}

// Len returns the number of swatches, 0 after Destroy.
func (w *Wheel) Len() int {
	if w == nil {
		return 0
	}
	return len(w.swatches)
}

// Space returns the palette's colour space.
func (w *Wheel) Space() ColorSpace { return w.space }

// Mode returns the query mode the palette was configured with.
func (w *Wheel) Mode() Mode { return w.mode }

// Swatch returns a copy of swatch i.
func (w *Wheel) Swatch(i int) (Color, bool) {
	if w == nil || i < 0 || i >= len(w.swatches) {
		return nil, false
	}
	return w.swatches[i], true
}

// Swatches returns a copy of the swatch sequence.
func (w *Wheel) Swatches() []Color {
	if w == nil {
		return nil
	}
	out := make([]Color, len(w.swatches))
	copy(out, w.swatches)
	return out
}

// landing validates a query and returns the fractional swatch position
// (n-1)*intensity.
func (w *Wheel) landing(intensity float64) (float64, error) {
	if w == nil || w.swatches == nil {
		return 0, fmt.Errorf("%w: palette released", ErrNoResult)
	}
	if math.IsNaN(intensity) || intensity < 0 || intensity > 1 {
		return 0, fmt.Errorf("%w: intensity %v outside [0, 1]", ErrNoResult, intensity)
	}
	return float64(len(w.swatches)-1) * intensity, nil
}

// Sample returns the swatch nearest to intensity. Exact midpoints round up.
func (w *Wheel) Sample(intensity float64) (Color, error) {
	landing, err := w.landing(intensity)
	if err != nil {
		return nil, err
	}
	below := math.Floor(landing)
	idx := int(below)
	if landing-below >= 0.5 {
		idx++
	}
	return w.swatches[idx], nil
}

// Interpolate blends the two swatches that bracket intensity. At intensity
// 1 the last pair is used with fraction 1, which yields the last swatch.
// Alpha, where present, is taken from the lower swatch.
func (w *Wheel) Interpolate(intensity float64) (Color, error) {
	landing, err := w.landing(intensity)
	if err != nil {
		return nil, err
	}
	n := len(w.swatches)
	if n < 2 {
		return nil, fmt.Errorf("%w: interpolation needs 2 swatches, have %d", ErrNoResult, n)
	}
	below := int(math.Floor(landing))
	f := landing - float64(below)
	if below >= n-1 {
		below, f = n-2, 1
	}
	return blend(w.swatches[below], f, w.swatches[below+1])
}

// Query answers intensity in the given mode.
func (w *Wheel) Query(mode Mode, intensity float64) (Color, error) {
	switch mode {
	case ModeSample:
		return w.Sample(intensity)
	case ModeLinear:
		return w.Interpolate(intensity)
	default:
		return nil, fmt.Errorf("%w: %w %d", ErrNoResult, ErrUnknownMode, mode)
	}
}

// At answers intensity in the palette's own mode.
func (w *Wheel) At(intensity float64) (Color, error) {
	if w == nil {
		return nil, fmt.Errorf("%w: nil palette", ErrNoResult)
	}
	return w.Query(w.mode, intensity)
}

// blend applies the channel rule of the pair's space: integer linear for
// LCH lightness and chroma, circular for LCH hue, real linear for Lab, Luv
// and XYZ, and integer channel blending for RGB.
func blend(left Color, f float64, right Color) (Color, error) {
	switch l := left.(type) {
	case LCH:
		r, ok := right.(LCH)
		if !ok {
			break
		}
		return LCH{
			L: interp.LinearInt(l.L, f, r.L),
			C: interp.LinearInt(l.C, f, r.C),
			H: interp.HueInt(l.H, f, r.H),
		}, nil
	case Lab:
		r, ok := right.(Lab)
		if !ok {
			break
		}
		return Lab{
			L: interp.Linear(l.L, f, r.L),
			A: interp.Linear(l.A, f, r.A),
			B: interp.Linear(l.B, f, r.B),
		}, nil
	case Luv:
		r, ok := right.(Luv)
		if !ok {
			break
		}
		return Luv{
			L: interp.Linear(l.L, f, r.L),
			U: interp.Linear(l.U, f, r.U),
			V: interp.Linear(l.V, f, r.V),
		}, nil
	case XYZ:
		r, ok := right.(XYZ)
		if !ok {
			break
		}
		return XYZ{
			X: interp.Linear(l.X, f, r.X),
			Y: interp.Linear(l.Y, f, r.Y),
			Z: interp.Linear(l.Z, f, r.Z),
		}, nil
	case RGBA8:
		r, ok := right.(RGBA8)
		if !ok {
			break
		}
		return RGBA8{
			R: interp.Channel(l.R, f, r.R),
			G: interp.Channel(l.G, f, r.G),
			B: interp.Channel(l.B, f, r.B),
			A: l.A,
		}, nil
	case RGBA16:
		r, ok := right.(RGBA16)
		if !ok {
			break
		}
		return RGBA16{
			R: interp.Channel(l.R, f, r.R),
			G: interp.Channel(l.G, f, r.G),
			B: interp.Channel(l.B, f, r.B),
			A: l.A,
		}, nil
	}
	return nil, fmt.Errorf("%w: cannot blend %T with %T", ErrNoResult, left, right)
}
