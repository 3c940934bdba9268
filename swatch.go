package frascr

import (
	"fmt"
	"math"
)

// ParseSwatch builds one swatch of the given space from three axis values,
// as they appear in configuration files (caxisa, caxisb, caxisc).
//
// LCH axes are rounded to integers. RGB axes are rounded and clamped to
// the channel range, and alpha is set to fully opaque. Non-finite values
// are rejected.
func ParseSwatch(space ColorSpace, a, b, c float64) (Color, error) {
	for _, v := range [...]float64{a, b, c} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: non-finite swatch axis %v", ErrBadCall, v)
		}
	}
	switch space {
	case SpaceLCH:
		return LCH{L: roundInt(a), C: roundInt(b), H: roundInt(c)}, nil
	case SpaceLab:
		return Lab{L: a, A: b, B: c}, nil
	case SpaceLuv:
		return Luv{L: a, U: b, V: c}, nil
	case SpaceXYZ:
		return XYZ{X: a, Y: b, Z: c}, nil
	case SpaceSRGB8:
		return RGBA8{R: uint8(clampChannel(a, 0xff)), G: uint8(clampChannel(b, 0xff)), B: uint8(clampChannel(c, 0xff)), A: 0xff}, nil
	case SpaceSRGB16:
		return RGBA16{R: uint16(clampChannel(a, 0xffff)), G: uint16(clampChannel(b, 0xffff)), B: uint16(clampChannel(c, 0xffff)), A: 0xffff}, nil
	default:
		return nil, fmt.Errorf("%w: no swatch type for space %v", ErrBadCall, space)
	}
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

func clampChannel(v, hi float64) float64 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

// Axes returns the three channel values of c in configuration order, the
// inverse of ParseSwatch apart from rounding.
func Axes(c Color) (a, b, cc float64, err error) {
	switch v := c.(type) {
	case LCH:
		return float64(v.L), float64(v.C), float64(v.H), nil
	case Lab:
		return v.L, v.A, v.B, nil
	case Luv:
		return v.L, v.U, v.V, nil
	case XYZ:
		return v.X, v.Y, v.Z, nil
	case RGBA8:
		return float64(v.R), float64(v.G), float64(v.B), nil
	case RGBA16:
		return float64(v.R), float64(v.G), float64(v.B), nil
	default:
		return 0, 0, 0, fmt.Errorf("%w: unsupported colour %T", ErrBadCall, c)
	}
}
