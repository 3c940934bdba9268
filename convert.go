package frascr

import (
	"fmt"
	"math"

	"github.com/frascr/frascr/internal/color"
	"github.com/frascr/frascr/internal/interp"
	"github.com/frascr/frascr/reference"
)

// LCHToLab converts cylindrical LCH to Lab. L is copied, a = C cos h and
// b = C sin h with h in degrees.
func LCHToLab(c LCH) Lab {
	h := float64(c.H) * math.Pi / 180
	ch := float64(c.C)
	return Lab{L: float64(c.L), A: ch * math.Cos(h), B: ch * math.Sin(h)}
}

// LabToLCH converts Lab to LCH, rounding each channel to the nearest integer.
// The hue is reported in (0, 360].
func LabToLCH(c Lab) LCH {
	h := math.Atan2(c.B, c.A) * 180 / math.Pi
	hue := interp.Residue(int(math.Round(h)))
	return LCH{
		L: int(math.Round(c.L)),
		C: int(math.Round(math.Hypot(c.A, c.B))),
		H: hue,
	}
}

// LabToXYZ converts Lab to XYZ relative to white w.
//
//	fy = (L+16)/116, fx = fy + a/500, fz = fy - b/200
//	X = Xn*finv(fx), Z = Zn*finv(fz)
//	Y = Yn*fy^3 when L > 8, else Yn*L/kappa
func LabToXYZ(c Lab, w reference.White) XYZ {
	fy := (c.L + 16) / 116
	fx := fy + c.A/500
	fz := fy - c.B/200
	return XYZ{
		X: w.X * color.LabFInv(fx),
		Y: w.Y * color.LightnessToY(c.L),
		Z: w.Z * color.LabFInv(fz),
	}
}

// XYZToLab converts XYZ to Lab relative to white w.
func XYZToLab(c XYZ, w reference.White) Lab {
	fx := color.LabF(c.X / w.X)
	fy := color.LabF(c.Y / w.Y)
	fz := color.LabF(c.Z / w.Z)
	return Lab{L: 116*fy - 16, A: 500 * (fx - fy), B: 200 * (fy - fz)}
}

// uvPrime returns the CIE 1976 UCS chromaticity of a tristimulus value.
func uvPrime(x, y, z float64) (u, v float64) {
	d := x + 15*y + 3*z
	if d == 0 {
		return 0, 0
	}
	return 4 * x / d, 9 * y / d
}

// LuvToXYZ converts Luv to XYZ relative to white w. L = 0 yields black.
func LuvToXYZ(c Luv, w reference.White) XYZ {
	if c.L <= 0 {
		return XYZ{}
	}
	un, vn := uvPrime(w.X, w.Y, w.Z)
	u := c.U/(13*c.L) + un
	v := c.V/(13*c.L) + vn
	y := w.Y * color.LightnessToY(c.L)
	if v == 0 {
		return XYZ{Y: y}
	}
	return XYZ{
		X: y * 9 * u / (4 * v),
		Y: y,
		Z: y * (12 - 3*u - 20*v) / (4 * v),
	}
}

// XYZToLuv converts XYZ to Luv relative to white w.
func XYZToLuv(c XYZ, w reference.White) Luv {
	yr := c.Y / w.Y
	var l float64
	if yr > color.Epsilon {
		l = 116*math.Cbrt(yr) - 16
	} else {
		l = color.Kappa * yr
	}
	u, v := uvPrime(c.X, c.Y, c.Z)
	un, vn := uvPrime(w.X, w.Y, w.Z)
	return Luv{L: l, U: 13 * l * (u - un), V: 13 * l * (v - vn)}
}

// linearRGB applies m and the sRGB companding curve, leaving the result
// unclamped.
func linearRGB(c XYZ, m reference.Matrix) (r, g, b float64) {
	r, g, b = m.Apply(c.X, c.Y, c.Z)
	return color.Encode(r), color.Encode(g), color.Encode(b)
}

// XYZToSRGB8 converts XYZ to 8-bit sRGB through matrix m. Each encoded
// channel is clamped to [0, 0.9999], scaled by 255 and truncated, so full
// white is 254. The low byte of alpha becomes the alpha channel.
func XYZToSRGB8(c XYZ, alpha uint16, m reference.Matrix) RGBA8 {
	r, g, b := linearRGB(c, m)
	return RGBA8{
		R: color.Quantize8(r),
		G: color.Quantize8(g),
		B: color.Quantize8(b),
		A: uint8(alpha),
	}
}

// XYZToSRGB16 converts XYZ to 16-bit sRGB through matrix m, scaling by 65535.
func XYZToSRGB16(c XYZ, alpha uint16, m reference.Matrix) RGBA16 {
	r, g, b := linearRGB(c, m)
	return RGBA16{
		R: color.Quantize16(r),
		G: color.Quantize16(g),
		B: color.Quantize16(b),
		A: alpha,
	}
}

// rgbToXYZ decodes sRGB components in [0, 1] and applies the inverse of m.
func rgbToXYZ(r, g, b float64, m reference.Matrix) (XYZ, error) {
	inv, ok := m.Inverse()
	if !ok {
		return XYZ{}, fmt.Errorf("%w: singular display matrix", ErrBadCall)
	}
	x, y, z := inv.Apply(r, g, b)
	return XYZ{X: x, Y: y, Z: z}, nil
}

// ToXYZ converts any colour to XYZ under ref. RGB colours are decoded
// through the inverse of the reference display matrix.
func ToXYZ(c Color, ref reference.ReferenceValues) (XYZ, error) {
	switch v := c.(type) {
	case LCH:
		return LabToXYZ(LCHToLab(v), ref.White), nil
	case Lab:
		return LabToXYZ(v, ref.White), nil
	case Luv:
		return LuvToXYZ(v, ref.White), nil
	case XYZ:
		return v, nil
	case RGBA8:
		return rgbToXYZ(color.DecodeByte(v.R), color.DecodeByte(v.G), color.DecodeByte(v.B), ref.Matrix)
	case RGBA16:
		return rgbToXYZ(color.DecodeWord(v.R), color.DecodeWord(v.G), color.DecodeWord(v.B), ref.Matrix)
	default:
		return XYZ{}, fmt.Errorf("%w: no conversion for %T", ErrBadCall, c)
	}
}

// ToRGBA8 converts any colour to 8-bit sRGB under ref. RGB colours pass
// through unchanged apart from alpha, which is always replaced.
func ToRGBA8(c Color, alpha uint16, ref reference.ReferenceValues) (RGBA8, error) {
	switch v := c.(type) {
	case RGBA8:
		v.A = uint8(alpha)
		return v, nil
	case RGBA16:
		out := v.To8()
		out.A = uint8(alpha)
		return out, nil
	}
	xyz, err := ToXYZ(c, ref)
	if err != nil {
		return RGBA8{}, err
	}
	return XYZToSRGB8(xyz, alpha, ref.Matrix), nil
}

// ToRGBA16 converts any colour to 16-bit sRGB under ref.
func ToRGBA16(c Color, alpha uint16, ref reference.ReferenceValues) (RGBA16, error) {
	switch v := c.(type) {
	case RGBA16:
		v.A = alpha
		return v, nil
	case RGBA8:
		out := v.To16()
		out.A = alpha
		return out, nil
	}
	xyz, err := ToXYZ(c, ref)
	if err != nil {
		return RGBA16{}, err
	}
	return XYZToSRGB16(xyz, alpha, ref.Matrix), nil
}

// ConvertLCHToLab writes the Lab form of *src into *dst.
// Either pointer being nil is ErrBadCall and leaves *dst untouched.
func ConvertLCHToLab(dst *Lab, src *LCH) error {
	if dst == nil || src == nil {
		return fmt.Errorf("%w: nil colour", ErrBadCall)
	}
	*dst = LCHToLab(*src)
	return nil
}

// ConvertLabToXYZ writes the XYZ form of *src relative to w into *dst.
func ConvertLabToXYZ(dst *XYZ, src *Lab, w *reference.White) error {
	if dst == nil || src == nil || w == nil {
		return fmt.Errorf("%w: nil colour or reference", ErrBadCall)
	}
	*dst = LabToXYZ(*src, *w)
	return nil
}

// ConvertXYZToSRGB8 writes the 8-bit sRGB form of *src into *dst.
func ConvertXYZToSRGB8(dst *RGBA8, src *XYZ, alpha uint16, m *reference.Matrix) error {
	if dst == nil || src == nil || m == nil {
		return fmt.Errorf("%w: nil colour or matrix", ErrBadCall)
	}
	*dst = XYZToSRGB8(*src, alpha, *m)
	return nil
}

// ConvertXYZToSRGB16 writes the 16-bit sRGB form of *src into *dst.
func ConvertXYZToSRGB16(dst *RGBA16, src *XYZ, alpha uint16, m *reference.Matrix) error {
	if dst == nil || src == nil || m == nil {
		return fmt.Errorf("%w: nil colour or matrix", ErrBadCall)
	}
	*dst = XYZToSRGB16(*src, alpha, *m)
	return nil
}
