// Package color holds the scalar kernels of the conversion pipeline: the
// sRGB transfer functions and the CIE lightness functions shared by Lab
// and Luv.
package color

import "math"

// sRGB transfer function constants (IEC 61966-2-1).
const (
	srgbLinearCutoff  = 0.0031308
	srgbEncodedCutoff = 0.04045
	srgbSlope         = 12.92
	srgbScale         = 1.055
	srgbOffset        = 0.055
	srgbGamma         = 2.4
)

// Encode applies the sRGB companding curve to a linear component.
// Formula: if l <= 0.0031308: 12.92*l; else: 1.055*l^(1/2.4)-0.055
// The input is not clamped.
func Encode(l float64) float64 {
	if l <= srgbLinearCutoff {
		return srgbSlope * l
	}
	return srgbScale*math.Pow(l, 1/srgbGamma) - srgbOffset
}

// Decode is the inverse of Encode.
// Formula: if s <= 0.04045: s/12.92; else: ((s+0.055)/1.055)^2.4
func Decode(s float64) float64 {
	if s <= srgbEncodedCutoff {
		return s / srgbSlope
	}
	return math.Pow((s+srgbOffset)/srgbScale, srgbGamma)
}

// MaxEncoded is the largest encoded value before scaling to integer
// channels. Scaling 0.9999 by 255 truncates to 254 and by 65535 to 65528.
const MaxEncoded = 0.9999

// Clamp bounds an encoded component to [0, MaxEncoded]. NaN maps to 0.
func Clamp(v float64) float64 {
	switch {
	case v > MaxEncoded:
		return MaxEncoded
	case v >= 0:
		return v
	default: // negative or NaN
		return 0
	}
}

// Quantize8 clamps v and scales it to an 8-bit channel, truncating.
func Quantize8(v float64) uint8 {
	return uint8(Clamp(v) * 255)
}

// Quantize16 clamps v and scales it to a 16-bit channel, truncating.
func Quantize16(v float64) uint16 {
	return uint16(Clamp(v) * 65535)
}
