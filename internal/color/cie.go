package color

import "math"

// CIE constants in their exact rational form.
const (
	// Epsilon is (6/29)^3, the XYZ ratio where the lightness curve turns linear.
	Epsilon = 216.0 / 24389.0
	// Kappa is (29/3)^3, the slope of the linear part of the lightness curve.
	Kappa = 24389.0 / 27.0

	delta = 6.0 / 29.0
)

// LabF is the forward CIE lightness function applied to a ratio t = X/Xn.
func LabF(t float64) float64 {
	if t > Epsilon {
		return math.Cbrt(t)
	}
	return (Kappa*t + 16) / 116
}

// LabFInv inverts LabF.
// Formula: if t > 6/29: t^3; else: (116t-16)/kappa
func LabFInv(t float64) float64 {
	if t > delta {
		return t * t * t
	}
	return (116*t - 16) / Kappa
}

// LightnessToY converts CIE L* to a relative luminance Y/Yn.
// At and below L* = 8 (kappa*epsilon) the curve is linear.
func LightnessToY(l float64) float64 {
	if l > 8 {
		fy := (l + 16) / 116
		return fy * fy * fy
	}
	return l / Kappa
}
