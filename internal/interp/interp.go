// Package interp implements the per-channel interpolation rules used by the
// palette wheel: plain linear blending, circular (hue) blending on the
// 0..360 degree circle, and integer channel blending for 8/16-bit RGB.
//
// All functions take the left value, the fraction f in [0, 1] and the right
// value, in that order. f = 0 yields the left value.
package interp

import "math"

// Linear returns l + (r-l)*f.
func Linear(l, f, r float64) float64 {
	return l + (r-l)*f
}

// LinearInt is Linear for integer channels, truncated toward zero.
func LinearInt(l int, f float64, r int) int {
	return l + int(float64(r-l)*f)
}

// Residue reduces x to the degree circle (0, 360]. Multiples of 360,
// including 0, map to 360.
func Residue(x int) int {
	rem := x % 360
	if rem > 0 {
		return rem
	}
	return rem + 360
}

// hueInterval returns the length of the arc to travel: the forward residue
// when it is shorter than a half turn, else the backward one, else 180.
func hueInterval(fwd, back int) int {
	switch {
	case fwd < 180:
		return fwd
	case back < 180:
		return back
	default:
		return 180
	}
}

// HueInt blends two hues in whole degrees along the shorter arc.
// Hues that are exactly opposite travel backward when l < r and forward
// when l > r. The step is truncated to whole degrees.
func HueInt(l int, f float64, r int) int {
	d := l - r
	switch {
	case d < 0:
		lr := Residue(d)  // l - r on the circle
		rl := Residue(-d) // r - l on the circle
		step := int(float64(hueInterval(lr, rl)) * f)
		if lr > 180 {
			return l + step
		}
		return Residue(l - step)
	case d > 0:
		lr := Residue(d)
		rl := Residue(-d)
		step := int(float64(hueInterval(lr, rl)) * f)
		if rl > 180 {
			return l - step
		}
		return Residue(l + step)
	default:
		return l
	}
}

// ResidueDeg is Residue for real-valued degrees.
func ResidueDeg(x float64) float64 {
	rem := math.Mod(x, 360)
	if rem > 0 {
		return rem
	}
	return rem + 360
}

func hueIntervalDeg(fwd, back float64) float64 {
	switch {
	case fwd < 180:
		return fwd
	case back < 180:
		return back
	default:
		return 180
	}
}

// HueDeg is HueInt for real-valued degrees. The step is not truncated.
func HueDeg(l, f, r float64) float64 {
	d := l - r
	switch {
	case d < 0:
		lr := ResidueDeg(d)
		rl := ResidueDeg(-d)
		step := hueIntervalDeg(lr, rl) * f
		if lr > 180 {
			return l + step
		}
		return ResidueDeg(l - step)
	case d > 0:
		lr := ResidueDeg(d)
		rl := ResidueDeg(-d)
		step := hueIntervalDeg(lr, rl) * f
		if rl > 180 {
			return l - step
		}
		return ResidueDeg(l + step)
	default:
		return l
	}
}

// Channel blends unsigned integer channels. The blended value is computed in
// floating point and truncated, so a descending blend lands on the lower
// integer just as an ascending one does.
func Channel[T uint8 | uint16](l T, f float64, r T) T {
	if l <= r {
		return l + T(float64(r-l)*f)
	}
	return T(float64(l) - float64(l-r)*f)
}
