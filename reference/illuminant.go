package reference

import "fmt"

// Chromaticity holds CIE chromaticity coordinates. X+Y+Z = 1.
type Chromaticity struct {
	X, Y, Z float64
}

// White is a reference white point.
type White struct {
	// X, Y, Z are the tristimulus values, normalised so that Y = 1.
	X, Y, Z float64

	// Chroma is derived from X, Y, Z.
	Chroma Chromaticity
}

// whiteFromTristimulus computes the chromaticity from the tristimulus values
// directly for each coordinate rather than using z = 1-x-y, so that no
// coordinate accumulates the error of the other two.
func whiteFromTristimulus(x, y, z float64) White {
	sum := x + y + z
	return White{
		X: x, Y: y, Z: z,
		Chroma: Chromaticity{X: x / sum, Y: y / sum, Z: z / sum},
	}
}

// whiteFromChromaticity recovers tristimulus values (Y = 1) from published
// xy coordinates, for illuminants whose tristimulus values are not tabulated.
func whiteFromChromaticity(cx, cy float64) White {
	return whiteFromTristimulus(cx/cy, 1, (1-cx-cy)/cy)
}

var illuminants = [...]White{
	D65Deg2:  whiteFromTristimulus(0.950489, 1.0, 1.088840),
	D65Deg10: whiteFromTristimulus(0.94811, 1.0, 1.07304),
	D55Deg2:  whiteFromTristimulus(0.9568, 1.0, 0.9214),
	D50Deg2:  whiteFromTristimulus(0.9642, 1.0, 0.8249),
	D50Deg10: whiteFromChromaticity(0.34773, 0.35952),
	ICC:      whiteFromTristimulus(31595.0/32768.0, 1.0, 27030.0/32768.0),
	IllumA:   whiteFromTristimulus(1.0985, 1.0, 0.3558),
	IllumC:   whiteFromTristimulus(0.9807, 1.0, 1.1822),
	// E is equal energy: identical tristimulus, so chromaticity is 1/3 exactly.
	IllumE: whiteFromTristimulus(1.0, 1.0, 1.0),
}

// StandardIlluminant returns the white point for t.
func StandardIlluminant(t RefType) (White, error) {
	if !t.Valid() {
		return White{}, fmt.Errorf("%w: %v", ErrUnknownIlluminant, t)
	}
	return illuminants[t], nil
}
