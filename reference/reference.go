// Package reference holds the reference catalog used by the colour pipeline:
// standard illuminants (white points) and the 3x3 matrices that move
// tristimulus values between CIE XYZ and RGB primaries.
//
// Every entry is an immutable value. Lookups return copies, so callers may
// keep or modify what they receive without affecting the catalog.
//
// Tristimulus values are normalised so that Y = 1. Chromaticity coordinates
// are computed from the tristimulus values instead of being stored, which
// keeps x+y+z = 1 for every entry regardless of where the published numbers
// came from.
package reference

import "errors"

// Catalog errors.
var (
	// ErrUnknownIlluminant is returned when a RefType has no catalog entry.
	ErrUnknownIlluminant = errors.New("reference: unknown illuminant")

	// ErrUnknownMatrix is returned when a MatrixID has no catalog entry.
	ErrUnknownMatrix = errors.New("reference: unknown matrix")
)

// RefType selects a reference illuminant.
type RefType int

const (
	// D65Deg2 is daylight D65 for the CIE 1931 2° observer.
	D65Deg2 RefType = iota
	// D65Deg10 is daylight D65 for the CIE 1964 10° observer.
	D65Deg10
	// D55Deg2 is daylight D55 for the 2° observer.
	D55Deg2
	// D50Deg2 is horizon light D50 for the 2° observer.
	D50Deg2
	// D50Deg10 is horizon light D50 for the 10° observer.
	D50Deg10
	// ICC is the ICC profile connection space white (D50, s15Fixed16 rounded).
	ICC
	// IllumA is incandescent illuminant A.
	IllumA
	// IllumC is average daylight illuminant C.
	IllumC
	// IllumE is the equal-energy illuminant E.
	IllumE
	// Unknown is returned for names that match no entry. It must be rejected.
	Unknown
)

var refNames = [...]string{
	D65Deg2:  "D65 2deg",
	D65Deg10: "D65 10deg",
	D55Deg2:  "D55 2deg",
	D50Deg2:  "D50 2deg",
	D50Deg10: "D50 10deg",
	ICC:      "ICC",
	IllumA:   "A",
	IllumC:   "C",
	IllumE:   "E",
	Unknown:  "unknown",
}

// String returns the catalog name of the illuminant.
func (t RefType) String() string {
	if t < 0 || t > Unknown {
		return refNames[Unknown]
	}
	return refNames[t]
}

// Valid reports whether t names a catalog entry.
func (t RefType) Valid() bool {
	return t >= D65Deg2 && t < Unknown
}

// Lookup maps a catalog name such as "D65 2deg" to its RefType.
// Names are matched exactly. Anything else yields Unknown, never an error;
// callers must check the result.
func Lookup(name string) RefType {
	for t := D65Deg2; t < Unknown; t++ {
		if refNames[t] == name {
			return t
		}
	}
	return Unknown
}

// Known returns every usable RefType in catalog order.
func Known() []RefType {
	out := make([]RefType, 0, int(Unknown))
	for t := D65Deg2; t < Unknown; t++ {
		out = append(out, t)
	}
	return out
}

// ReferenceValues bundles a white point with the XYZ to RGB matrix used for
// display conversion under that illuminant.
type ReferenceValues struct {
	Type   RefType
	White  White
	Matrix Matrix
}

// Values returns the white point and display matrix for t.
func Values(t RefType) (ReferenceValues, error) {
	w, err := StandardIlluminant(t)
	if err != nil {
		return ReferenceValues{}, err
	}
	m, err := DisplayMatrix(t)
	if err != nil {
		return ReferenceValues{}, err
	}
	return ReferenceValues{Type: t, White: w, Matrix: m}, nil
}

// MustValues is like Values but panics on an unknown illuminant.
// It is intended for package-level defaults built from constants.
func MustValues(t RefType) ReferenceValues {
	v, err := Values(t)
	if err != nil {
		panic(err)
	}
	return v
}
