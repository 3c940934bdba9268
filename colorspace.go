package frascr

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/frascr/frascr/reference"
)

// ColorSpace identifies the colour model of a swatch or palette.
type ColorSpace uint8

const (
	// SpaceMono is the absence of colour. It has no swatch type and is used by
	// grey-level output only.
	SpaceMono ColorSpace = iota
	// SpaceLCH is cylindrical CIE L*C*h with integer channels.
	SpaceLCH
	// SpaceLab is CIE 1976 L*a*b*.
	SpaceLab
	// SpaceLuv is CIE 1976 L*u*v*.
	SpaceLuv
	// SpaceXYZ is CIE 1931 XYZ tristimulus.
	SpaceXYZ
	// SpaceSRGB8 is sRGB with 8 bits per channel.
	SpaceSRGB8
	// SpaceSRGB16 is sRGB with 16 bits per channel.
	SpaceSRGB16

	spaceCount
)

// spaceNames are the configuration names, matched case-insensitively.
var spaceNames = [...]string{
	SpaceMono:   "mono",
	SpaceLCH:    "lch",
	SpaceLab:    "cielab",
	SpaceLuv:    "cieluv",
	SpaceXYZ:    "ciexyz",
	SpaceSRGB8:  "srgb8",
	SpaceSRGB16: "srgb16",
}

func (s ColorSpace) String() string {
	if s >= spaceCount {
		return fmt.Sprintf("ColorSpace(%d)", uint8(s))
	}
	return spaceNames[s]
}

// valid reports whether s is a colour-bearing space.
func (s ColorSpace) valid() bool {
	return s > SpaceMono && s < spaceCount
}

// Mode selects how a palette answers an intensity query.
type Mode uint8

const (
	// ModeOther is any unrecognised mode. Queries in this mode fail.
	ModeOther Mode = iota
	// ModeSample snaps to the nearest swatch.
	ModeSample
	// ModeLinear blends the two swatches around the intensity.
	ModeLinear
)

func (m Mode) String() string {
	switch m {
	case ModeSample:
		return "sample"
	case ModeLinear:
		return "linear"
	default:
		return "other"
	}
}

// fold normalises a configuration name. A Caser is stateful, so each call
// gets its own.
func fold(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// SpaceFromName maps a configuration name such as "lch" or "srgb16" to its
// ColorSpace. Matching ignores case. Unknown names yield SpaceMono.
func SpaceFromName(name string) ColorSpace {
	key := fold(name)
	for s := SpaceLCH; s < spaceCount; s++ {
		if spaceNames[s] == key {
			return s
		}
	}
	return SpaceMono
}

// ModeFromName maps "sample" or "linear" to its Mode. Matching ignores case.
// Unknown names yield ModeOther.
func ModeFromName(name string) Mode {
	switch fold(name) {
	case "sample":
		return ModeSample
	case "linear":
		return ModeLinear
	default:
		return ModeOther
	}
}

// IlluminantFromName maps a catalog name such as "D65 2deg" to its
// reference type. Unknown names yield reference.Unknown.
func IlluminantFromName(name string) reference.RefType {
	return reference.Lookup(strings.TrimSpace(name))
}

// Spaces returns the colour-bearing spaces in declaration order.
func Spaces() []ColorSpace {
	out := make([]ColorSpace, 0, spaceCount-1)
	for s := SpaceLCH; s < spaceCount; s++ {
		out = append(out, s)
	}
	return out
}
