package frascr

import (
	"encoding/binary"
	"fmt"
	"image/color"
)

// Color is a swatch value in one of the colour-bearing spaces.
// The concrete types are LCH, Lab, Luv, XYZ, RGBA8 and RGBA16. All are
// plain values, so assignment is a deep copy.
type Color interface {
	Space() ColorSpace
	isColor()
}

// LCH is a cylindrical CIE L*C*h colour with integer channels.
// H is in degrees on the circle; 0 and 360 name the same hue.
type LCH struct {
	L, C, H int
}

// Lab is a CIE 1976 L*a*b* colour.
type Lab struct {
	L, A, B float64
}

// Luv is a CIE 1976 L*u*v* colour.
type Luv struct {
	L, U, V float64
}

// XYZ is a CIE 1931 tristimulus value, scaled so that the reference white
// has Y = 1.
type XYZ struct {
	X, Y, Z float64
}

// RGBA8 is a non-premultiplied sRGB colour with 8 bits per channel.
type RGBA8 struct {
	R, G, B, A uint8
}

// RGBA16 is a non-premultiplied sRGB colour with 16 bits per channel.
type RGBA16 struct {
	R, G, B, A uint16
}

func (LCH) Space() ColorSpace    { return SpaceLCH }
func (Lab) Space() ColorSpace    { return SpaceLab }
func (Luv) Space() ColorSpace    { return SpaceLuv }
func (XYZ) Space() ColorSpace    { return SpaceXYZ }
func (RGBA8) Space() ColorSpace  { return SpaceSRGB8 }
func (RGBA16) Space() ColorSpace { return SpaceSRGB16 }

func (LCH) isColor()    {}
func (Lab) isColor()    {}
func (Luv) isColor()    {}
func (XYZ) isColor()    {}
func (RGBA8) isColor()  {}
func (RGBA16) isColor() {}

func (c LCH) String() string { return fmt.Sprintf("lch(%d, %d, %d)", c.L, c.C, c.H) }
func (c Lab) String() string { return fmt.Sprintf("lab(%g, %g, %g)", c.L, c.A, c.B) }
func (c Luv) String() string { return fmt.Sprintf("luv(%g, %g, %g)", c.L, c.U, c.V) }
func (c XYZ) String() string { return fmt.Sprintf("xyz(%g, %g, %g)", c.X, c.Y, c.Z) }

func (c RGBA8) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c RGBA16) String() string {
	return fmt.Sprintf("#%04x%04x%04x%04x", c.R, c.G, c.B, c.A)
}

// Word packs the channels into one value with R in the low byte, then G,
// B and A. This is the little-endian reading of the bytes r, g, b, a.
func (c RGBA8) Word() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}

// RGBA8FromWord unpacks a value produced by RGBA8.Word.
func RGBA8FromWord(w uint32) RGBA8 {
	return RGBA8{R: uint8(w), G: uint8(w >> 8), B: uint8(w >> 16), A: uint8(w >> 24)}
}

// Word packs the channels with R in the low 16 bits, then G, B and A.
func (c RGBA16) Word() uint64 {
	return uint64(c.R) | uint64(c.G)<<16 | uint64(c.B)<<32 | uint64(c.A)<<48
}

// RGBA16FromWord unpacks a value produced by RGBA16.Word.
func RGBA16FromWord(w uint64) RGBA16 {
	return RGBA16{R: uint16(w), G: uint16(w >> 16), B: uint16(w >> 32), A: uint16(w >> 48)}
}

// Bytes returns the channels in image row order r, g, b, a.
func (c RGBA8) Bytes() [4]byte {
	return [4]byte{c.R, c.G, c.B, c.A}
}

// Bytes returns the channels in image row order, each big-endian as PNG
// and TIFF store 16-bit samples.
func (c RGBA16) Bytes() [8]byte {
	var b [8]byte
	binary.BigEndian.PutUint16(b[0:], c.R)
	binary.BigEndian.PutUint16(b[2:], c.G)
	binary.BigEndian.PutUint16(b[4:], c.B)
	binary.BigEndian.PutUint16(b[6:], c.A)
	return b
}

// RGBA implements color.Color.
func (c RGBA8) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// RGBA implements color.Color.
func (c RGBA16) RGBA() (r, g, b, a uint32) {
	return color.NRGBA64{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// To16 widens c to 16 bits per channel.
func (c RGBA8) To16() RGBA16 {
	return RGBA16{
		R: uint16(c.R) * 0x101,
		G: uint16(c.G) * 0x101,
		B: uint16(c.B) * 0x101,
		A: uint16(c.A) * 0x101,
	}
}

// To8 narrows c to 8 bits per channel by keeping the high byte.
func (c RGBA16) To8() RGBA8 {
	return RGBA8{R: uint8(c.R >> 8), G: uint8(c.G >> 8), B: uint8(c.B >> 8), A: uint8(c.A >> 8)}
}
