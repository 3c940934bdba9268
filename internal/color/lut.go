package color

// decodeLUT maps an 8-bit sRGB channel to its linear value.
// 256 entries, 2KB. Palettes in 8-bit sRGB decode every pixel through it
// when converted to XYZ.
var decodeLUT [256]float64

func init() {
	for i := range decodeLUT {
		decodeLUT[i] = Decode(float64(i) / 255)
	}
}

// DecodeByte converts an 8-bit sRGB channel to linear using the lookup table.
//
// Example:
//
//	l := DecodeByte(128) // ~0.2159 (not 0.5!)
func DecodeByte(s uint8) float64 {
	return decodeLUT[s]
}

// DecodeWord converts a 16-bit sRGB channel to linear.
func DecodeWord(s uint16) float64 {
	return Decode(float64(s) / 65535)
}
