// Package frascr is the colour engine of an escape-time fractal renderer.
//
// # Overview
//
// A render produces a field of escape counts. Each count is normalised to an
// intensity in [0, 1] and looked up in a palette (a [Wheel]) of swatches.
// The swatch colour is then carried through a colorimetric pipeline
// (LCH to Lab to XYZ to sRGB) under a reference illuminant from the
// [reference] catalog, and written as 8- or 16-bit pixels.
//
// # Quick Start
//
//	import "github.com/frascr/frascr"
//
//	w, err := frascr.NewWheel(frascr.SpaceLCH, 3, frascr.ModeLinear, []frascr.Color{
//	    frascr.LCH{L: 20, C: 40, H: 280},
//	    frascr.LCH{L: 60, C: 50, H: 30},
//	    frascr.LCH{L: 95, C: 10, H: 90},
//	})
//	if err != nil {
//	    return err
//	}
//	ref := reference.MustValues(reference.D65Deg2)
//
//	c, err := w.Interpolate(0.4)
//	px, err := frascr.ToRGBA8(c, 0xff, ref)
//
// # Colour spaces
//
// Swatches are plain values of one of [LCH], [Lab], [Luv], [XYZ], [RGBA8]
// and [RGBA16]. A palette holds swatches of a single space. Interpolation
// follows the space: LCH lightness and chroma blend linearly on integers
// while hue travels the shorter arc of the circle; Lab, Luv and XYZ blend
// linearly on reals; RGB channels blend as integers and alpha is copied
// from the lower swatch.
//
// # Output range
//
// Encoded channels are clamped to [0, 0.9999] before scaling, so the
// brightest 8-bit value produced by the pipeline is 254 and the brightest
// 16-bit value is 65528.
//
// # Architecture
//
// The module is organized into:
//   - frascr: colour values, palettes, conversions, name lookups, logging
//   - reference: illuminants and XYZ/RGB matrices
//   - field: the escape-count grid and its geometry
//   - algorithm: escape-time iterations, run column-parallel
//   - writer: colourisation and PNG/TIFF/BMP/JPEG/text output
//   - config: JSON, TOML and YAML run configuration
//   - cmd/frascr: the command-line renderer
package frascr

// Version is the current version of the module.
const Version = "0.4.0"
