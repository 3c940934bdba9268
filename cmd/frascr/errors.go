package main

import (
	"errors"

	"github.com/frascr/frascr"
	"github.com/frascr/frascr/algorithm"
	"github.com/frascr/frascr/config"
	"github.com/frascr/frascr/field"
	"github.com/frascr/frascr/writer"
)

var errTooFew = errors.New("too few command-line arguments not associated with switches")

// explanations maps failures to the messages users see, most specific first.
var explanations = []struct {
	err error
	msg string
}{
	{errTooFew, "option processing: too few command-line arguments not associated with switches"},
	{config.ErrFormat, "configuration file: unsupported format (use .json, .toml, .yaml or .yml)"},
	{config.ErrFiles, "configuration file: error in output-file information"},
	{config.ErrCanvas, "configuration file: missing / error in canvas options"},
	{config.ErrSwatchCount, "configuration file: number of color swatches does not match stated number 'n'"},
	{config.ErrColorSpace, "configuration file: unknown / error in color space"},
	{config.ErrReference, "configuration file: missing / error in color reference (illuminant) options"},
	{config.ErrConfig, "configuration file: incorrectly formatted or missing necessary information"},
	{frascr.ErrUnknownName, "unknown colour space, mode or illuminant name"},
	{field.ErrGeometry, "canvas: invalid geometry"},
	{algorithm.ErrUnknownAlgorithm, "unknown algorithm"},
	{algorithm.ErrSecondary, "algorithm: bad secondary parameters"},
	{writer.ErrUnknownWriter, "unknown output writer"},
	{writer.ErrDepth, "output: channel depth must be 8 or 16"},
	{writer.ErrNoPalette, "output: colour output needs a colorization section"},
	{frascr.ErrAllocation, "palette: unable to allocate memory"},
	{frascr.ErrDimensionMismatch, "palette: swatch count does not match n"},
	{frascr.ErrBadCall, "palette: invalid palette definition"},
}

// describe prefixes err with a human explanation of its category.
func describe(err error) string {
	for _, e := range explanations {
		if errors.Is(err, e.err) {
			return e.msg + ": " + err.Error()
		}
	}
	return err.Error()
}
