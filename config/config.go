// Package config reads, validates and merges frascr run configurations.
//
// A configuration names the algorithm and writer, the canvas to sample,
// the output files and, for colour output, the palette. Files may be JSON,
// TOML or YAML and share one key layout:
//
//	debug:         verbose, output
//	core:          location, algorithm, output, file[]
//	canvas:        bottom, left, realheight, realwidth, pixelheight,
//	               pixelwidth, offset_Re, offset_Im, escape, secondary[]
//	visualization: compression, channeldepth, supersample, legend,
//	               title, author, colorization
//	colorization:  space, reference, alpha, algorithm{type, n},
//	               swatches[{caxisa, caxisb, caxisc}]
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jinzhu/copier"

	"github.com/frascr/frascr"
	"github.com/frascr/frascr/algorithm"
	"github.com/frascr/frascr/field"
	"github.com/frascr/frascr/reference"
	"github.com/frascr/frascr/writer"
)

var (
	// ErrConfig reports a configuration that is malformed or incomplete.
	ErrConfig = errors.New("config: incorrectly formatted or missing necessary information")

	// ErrFormat reports a file extension with no decoder.
	ErrFormat = errors.New("config: unsupported file format")

	// ErrFiles reports missing or empty output file names.
	ErrFiles = errors.New("config: error in output-file information")

	// ErrCanvas reports unusable canvas options.
	ErrCanvas = errors.New("config: missing or invalid canvas options")

	// ErrSwatchCount reports a swatch list whose length differs from n.
	ErrSwatchCount = errors.New("config: number of colour swatches does not match n")

	// ErrColorSpace reports an unknown palette colour space. It wraps
	// frascr.ErrUnknownName.
	ErrColorSpace = fmt.Errorf("config: unknown colour space: %w", frascr.ErrUnknownName)

	// ErrReference reports an unknown reference illuminant. It wraps
	// frascr.ErrUnknownName.
	ErrReference = fmt.Errorf("config: unknown colour reference: %w", frascr.ErrUnknownName)
)

// DefaultReference is the illuminant used when none is configured.
const DefaultReference = "D65 2deg"

// Options is a complete run configuration.
type Options struct {
	Debug         Debug         `json:"debug" toml:"debug" yaml:"debug"`
	Core          Core          `json:"core" toml:"core" yaml:"core"`
	Canvas        Canvas        `json:"canvas" toml:"canvas" yaml:"canvas"`
	Visualization Visualization `json:"visualization" toml:"visualization" yaml:"visualization"`
}

// Debug controls logging.
type Debug struct {
	// Verbose is 0 for warnings, 1 info, 2 debug, 3 and up trace.
	Verbose int `json:"verbose" toml:"verbose" yaml:"verbose"`

	// Output is a log file. Empty logs to standard error.
	Output string `json:"output,omitempty" toml:"output,omitempty" yaml:"output,omitempty"`
}

// Core selects what runs and where output goes.
type Core struct {
	// Location is a directory joined to Algorithm and Output.
	Location  string   `json:"location,omitempty" toml:"location,omitempty" yaml:"location,omitempty"`
	Algorithm string   `json:"algorithm" toml:"algorithm" yaml:"algorithm"`
	Output    string   `json:"output" toml:"output" yaml:"output"`
	File      []string `json:"file" toml:"file" yaml:"file"`
}

// Canvas is the sampled region and pixel grid.
type Canvas struct {
	Bottom      float64  `json:"bottom" toml:"bottom" yaml:"bottom"`
	Left        float64  `json:"left" toml:"left" yaml:"left"`
	RealHeight  float64  `json:"realheight" toml:"realheight" yaml:"realheight"`
	RealWidth   float64  `json:"realwidth" toml:"realwidth" yaml:"realwidth"`
	PixelHeight int      `json:"pixelheight" toml:"pixelheight" yaml:"pixelheight"`
	PixelWidth  int      `json:"pixelwidth" toml:"pixelwidth" yaml:"pixelwidth"`
	OffsetRe    float64  `json:"offset_Re" toml:"offset_Re" yaml:"offset_Re"`
	OffsetIm    float64  `json:"offset_Im" toml:"offset_Im" yaml:"offset_Im"`
	Escape      uint32   `json:"escape" toml:"escape" yaml:"escape"`
	Secondary   []string `json:"secondary,omitempty" toml:"secondary,omitempty" yaml:"secondary,omitempty"`
}

// Visualization controls how the field is written.
type Visualization struct {
	Compression  int    `json:"compression" toml:"compression" yaml:"compression"`
	ChannelDepth int    `json:"channeldepth" toml:"channeldepth" yaml:"channeldepth"`
	Supersample  int    `json:"supersample,omitempty" toml:"supersample,omitempty" yaml:"supersample,omitempty"`
	Legend       bool   `json:"legend,omitempty" toml:"legend,omitempty" yaml:"legend,omitempty"`
	Title        string `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`
	Author       string `json:"author,omitempty" toml:"author,omitempty" yaml:"author,omitempty"`

	// Colorization is the palette. Nil, or space "mono", means grey output.
	Colorization *Colorization `json:"colorization,omitempty" toml:"colorization,omitempty" yaml:"colorization,omitempty"`
}

// Colorization describes the palette.
type Colorization struct {
	Space     string     `json:"space" toml:"space" yaml:"space"`
	Reference string     `json:"reference,omitempty" toml:"reference,omitempty" yaml:"reference,omitempty"`
	Alpha     *uint16    `json:"alpha,omitempty" toml:"alpha,omitempty" yaml:"alpha,omitempty"`
	Algorithm Generation `json:"algorithm" toml:"algorithm" yaml:"algorithm"`
	Swatches  []Swatch   `json:"swatches" toml:"swatches" yaml:"swatches"`
}

// Generation is the palette query mode and declared swatch count.
type Generation struct {
	Type string `json:"type" toml:"type" yaml:"type"`
	N    int    `json:"n" toml:"n" yaml:"n"`
}

// Swatch holds the three axis values of one palette entry.
type Swatch struct {
	A float64 `json:"caxisa" toml:"caxisa" yaml:"caxisa"`
	B float64 `json:"caxisb" toml:"caxisb" yaml:"caxisb"`
	C float64 `json:"caxisc" toml:"caxisc" yaml:"caxisc"`
}

// Default returns the options used before a file or flags are applied.
func Default() *Options {
	return &Options{
		Core: Core{
			Algorithm: "mandelquadbrute",
			Output:    "bwpng",
		},
		Canvas: Canvas{
			RealHeight:  1,
			RealWidth:   1,
			PixelHeight: 100,
			PixelWidth:  100,
			Escape:      100,
		},
		Visualization: Visualization{
			ChannelDepth: 8,
			Supersample:  1,
		},
	}
}

// Monochrome reports whether no palette is configured.
func (o *Options) Monochrome() bool {
	c := o.Visualization.Colorization
	return c == nil || c.Space == "" || frascr.SpaceFromName(c.Space) == frascr.SpaceMono
}

// Validate checks the options for everything a render needs.
func (o *Options) Validate() error {
	if strings.TrimSpace(o.Core.Algorithm) == "" {
		return fmt.Errorf("%w: core.algorithm is empty", ErrConfig)
	}
	if strings.TrimSpace(o.Core.Output) == "" {
		return fmt.Errorf("%w: core.output is empty", ErrConfig)
	}
	if len(o.Core.File) == 0 {
		return fmt.Errorf("%w: no output files", ErrFiles)
	}
	for i, f := range o.Core.File {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("%w: file %d is empty", ErrFiles, i)
		}
	}
	if err := o.Canvas.Field().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrCanvas, err)
	}

	v := o.Visualization
	if v.ChannelDepth != 8 && v.ChannelDepth != 16 {
		return fmt.Errorf("%w: channeldepth %d (want 8 or 16)", ErrConfig, v.ChannelDepth)
	}
	if v.Supersample < 0 {
		return fmt.Errorf("%w: supersample %d", ErrConfig, v.Supersample)
	}
	if v.Colorization != nil {
		return v.Colorization.validate()
	}
	return nil
}

func (c *Colorization) validate() error {
	if c.Space == "" || strings.EqualFold(strings.TrimSpace(c.Space), "mono") {
		return nil
	}
	if frascr.SpaceFromName(c.Space) == frascr.SpaceMono {
		return fmt.Errorf("%w: %q", ErrColorSpace, c.Space)
	}
	if frascr.ModeFromName(c.Algorithm.Type) == frascr.ModeOther {
		return fmt.Errorf("%w: palette algorithm %q (want sample or linear)", ErrConfig, c.Algorithm.Type)
	}
	if c.Algorithm.N != len(c.Swatches) {
		return fmt.Errorf("%w: n is %d, %d swatches given", ErrSwatchCount, c.Algorithm.N, len(c.Swatches))
	}
	if _, err := c.ReferenceValues(); err != nil {
		return err
	}
	return nil
}

// AlphaValue returns the configured alpha, fully opaque when unset.
func (c *Colorization) AlphaValue() uint16 {
	if c == nil || c.Alpha == nil {
		return 0xffff
	}
	return *c.Alpha
}

// ReferenceValues resolves the configured illuminant, DefaultReference
// when empty.
func (c *Colorization) ReferenceValues() (reference.ReferenceValues, error) {
	name := DefaultReference
	if c != nil && c.Reference != "" {
		name = c.Reference
	}
	t := frascr.IlluminantFromName(name)
	if t == reference.Unknown {
		return reference.ReferenceValues{}, fmt.Errorf("%w: %q", ErrReference, name)
	}
	return reference.Values(t)
}

// Wheel builds the palette from the configured swatches.
func (c *Colorization) Wheel() (*frascr.Wheel, error) {
	space := frascr.SpaceFromName(c.Space)
	swatches := make([]frascr.Color, len(c.Swatches))
	for i, s := range c.Swatches {
		col, err := frascr.ParseSwatch(space, s.A, s.B, s.C)
		if err != nil {
			return nil, fmt.Errorf("swatch %d: %w", i, err)
		}
		swatches[i] = col
	}
	return frascr.NewWheel(space, c.Algorithm.N, frascr.ModeFromName(c.Algorithm.Type), swatches)
}

// Field converts the canvas options to a sampling canvas.
func (c Canvas) Field() field.Canvas {
	return field.Canvas{
		PixelWidth:  c.PixelWidth,
		PixelHeight: c.PixelHeight,
		Left:        c.Left,
		Bottom:      c.Bottom,
		Width:       c.RealWidth,
		Height:      c.RealHeight,
		OffsetRe:    c.OffsetRe,
		OffsetIm:    c.OffsetIm,
		Escape:      c.Escape,
		Secondary:   c.Secondary,
	}
}

// AlgorithmPath returns the algorithm name joined to the location.
func (o *Options) AlgorithmPath() string {
	return joinLocation(o.Core.Location, o.Core.Algorithm)
}

// OutputPath returns the writer name joined to the location.
func (o *Options) OutputPath() string {
	return joinLocation(o.Core.Location, o.Core.Output)
}

func joinLocation(loc, name string) string {
	if loc == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(loc, name)
}

// Job resolves the algorithm, writer and palette into a render job.
// The caller owns the returned palette and should Destroy it when done.
func (o *Options) Job(workers int) (writer.Job, error) {
	if err := o.Validate(); err != nil {
		return writer.Job{}, err
	}
	alg, err := algorithm.Lookup(o.AlgorithmPath())
	if err != nil {
		return writer.Job{}, err
	}
	wr, err := writer.Lookup(o.OutputPath())
	if err != nil {
		return writer.Job{}, err
	}

	v := o.Visualization
	vis := writer.Visualization{
		Depth:       v.ChannelDepth,
		Compression: v.Compression,
		Supersample: v.Supersample,
		Legend:      v.Legend,
		Title:       v.Title,
		Author:      v.Author,
		Alpha:       v.Colorization.AlphaValue(),
		Workers:     workers,
	}
	if vis.Reference, err = v.Colorization.ReferenceValues(); err != nil {
		return writer.Job{}, err
	}
	if !o.Monochrome() {
		if vis.Wheel, err = v.Colorization.Wheel(); err != nil {
			return writer.Job{}, err
		}
	}

	return writer.Job{
		Algorithm: alg,
		Canvas:    o.Canvas.Field(),
		Vis:       vis,
		Writer:    wr,
		Outputs:   append([]string(nil), o.Core.File...),
		Workers:   workers,
	}, nil
}

// Merge copies every non-zero field of over onto o, section by section.
// Zero values in over are ignored, so an override cannot reset a field to
// its zero value. A non-empty list in over replaces the list in o whole.
func (o *Options) Merge(over *Options) error {
	opt := copier.Option{IgnoreEmpty: true, DeepCopy: true}
	vis := over.Visualization
	vis.Colorization = nil
	for _, pair := range [][2]any{
		{&o.Debug, &over.Debug},
		{&o.Core, &over.Core},
		{&o.Canvas, &over.Canvas},
		{&o.Visualization, &vis},
	} {
		if err := copier.CopyWithOption(pair[0], pair[1], opt); err != nil {
			return fmt.Errorf("%w: merge: %w", ErrConfig, err)
		}
	}

	// copier writes a shorter slice over the head of a longer one and keeps
	// the tail
	if len(over.Core.File) > 0 {
		o.Core.File = slices.Clone(over.Core.File)
	}
	if len(over.Canvas.Secondary) > 0 {
		o.Canvas.Secondary = slices.Clone(over.Canvas.Secondary)
	}

	c := over.Visualization.Colorization
	switch {
	case c == nil:
	case o.Visualization.Colorization == nil:
		o.Visualization.Colorization = c.clone()
	default:
		dst := o.Visualization.Colorization
		swatches, alpha, gen := dst.Swatches, dst.Alpha, dst.Algorithm
		if err := copier.CopyWithOption(dst, c, opt); err != nil {
			return fmt.Errorf("%w: merge colorization: %w", ErrConfig, err)
		}
		dst.Swatches, dst.Alpha, dst.Algorithm = swatches, alpha, gen
		if c.Algorithm.Type != "" {
			dst.Algorithm.Type = c.Algorithm.Type
		}
		if c.Algorithm.N != 0 {
			dst.Algorithm.N = c.Algorithm.N
		}
		if len(c.Swatches) > 0 {
			dst.Swatches = slices.Clone(c.Swatches)
		}
		if c.Alpha != nil {
			a := *c.Alpha
			dst.Alpha = &a
		}
	}
	return nil
}

func (c *Colorization) clone() *Colorization {
	cc := *c
	if c.Alpha != nil {
		a := *c.Alpha
		cc.Alpha = &a
	}
	cc.Swatches = slices.Clone(c.Swatches)
	return &cc
}
