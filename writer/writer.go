// Package writer turns a filled field into output: colourised or grey
// images in several formats, or a plain text dump of the samples.
package writer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/frascr/frascr"
	"github.com/frascr/frascr/field"
	"github.com/frascr/frascr/reference"
)

var (
	// ErrUnknownWriter is returned by Lookup for unregistered names.
	ErrUnknownWriter = errors.New("writer: unknown writer")

	// ErrNoOutputs reports a render without output destinations.
	ErrNoOutputs = errors.New("writer: no outputs")

	// ErrDepth reports a channel depth other than 8 or 16.
	ErrDepth = errors.New("writer: channel depth must be 8 or 16")

	// ErrNoPalette reports a colour writer used without a palette.
	ErrNoPalette = errors.New("writer: colour output needs a palette")
)

// Default text chunk values for image metadata.
const (
	DefaultTitle  = "Frascr output image"
	DefaultAuthor = "frascr"
)

// Visualization carries everything a writer needs besides the field.
type Visualization struct {
	// Depth is the channel depth, 8 or 16.
	Depth int

	// Compression 0 writes uncompressed output where the format allows;
	// any other value asks for the best compression.
	Compression int

	// Supersample > 1 means the field was computed at that multiple of
	// the output size and must be scaled down.
	Supersample int

	// Legend draws a palette strip and caption along the bottom edge.
	Legend bool

	// Wheel is the palette. Grey writers ignore it.
	Wheel *frascr.Wheel

	// Reference selects the white point and display matrix.
	Reference reference.ReferenceValues

	// Alpha is written to every colour pixel. 8-bit output uses the low byte.
	Alpha uint16

	// Canvas describes the sampled region, for metadata.
	Canvas field.Canvas

	// Algorithm names the fractal in the legend caption.
	Algorithm string

	// Title and Author fill the image text chunks. Empty values use
	// DefaultTitle and DefaultAuthor.
	Title, Author string

	// Workers bounds the goroutines used to colourise rows.
	// GOMAXPROCS when <= 0.
	Workers int
}

func (v Visualization) validDepth() error {
	if v.Depth != 8 && v.Depth != 16 {
		return fmt.Errorf("%w: got %d", ErrDepth, v.Depth)
	}
	return nil
}

func (v Visualization) title() string {
	if v.Title == "" {
		return DefaultTitle
	}
	return v.Title
}

func (v Visualization) author() string {
	if v.Author == "" {
		return DefaultAuthor
	}
	return v.Author
}

// Description summarises the render for image metadata.
func (v Visualization) Description(kind string) string {
	c := v.Canvas
	return fmt.Sprintf("Size %d x %d. Color type %s. Re domain: [ %f , %f ]. Im domain: [ %f , %f ]. Offset: %f + i %f. Escape: %d",
		c.PixelWidth, c.PixelHeight, kind,
		c.Left, c.Left+c.Width, c.Bottom, c.Bottom+c.Height,
		c.OffsetRe, c.OffsetIm, c.Escape)
}

// Writer renders a field to a stream.
type Writer interface {
	Name() string
	Write(ctx context.Context, f *field.Field, vis Visualization, w io.Writer) error
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Writer{}
)

// Register makes a writer available by name, replacing any earlier one.
func Register(name string, w Writer) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[normalize(name)] = w
}

// Lookup returns the writer registered under name. As with algorithms,
// case, directories, a "lib" prefix and an extension are ignored.
func Lookup(name string) (Writer, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if w, ok := registry[normalize(name)]; ok {
		return w, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownWriter, name)
}

// Names lists the registered writers in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func normalize(name string) string {
	base := strings.ToLower(filepath.Base(strings.TrimSpace(name)))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.TrimPrefix(base, "lib")
}

func init() {
	Register("colorpng", &imageWriter{name: "colorpng", encode: encodePNG})
	Register("bwpng", &imageWriter{name: "bwpng", gray: true, encode: encodePNG})
	Register("tiff", &imageWriter{name: "tiff", encode: encodeTIFF})
	Register("bwtiff", &imageWriter{name: "bwtiff", gray: true, encode: encodeTIFF})
	Register("bmp", &imageWriter{name: "bmp", encode: encodeBMP})
	Register("jpeg", &imageWriter{name: "jpeg", encode: encodeJPEG})
	Register("minimalout", textWriter{})
}
