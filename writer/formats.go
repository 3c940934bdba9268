package writer

import (
	"image"
	"io"

	"github.com/anthonynsimon/bild/imgio"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/frascr/frascr"
)

// JPEG qualities for uncompressed and compressed requests.
const (
	jpegBest    = 100
	jpegDefault = 75
)

func encodeTIFF(w io.Writer, img image.Image, vis Visualization, _ string) error {
	opts := &tiff.Options{Compression: tiff.Uncompressed}
	if vis.Compression != 0 {
		opts.Compression = tiff.Deflate
	}
	return tiff.Encode(w, img, opts)
}

// encodeBMP writes 8-bit channels whatever the depth.
func encodeBMP(w io.Writer, img image.Image, vis Visualization, _ string) error {
	if vis.Depth == 16 {
		frascr.Logger().Debug("bmp stores 8-bit channels, narrowing")
	}
	return bmp.Encode(w, img)
}

// encodeJPEG writes 8-bit channels and drops alpha.
func encodeJPEG(w io.Writer, img image.Image, vis Visualization, _ string) error {
	quality := jpegBest
	if vis.Compression != 0 {
		quality = jpegDefault
	}
	return imgio.JPEGEncoder(quality)(w, img)
}
