package writer

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/png"
	"io"
)

// ihdrEnd is the offset just past the PNG signature and IHDR chunk.
const ihdrEnd = 8 + 4 + 4 + 13 + 4

func encodePNG(w io.Writer, img image.Image, vis Visualization, kind string) error {
	enc := png.Encoder{CompressionLevel: png.NoCompression}
	if vis.Compression != 0 {
		enc.CompressionLevel = png.BestCompression
	}
	var buf bytes.Buffer
	if err := enc.Encode(&buf, img); err != nil {
		return err
	}
	data := buf.Bytes()

	if _, err := w.Write(data[:ihdrEnd]); err != nil {
		return err
	}
	for _, kv := range [][2]string{
		{"Title", vis.title()},
		{"Author", vis.author()},
		{"Description", vis.Description(kind)},
	} {
		if err := writeTextChunk(w, kv[0], kv[1]); err != nil {
			return err
		}
	}
	_, err := w.Write(data[ihdrEnd:])
	return err
}

// writeTextChunk writes an uncompressed tEXt chunk. Keyword and text are
// expected to be Latin-1; the keyword is truncated to 79 bytes.
func writeTextChunk(w io.Writer, keyword, text string) error {
	if len(keyword) > 79 {
		keyword = keyword[:79]
	}
	body := make([]byte, 0, 4+len(keyword)+1+len(text))
	body = append(body, "tEXt"...)
	body = append(body, keyword...)
	body = append(body, 0)
	body = append(body, text...)

	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(len(body)-4))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	if _, err := w.Write(body); err != nil {
		return err
	}
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc32.ChecksumIEEE(body))
	_, err := w.Write(sum[:])
	return err
}
