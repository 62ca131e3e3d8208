// Package render turns a decoded sprite's two bit planes into a greyscale
// PNG. This is the external-collaborator upscaling step spec.md sketches but
// explicitly keeps out of the decoder core: internal/sprite never imports
// this package, and nothing here feeds back into a decode.
package render

import (
	"bufio"
	"image"
	"image/png"
	"io"
)

// frameSize is the width and height, in pixels, of the 7x7-tile output frame
// that internal/sprite.Decode always positions its two planes into.
const frameSize = 56

// Gray renders plane0 and plane1 (each 392 bytes, in column-major tile
// order) into an 8-bit greyscale image using the mapping
// pixel = low_bit*85 + high_bit*170, with the mechanical per-tile transpose
// from column-major tile storage to row-major pixel storage.
func Gray(plane0, plane1 []byte) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, frameSize, frameSize))

	for pointer := 0; pointer < 49*8; pointer++ {
		col, row := pointer/frameSize, pointer%frameSize
		pos := row*frameSize + col*8

		a, b := plane0[pointer], plane1[pointer]
		for i := 0; i < 8; i++ {
			f := byte(1 << (7 - i))
			var v byte
			if a&f != 0 {
				v += 85
			}
			if b&f != 0 {
				v += 170
			}
			img.Pix[pos+i] = v
		}
	}

	return img
}

// WritePNG renders the two planes and encodes the result as a PNG to w.
func WritePNG(w io.Writer, plane0, plane1 []byte) error {
	img := Gray(plane0, plane1)
	bw := bufio.NewWriter(w)
	if err := png.Encode(bw, img); err != nil {
		return err
	}
	return bw.Flush()
}
