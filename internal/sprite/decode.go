// Package sprite implements the CORE decoder for the Generation I Pokémon
// sprite-compression format: a bit-granular RLE stream feeding a
// column-of-columns plane layout, row-wise delta reconstruction, bit-plane
// XOR combination, and center-bottom tile repositioning with a deliberate
// 8-bit address overflow. The decoder is intentionally permissive — it never
// rejects malformed or oversize ("glitch") input, since reproducing the
// original cartridge routine's quirks, including MissingNo.-style artifacts,
// is the point.
package sprite

import (
	"io"

	"github.com/arcsprite/gbsprite/internal/logging"
)

// Options carries the one input the orchestrator needs beyond the
// compressed stream itself: an externally supplied declared size, as would
// come from a Pokédex entry. When either field is zero the header's own
// width/height is used instead.
type Options struct {
	Width  int
	Height int
}

// Result is everything a caller needs after a decode: the full staging
// buffer, the tile dimensions actually used for positioning, and
// ready-sliced views of the two final planes.
type Result struct {
	Buffer []byte
	Width  int
	Height int
	PlaneA []byte // bytes 0..391: bit plane 0, sprite-framed
	PlaneB []byte // bytes 392..783: bit plane 1, sprite-framed
}

// Decode reads a compressed sprite stream and produces a decoded 2-bit-per-
// pixel bitmap in the tile layout the Game Boy's video hardware would have
// received. It never returns an error: truncated or malformed input is
// absorbed by BitReader's zero-padding (spec §7). A caller that needs to
// distinguish a real I/O failure from a short/glitch sprite must read r to
// completion itself before calling Decode.
func Decode(r io.Reader, opts Options) Result {
	br := NewBitReader(r)

	width := int(br.Read(4))
	height := int(br.Read(4))
	logging.Debug("sprite: detected a size of %dx%d tiles from the binary data", width, height)

	declWidth, declHeight := width, height
	if opts.Width > 0 && opts.Height > 0 {
		declWidth, declHeight = opts.Width, opts.Height
	}

	maxTiles := 49
	if n := width * height; n > maxTiles {
		maxTiles = n
	}
	if n := declWidth * declHeight; n > maxTiles {
		maxTiles = n
	}

	buf := make([]byte, 2*frameSlotSize+8*maxTiles)
	logging.Debug("sprite: created memory buffer of %d bytes", len(buf))

	slotA := buf
	slotB := buf[frameSlotSize:]
	slotC := buf[2*frameSlotSize:]

	var plane0, plane1 []byte
	if br.Read(1) == 1 {
		plane0, plane1 = slotC, slotB
		logging.Debug("sprite: bit plane order detected: BP0 in C")
	} else {
		plane0, plane1 = slotB, slotC
		logging.Debug("sprite: bit plane order detected: BP0 in B")
	}

	logging.Debug("sprite: decompressing bit plane 0")
	DecodePlane(width, height, plane0, NewRLEStream(br))

	mode := ReadMode(br)
	logging.Debug("sprite: decoding mode %d detected", mode)

	logging.Debug("sprite: decompressing bit plane 1")
	DecodePlane(width, height, plane1, NewRLEStream(br))

	ApplyMode(mode, width, height, plane0, plane1)

	// Positioner cascade uses the declared size, not the header size
	// (spec §4.6): B -> A, then C -> B.
	Position(declWidth, declHeight, slotB, slotA)
	Position(declWidth, declHeight, slotC, slotB)

	logging.Info("sprite: decompression complete")

	return Result{
		Buffer: buf,
		Width:  declWidth,
		Height: declHeight,
		PlaneA: buf[:frameSlotSize],
		PlaneB: buf[frameSlotSize : 2*frameSlotSize],
	}
}
