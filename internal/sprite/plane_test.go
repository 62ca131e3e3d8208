package sprite

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePlane_ZeroDimensionsAreNoOps(t *testing.T) {
	dst := make([]byte, 8)
	b := &bitBuilder{}
	b.bit(0)
	b.run(1)
	rle := NewRLEStream(NewBitReader(bytes.NewReader(b.bytes())))

	require.NotPanics(t, func() {
		DecodePlane(0, 3, dst, rle)
		DecodePlane(3, 0, dst, rle)
	})
	assert.Equal(t, make([]byte, 8), dst)
}

// TestDecodePlane_AllZeroSymbols covers spec.md's S2 scenario: a W=1, H=1
// plane needs 32 symbols (width*height*32), and an all-zero run of exactly
// that length decodes to an all-zero plane.
func TestDecodePlane_AllZeroSymbols(t *testing.T) {
	b := &bitBuilder{}
	b.bit(0) // zeros phase
	b.run(32)
	rle := NewRLEStream(NewBitReader(bytes.NewReader(b.bytes())))

	dst := make([]byte, 8)
	DecodePlane(1, 1, dst, rle)

	assert.Equal(t, make([]byte, 8), dst)
}

// TestDecodePlane_ShiftPackingAcrossColumnPasses reproduces spec.md's S3
// worked example. DecodePlane revisits the same height*8-byte column once
// per shift level (6, 4, 2, 0), so for W=1 the three literal symbols 1, 2, 3
// pulled 8 slots apart all land in dst[0], OR'd at descending shifts:
// (1<<6)|(2<<4)|(3<<2) = 0x6C.
func TestDecodePlane_ShiftPackingAcrossColumnPasses(t *testing.T) {
	b := &bitBuilder{}
	b.bit(1) // data phase
	b.sym(1)
	b.sym(0) // terminator
	b.run(7) // fills out the rest of the shift=6 pass with zeros
	b.sym(2)
	b.sym(0)
	b.run(7) // fills out the shift=4 pass
	b.sym(3)
	b.sym(0)
	b.run(15) // fills out the shift=2 and shift=0 passes

	rle := NewRLEStream(NewBitReader(bytes.NewReader(b.bytes())))

	dst := make([]byte, 8)
	DecodePlane(1, 1, dst, rle)

	assert.Equal(t, byte(0x6C), dst[0])
	for i := 1; i < 8; i++ {
		assert.Equal(t, byte(0), dst[i], "dst[%d]", i)
	}
}

func TestDecodePlane_MultiColumnWidth(t *testing.T) {
	// W=2, H=1: two columns of 8 bytes each; a single zero run of exactly
	// 2*1*32 symbols fills both columns, so the whole plane stays zero.
	totalSymbols := 2 * 1 * 32

	b := &bitBuilder{}
	b.bit(0)
	b.run(totalSymbols)
	rle := NewRLEStream(NewBitReader(bytes.NewReader(b.bytes())))

	dst := make([]byte, 16)
	DecodePlane(2, 1, dst, rle)

	assert.Equal(t, make([]byte, 16), dst)
}
