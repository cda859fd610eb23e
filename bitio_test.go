package bitpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWriteBitsInWordRoundTrip(t *testing.T) {
	words := make([]uint32, 4)
	WriteBitsInWord(words, 1, 5, 9, 0x1AB)
	got := ReadBitsInWord(words, 1, 5, 9)
	assert.Equal(t, uint32(0x1AB), got)
}

func TestReadWriteBitsInWordPreservesNeighbors(t *testing.T) {
	words := []uint32{0xFFFFFFFF}
	WriteBitsInWord(words, 0, 8, 4, 0x0)
	// bits 8..11 cleared, everything else still set
	assert.Equal(t, uint32(0xFFFFF0FF), words[0])
}

func TestWriteBitsStraddlesWordBoundary(t *testing.T) {
	words := make([]uint32, 2)
	// a 10-bit field starting at bit 28 straddles words[0]/words[1]
	WriteBits(words, 28, 10, 0x3AA)
	got := ReadBits(words, 28, 10)
	assert.Equal(t, uint32(0x3AA), got)
}

func TestWriteBitsDoesNotDisturbNeighboringFields(t *testing.T) {
	words := make([]uint32, 2)
	WriteBits(words, 0, 5, 0x1F)
	WriteBits(words, 5, 5, 0x15)
	WriteBits(words, 10, 5, 0x0A)
	assert.Equal(t, uint32(0x1F), ReadBits(words, 0, 5))
	assert.Equal(t, uint32(0x15), ReadBits(words, 5, 5))
	assert.Equal(t, uint32(0x0A), ReadBits(words, 10, 5))
}

func TestReadWriteBitsWidth32(t *testing.T) {
	words := make([]uint32, 2)
	WriteBits(words, 3, 32, 0xFFFFFFFF)
	assert.Equal(t, uint32(0xFFFFFFFF), ReadBits(words, 3, 32))
}

func TestReadWriteBitsWidthZero(t *testing.T) {
	words := []uint32{0xDEADBEEF}
	assert.Equal(t, uint32(0), ReadBits(words, 4, 0))
	before := words[0]
	WriteBits(words, 4, 0, 0xFF)
	assert.Equal(t, before, words[0], "zero-width write must be a no-op")
}

func TestMaskForBoundaries(t *testing.T) {
	assert.Equal(t, uint32(0), maskFor(0))
	assert.Equal(t, uint32(1), maskFor(1))
	assert.Equal(t, ^uint32(0), maskFor(32))
}

func TestReadWriteBitsAllOffsets(t *testing.T) {
	for offset := 0; offset < 32; offset++ {
		for width := 1; width <= 32; width++ {
			words := make([]uint32, 3)
			var value uint32 = 0xBEEF1234
			if width < 32 {
				value &= uint32(1<<width) - 1
			}
			WriteBits(words, offset, width, value)
			got := ReadBits(words, offset, width)
			assert.Equal(t, value, got, "offset=%d width=%d", offset, width)
		}
	}
}
