package bitpack

// Bit-level I/O over a word array. bitPos counts bits from the least
// significant bit of words[0]; bit 0 of a field is its least significant bit.
// All shifts are logical — the package never relies on sign extension.
//
// The cross-word path splits a field into a low part (taken from the upper
// bits of its first word) and a high part (taken from the low bits of the
// next word), or'd together with the high part shifted left by the low
// part's width. The in-word path assumes the caller has already guaranteed
// the field doesn't straddle a word boundary, so it skips the split
// entirely.

// maskFor returns the low-bitLen-bits-set mask, handling bitLen==32 (where
// 1<<32 would overflow a uint32 shift).
func maskFor(bitLen int) uint32 {
	if bitLen >= 32 {
		return ^uint32(0)
	}
	if bitLen <= 0 {
		return 0
	}
	return (uint32(1) << bitLen) - 1
}

// ReadBits returns the bitLen-bit unsigned field starting at bitPos, which
// may straddle two adjacent words. bitLen must be in [0, 32]; bitLen 0 yields
// 0. The caller is responsible for bounds-checking bitPos/bitLen against
// words; this primitive does not bounds-check.
func ReadBits(words []uint32, bitPos, bitLen int) uint32 {
	if bitLen <= 0 {
		return 0
	}
	wordIndex := bitPos / 32
	offset := bitPos % 32
	first := 32 - offset
	if first > bitLen {
		first = bitLen
	}
	rest := bitLen - first

	value := (words[wordIndex] >> offset) & maskFor(first)
	if rest > 0 {
		value |= (words[wordIndex+1] & maskFor(rest)) << first
	}
	return value
}

// WriteBits writes the low bitLen bits of value at bitPos, clearing exactly
// the target bits in one or two words and or'ing in the masked value. Bits
// outside the target range are preserved.
func WriteBits(words []uint32, bitPos, bitLen int, value uint32) {
	if bitLen <= 0 {
		return
	}
	wordIndex := bitPos / 32
	offset := bitPos % 32
	first := 32 - offset
	if first > bitLen {
		first = bitLen
	}
	rest := bitLen - first

	maskFirst := maskFor(first)
	words[wordIndex] &^= maskFirst << offset
	words[wordIndex] |= (value & maskFirst) << offset

	if rest > 0 {
		maskRest := maskFor(rest)
		words[wordIndex+1] &^= maskRest
		words[wordIndex+1] |= (value >> first) & maskRest
	}
}

// ReadBitsInWord reads bitLen bits from words[wordIndex] starting at
// bitOffset. The caller guarantees bitOffset+bitLen <= 32; this path never
// touches a second word and is branch-free aside from the zero-width guard.
func ReadBitsInWord(words []uint32, wordIndex, bitOffset, bitLen int) uint32 {
	if bitLen <= 0 {
		return 0
	}
	return (words[wordIndex] >> bitOffset) & uint32(uint64(1)<<uint(bitLen)-1)
}

// WriteBitsInWord writes bitLen bits of value into words[wordIndex] at
// bitOffset. The caller guarantees bitOffset+bitLen <= 32.
func WriteBitsInWord(words []uint32, wordIndex, bitOffset, bitLen int, value uint32) {
	if bitLen <= 0 {
		return
	}
	mask := maskFor(bitLen)
	words[wordIndex] &^= mask << bitOffset
	words[wordIndex] |= (value & mask) << bitOffset
}
