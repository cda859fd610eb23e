package bitpack

import (
	"math"
	"math/bits"
)

// Codec is the common operation set implemented by all three layouts. A
// Codec instance is stateless; all state lives in the packed buffer it reads
// or writes.
type Codec interface {
	// Tag returns the discriminator this codec writes into a header.
	Tag() Tag

	// Compress returns a freshly allocated packed buffer encoding src.
	Compress(src []int64) ([]uint32, error)

	// Decompress writes len(src)-at-compress-time elements into dst[0:n].
	Decompress(packed []uint32, dst []int64) error

	// Get returns the element at logical index i without decoding any other
	// element.
	Get(packed []uint32, i int) (int64, error)
}

// minimumWidth returns 1 if every value in src is 0, otherwise the minimum
// number of bits needed to hold the largest value. It rejects negative values
// and values needing more than 31 bits.
func minimumWidth(src []int64) (int, error) {
	var max uint32
	for _, v := range src {
		if v < 0 {
			return 0, ErrNegativeValue
		}
		if v > 0x7FFFFFFF {
			return 0, ErrValueTooWide
		}
		if uint32(v) > max {
			max = uint32(v)
		}
	}
	if max == 0 {
		return 1, nil
	}
	width := bits.Len32(max)
	if width > 31 {
		return 0, ErrValueTooWide
	}
	return width, nil
}

// allocate returns a zero-initialized word array sized to hold headerWords
// header words plus dataBits data bits, rounding the data region up to a
// whole number of words. All arithmetic is 64-bit so that a pathological
// combination of n and bit width is caught as ErrCapacityExceeded instead of
// silently wrapping the native int domain.
func allocate(headerWords int, dataBits int64) ([]uint32, error) {
	if dataBits < 0 {
		return nil, ErrCapacityExceeded
	}
	totalBits := int64(headerWords)*32 + dataBits
	words := (totalBits + 31) / 32
	if words > int64(math.MaxInt) || words < 0 {
		return nil, ErrCapacityExceeded
	}
	return make([]uint32, int(words)), nil
}

// checkDecompressArgs validates the common Decompress preconditions shared by
// all three codecs and returns the header-recorded element count.
func checkDecompressArgs(packed []uint32, dst []int64) (int, error) {
	n, err := N(packed)
	if err != nil {
		return 0, err
	}
	if len(dst) < n {
		return 0, ErrDestinationTooSmall
	}
	return n, nil
}

// checkGetArgs validates the common Get preconditions shared by all three
// codecs and returns the header-recorded element count.
func checkGetArgs(packed []uint32, i int) (int, error) {
	n, err := N(packed)
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= n {
		return 0, ErrIndexOutOfRange
	}
	return n, nil
}

// codecFactories maps each Tag to a constructor.
var codecFactories = map[Tag]func() Codec{
	TagContiguous:  func() Codec { return contiguousCodec{} },
	TagWordAligned: func() Codec { return wordAlignedCodec{} },
	TagOutlier:     func() Codec { return outlierCodec{} },
}

// New returns the Codec implementation for tag.
func New(tag Tag) (Codec, error) {
	factory, ok := codecFactories[tag]
	if !ok {
		return nil, ErrUnknownCodec
	}
	return factory(), nil
}

// FromBuffer inspects packed's header and returns the Codec that produced it,
// for a caller holding a raw buffer without remembering which codec wrote it.
func FromBuffer(packed []uint32) (Codec, error) {
	tag, err := CodecTag(packed)
	if err != nil {
		return nil, err
	}
	return New(tag)
}

// Compress is a convenience wrapper equivalent to New(tag).Compress(src).
func Compress(tag Tag, src []int64) ([]uint32, error) {
	c, err := New(tag)
	if err != nil {
		return nil, err
	}
	return c.Compress(src)
}

// Decompress is a convenience wrapper that dispatches on packed's own header
// tag, equivalent to FromBuffer(packed).Decompress(packed, dst).
func Decompress(packed []uint32, dst []int64) error {
	c, err := FromBuffer(packed)
	if err != nil {
		return err
	}
	return c.Decompress(packed, dst)
}

// Get is a convenience wrapper that dispatches on packed's own header tag,
// equivalent to FromBuffer(packed).Get(packed, i).
func Get(packed []uint32, i int) (int64, error) {
	c, err := FromBuffer(packed)
	if err != nil {
		return 0, err
	}
	return c.Get(packed, i)
}

// CodecTagName is a diagnostic-only helper with no effect on correctness.
func CodecTagName(tag Tag) string {
	return tag.String()
}
