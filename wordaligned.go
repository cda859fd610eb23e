package bitpack

// wordAlignedCodec implements Tag 1: each word holds as many whole k-bit
// fields as fit (elementsPerWord), padding any unused high bits with zero. No
// field ever straddles a word boundary.
type wordAlignedCodec struct{}

func (wordAlignedCodec) Tag() Tag { return TagWordAligned }

// elementsPerWord returns floor(32/k), clamped to at least 1.
func elementsPerWord(k int) int {
	e := 32 / k
	if e < 1 {
		return 1
	}
	return e
}

func wordsNeeded(n, elementsPerWord int) int {
	return (n + elementsPerWord - 1) / elementsPerWord
}

func (wordAlignedCodec) Compress(src []int64) ([]uint32, error) {
	k, err := minimumWidth(src)
	if err != nil {
		return nil, err
	}
	n := len(src)
	e := elementsPerWord(k)
	dataWords := wordsNeeded(n, e)
	out, err := allocate(HeaderWords, int64(dataWords)*32)
	if err != nil {
		return nil, err
	}
	writeHeader(out, n, TagWordAligned, k, k, 0)

	for i, v := range src {
		wordIdx := HeaderWords + i/e
		bitOffset := (i % e) * k
		WriteBitsInWord(out, wordIdx, bitOffset, k, uint32(v))
	}
	return out, nil
}

func (wordAlignedCodec) Decompress(packed []uint32, dst []int64) error {
	n, err := checkDecompressArgs(packed, dst)
	if err != nil {
		return err
	}
	k, err := K(packed)
	if err != nil {
		return err
	}
	e := elementsPerWord(k)
	for i := 0; i < n; i++ {
		wordIdx := HeaderWords + i/e
		bitOffset := (i % e) * k
		dst[i] = int64(ReadBitsInWord(packed, wordIdx, bitOffset, k))
	}
	return nil
}

func (wordAlignedCodec) Get(packed []uint32, i int) (int64, error) {
	if _, err := checkGetArgs(packed, i); err != nil {
		return 0, err
	}
	k, err := K(packed)
	if err != nil {
		return 0, err
	}
	e := elementsPerWord(k)
	wordIdx := HeaderWords + i/e
	bitOffset := (i % e) * k
	return int64(ReadBitsInWord(packed, wordIdx, bitOffset, k)), nil
}
