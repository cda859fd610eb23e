package bitpack

import "math/bits"

// outlierCodec implements Tag 2: most values are stored inline in a
// bpe-bit main entry whose top bit is a flag; values that don't fit in k
// inline bits are segregated into a trailing overflow region addressed by
// index. k (and therefore bpe and the overflow region's size) is chosen to
// minimize total size.
type outlierCodec struct{}

func (outlierCodec) Tag() Tag { return TagOutlier }

// widthOf returns the bit width of v: 1 for 0, otherwise bits.Len32(v).
func widthOf(v uint32) int {
	if v == 0 {
		return 1
	}
	return bits.Len32(v)
}

// fitsInline reports whether v fits in k bits without overflowing the native
// comparison at k==31. Widening to 64 bits before comparing avoids the
// 1<<k-1 overflow hazard entirely instead of special-casing k==31.
func fitsInline(v int64, k int) bool {
	return bits.Len64(uint64(v)) <= k
}

// selectOutlierWidth picks (k, bitsPerElement, bitsPerOverflow) minimizing
// n*bitsPerElement + nOverflow(k)*maxBits over k in 1..maxBits, breaking ties
// toward the smaller k. It also returns the resulting overflow count so the
// caller doesn't need to rescan src to size the overflow region.
//
// A single O(n) pass builds a histogram of per-value bit widths; candidates
// are then scanned using a cumulative "width greater than k" suffix sum
// instead of rescanning src once per candidate.
func selectOutlierWidth(src []int64) (k, bitsPerElement, bitsPerOverflow, nOverflow int, err error) {
	n := len(src)
	if n == 0 {
		return 1, 1, 0, 0, nil
	}

	var freqs [32]int
	maxWidth := 0
	for _, v := range src {
		if v < 0 {
			return 0, 0, 0, 0, ErrNegativeValue
		}
		if v > 0x7FFFFFFF {
			return 0, 0, 0, 0, ErrValueTooWide
		}
		w := widthOf(uint32(v))
		freqs[w]++
		if w > maxWidth {
			maxWidth = w
		}
	}

	// greater[b] = count of values whose width exceeds b, for b in 0..maxWidth.
	var greater [32]int
	for b := maxWidth - 1; b >= 0; b-- {
		greater[b] = greater[b+1] + freqs[b+1]
	}

	bestK := 1
	bestBPE := 0
	bestOverflow := 0
	var bestCost int64 = -1
	for cand := 1; cand <= maxWidth; cand++ {
		candOverflow := greater[cand]
		indexBits := 0
		if candOverflow > 0 {
			indexBits = widthOf(uint32(candOverflow))
		}
		candBPE := 1 + max(cand, indexBits)
		cost := int64(n)*int64(candBPE) + int64(candOverflow)*int64(maxWidth)
		if bestCost == -1 || cost < bestCost {
			bestCost = cost
			bestK = cand
			bestBPE = candBPE
			bestOverflow = candOverflow
		}
	}
	return bestK, bestBPE, maxWidth, bestOverflow, nil
}

func (outlierCodec) Compress(src []int64) ([]uint32, error) {
	n := len(src)
	k, bpe, bpo, nOverflow, err := selectOutlierWidth(src)
	if err != nil {
		return nil, err
	}

	dataBits := int64(n)*int64(bpe) + int64(nOverflow)*int64(bpo)
	out, err := allocate(HeaderWords, dataBits)
	if err != nil {
		return nil, err
	}
	writeHeader(out, n, TagOutlier, k, bpe, bpo)

	base := HeaderWords * 32
	overflowBase := base + n*bpe
	flagBit := uint32(1) << (bpe - 1)
	idxMask := maskFor(bpe - 1)

	overflowIdx := 0
	for i, v := range src {
		if fitsInline(v, k) {
			WriteBits(out, base+i*bpe, bpe, uint32(v)&idxMask)
			continue
		}
		WriteBits(out, overflowBase+overflowIdx*bpo, bpo, uint32(v))
		entry := flagBit | (uint32(overflowIdx) & idxMask)
		WriteBits(out, base+i*bpe, bpe, entry)
		overflowIdx++
	}
	return out, nil
}

func (outlierCodec) Decompress(packed []uint32, dst []int64) error {
	n, err := checkDecompressArgs(packed, dst)
	if err != nil {
		return err
	}
	bpe, err := BitsPerElement(packed)
	if err != nil {
		return err
	}
	bpo, err := BitsPerOverflow(packed)
	if err != nil {
		return err
	}

	base := HeaderWords * 32
	overflowBase := base + n*bpe
	flagBit := uint32(1) << (bpe - 1)
	idxMask := maskFor(bpe - 1)

	for i := 0; i < n; i++ {
		entry := ReadBits(packed, base+i*bpe, bpe)
		if entry&flagBit != 0 {
			idx := int(entry & idxMask)
			dst[i] = int64(ReadBits(packed, overflowBase+idx*bpo, bpo))
		} else {
			dst[i] = int64(entry & idxMask)
		}
	}
	return nil
}

func (outlierCodec) Get(packed []uint32, i int) (int64, error) {
	n, err := checkGetArgs(packed, i)
	if err != nil {
		return 0, err
	}
	bpe, err := BitsPerElement(packed)
	if err != nil {
		return 0, err
	}
	bpo, err := BitsPerOverflow(packed)
	if err != nil {
		return 0, err
	}

	base := HeaderWords * 32
	flagBit := uint32(1) << (bpe - 1)
	idxMask := maskFor(bpe - 1)

	entry := ReadBits(packed, base+i*bpe, bpe)
	if entry&flagBit == 0 {
		return int64(entry & idxMask), nil
	}
	idx := int(entry & idxMask)
	overflowBase := base + n*bpe
	return int64(ReadBits(packed, overflowBase+idx*bpo, bpo)), nil
}
