package bitpack

// contiguousCodec implements Tag 0: n fields of width k packed back-to-back,
// straddling word boundaries freely.
type contiguousCodec struct{}

func (contiguousCodec) Tag() Tag { return TagContiguous }

func (contiguousCodec) Compress(src []int64) ([]uint32, error) {
	k, err := minimumWidth(src)
	if err != nil {
		return nil, err
	}
	n := len(src)
	out, err := allocate(HeaderWords, int64(n)*int64(k))
	if err != nil {
		return nil, err
	}
	writeHeader(out, n, TagContiguous, k, k, 0)

	base := HeaderWords * 32
	for i, v := range src {
		WriteBits(out, base+i*k, k, uint32(v))
	}
	return out, nil
}

func (contiguousCodec) Decompress(packed []uint32, dst []int64) error {
	n, err := checkDecompressArgs(packed, dst)
	if err != nil {
		return err
	}
	k, err := K(packed)
	if err != nil {
		return err
	}
	base := HeaderWords * 32
	for i := 0; i < n; i++ {
		dst[i] = int64(ReadBits(packed, base+i*k, k))
	}
	return nil
}

func (contiguousCodec) Get(packed []uint32, i int) (int64, error) {
	if _, err := checkGetArgs(packed, i); err != nil {
		return 0, err
	}
	k, err := K(packed)
	if err != nil {
		return 0, err
	}
	return int64(ReadBits(packed, HeaderWords*32+i*k, k)), nil
}
