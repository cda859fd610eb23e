package bitpack

// View is a zero-decode random-access handle over a packed buffer: it
// validates the header and resolves the codec once at Load, caching only the
// element count and the codec, and then answers Get/Next without touching
// any element it isn't asked for. Each Get, Next and Decode call goes
// through the codec's own entry point, which checks the header and reads the
// widths from it again.
//
// A View is not safe for concurrent use; create one View per goroutine over
// the same underlying buffer if concurrent access is needed.
type View struct {
	packed []uint32
	codec  Codec
	n      int
	pos    int
	loaded bool
}

// NewView creates an empty View that must be loaded with Load before use.
func NewView() *View {
	return &View{}
}

// Load decodes packed's header and readies the View for random access. It
// can be called again to rebind the View to a different buffer.
func (v *View) Load(packed []uint32) error {
	codec, err := FromBuffer(packed)
	if err != nil {
		return err
	}
	n, err := N(packed)
	if err != nil {
		return err
	}
	v.packed = packed
	v.codec = codec
	v.n = n
	v.pos = 0
	v.loaded = true
	return nil
}

// IsLoaded reports whether Load has been called successfully.
func (v *View) IsLoaded() bool {
	return v.loaded
}

// Len returns the element count of the loaded buffer.
func (v *View) Len() int {
	return v.n
}

// Codec returns the tag of the loaded buffer's codec.
func (v *View) Codec() Tag {
	return v.codec.Tag()
}

// Get returns the element at logical index i.
func (v *View) Get(i int) (int64, error) {
	if !v.loaded {
		return 0, ErrNotLoaded
	}
	return v.codec.Get(v.packed, i)
}

// Pos returns the current position for sequential iteration via Next.
func (v *View) Pos() int {
	return v.pos
}

// Reset rewinds sequential iteration to the beginning.
func (v *View) Reset() {
	v.pos = 0
}

// Next returns the next value in sequence and its position, advancing pos.
// ok is false once iteration is exhausted or the View isn't loaded.
func (v *View) Next() (value int64, pos int, ok bool) {
	if !v.loaded || v.pos >= v.n {
		return 0, 0, false
	}
	val, err := v.codec.Get(v.packed, v.pos)
	if err != nil {
		return 0, 0, false
	}
	pos = v.pos
	v.pos++
	return val, pos, true
}

// Decode copies every element into dst, growing it if needed, and returns the
// resulting slice. It is equivalent to package-level Decompress but reuses
// the codec resolved at Load instead of looking it up from the header.
func (v *View) Decode(dst []int64) ([]int64, error) {
	if !v.loaded {
		return nil, ErrNotLoaded
	}
	dst = EnsureCapacity(dst, v.n)
	if err := v.codec.Decompress(v.packed, dst); err != nil {
		return nil, err
	}
	return dst, nil
}
