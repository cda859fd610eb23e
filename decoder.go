package bitpack

// EnsureCapacity returns dst resized to length n, reusing its backing array
// when cap(dst) >= n and allocating a fresh slice only otherwise, so repeated
// calls in a hot loop don't reallocate a destination slice that already has
// enough room.
func EnsureCapacity(dst []int64, n int) []int64 {
	if cap(dst) >= n {
		return dst[:n]
	}
	return make([]int64, n)
}
