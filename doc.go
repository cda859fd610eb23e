// Package bitpack compresses a contiguous sequence of non-negative integers
// into a self-describing packed buffer of 32-bit words.
//
// Three codecs trade density against random-access simplicity:
//
//   - Contiguous: fields are packed back-to-back at a fixed width; fields may
//     straddle a word boundary.
//   - WordAligned: fields never straddle a word boundary, at the cost of
//     padding the unused high bits of each word.
//   - Outlier: most values are stored inline at a small width; values that
//     don't fit are segregated into a trailing overflow region addressed by
//     index, with the inline width chosen to minimize total size.
//
// Every codec supports full-array Compress/Decompress and O(1) random access
// via Get without materializing any other element. A packed buffer is
// self-describing: its header carries the element count, the codec tag, and
// the bit widths needed to read it back, so Decompress and Get only need the
// buffer itself.
//
// The library is stateless and holds no internal state beyond the lifetime of
// a single call; a packed buffer is safe for concurrent readers once
// produced, but the library performs no locking of its own.
package bitpack
