package bitpack

import "errors"

// Sentinel errors returned by this package. Callers should match with
// errors.Is; wrapped messages add positional detail via fmt.Errorf("%w: ...").
var (
	// ErrNilBuffer is returned when the packed buffer argument is nil.
	ErrNilBuffer = errors.New("bitpack: buffer is nil")

	// ErrNegativeValue is returned when an input sequence contains a value < 0.
	ErrNegativeValue = errors.New("bitpack: negative value not supported")

	// ErrValueTooWide is returned when an input value needs more than 31 bits.
	ErrValueTooWide = errors.New("bitpack: value needs more than 31 bits")

	// ErrDestinationTooSmall is returned when a decompression destination has
	// a length smaller than n.
	ErrDestinationTooSmall = errors.New("bitpack: destination too small")

	// ErrIndexOutOfRange is returned by Get when the index is outside [0, n).
	ErrIndexOutOfRange = errors.New("bitpack: index out of range")

	// ErrBadMagic is returned when a packed buffer's first word doesn't match
	// the expected magic sentinel.
	ErrBadMagic = errors.New("bitpack: bad magic")

	// ErrUnknownCodec is returned when a header's codec tag doesn't name a
	// known codec.
	ErrUnknownCodec = errors.New("bitpack: unknown codec tag")

	// ErrCapacityExceeded is returned when a computed word count would
	// overflow the native int domain.
	ErrCapacityExceeded = errors.New("bitpack: capacity exceeded")

	// ErrNotLoaded is returned by View operations performed before Load.
	ErrNotLoaded = errors.New("bitpack: view not loaded")
)
