package bloom

import "errors"

var (
	// ErrInvalidParameter is returned for a false positive rate outside (0, 1) or a zero capacity.
	ErrInvalidParameter = errors.New("bloom: invalid parameter")

	// ErrTooManyHashFunctions is returned when the derived hash count does not fit in a uint8.
	ErrTooManyHashFunctions = errors.New("bloom: too many hash functions")

	// ErrBitWidthOverflow is returned when the derived width does not fit in a uint64.
	ErrBitWidthOverflow = errors.New("bloom: bit width overflows supported range")

	// ErrOutOfMemory is returned when the bit array cannot be allocated.
	ErrOutOfMemory = errors.New("bloom: out of memory")
)
