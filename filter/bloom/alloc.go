package bloom

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
)

// Allocator supplies the bit array backing a filter.
type Allocator interface {
	Alloc(bits uint64) (*bitset.BitSet, error)
}

// HeapAllocator allocates bit arrays on the Go heap.
// A non-zero MaxBytes caps the size of a single allocation.
type HeapAllocator struct {
	MaxBytes uint64
}

func (a HeapAllocator) Alloc(bits uint64) (*bitset.BitSet, error) {
	need := bytesFor(bits)
	if a.MaxBytes > 0 && need > a.MaxBytes {
		return nil, fmt.Errorf("%w: %d bytes requested, limit %d", ErrOutOfMemory, need, a.MaxBytes)
	}
	if bits > uint64(math.MaxUint) {
		return nil, fmt.Errorf("%w: %d bits exceeds platform word range", ErrOutOfMemory, bits)
	}
	// bitset.New recovers from a failed make and hands back an empty set.
	b := bitset.New(uint(bits))
	if uint64(b.Len()) != bits {
		return nil, fmt.Errorf("%w: %d bytes requested", ErrOutOfMemory, need)
	}
	return b, nil
}

// bytesFor returns the bytes backing bits, rounded up to whole 64 bit words.
func bytesFor(bits uint64) uint64 {
	return (bits/64 + min(bits%64, 1)) * 8
}
