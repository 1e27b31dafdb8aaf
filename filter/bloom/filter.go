// Package bloom implements a Bloom filter sized from an expected item count and a target
// false positive rate.
//
// A BloomFilter is not safe for concurrent use. Insert mutates the bit array; callers
// sharing a filter across goroutines must serialize Insert against every other call.
package bloom

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/rag-nar1/sized-bloom/filter"
)

type BloomFilter struct {
	fpRate   float64
	maxItems uint64

	width     uint64 // size of bit-array
	hashCount uint8  // number of hash-functions
	items     uint64 // Insert calls, duplicates included

	bits *bitset.BitSet // the filter actual storage
	hash filter.Hash
}

var _ filter.Filter = (*BloomFilter)(nil)

// New sizes a filter for maxItems items at fpRate and allocates its bit array.
func New(fpRate float64, maxItems uint64, opts ...Option) (*BloomFilter, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.hash == nil || o.alloc == nil {
		return nil, fmt.Errorf("%w: nil hash or allocator", ErrInvalidParameter)
	}

	m, err := OptimalWidth(maxItems, fpRate)
	if err != nil {
		return nil, err
	}
	k, err := OptimalHashCount(m, maxItems)
	if err != nil {
		return nil, err
	}
	bits, err := o.alloc.Alloc(m)
	if err != nil {
		return nil, fmt.Errorf("allocating %d bits: %w", m, err)
	}

	o.log.V(1).Info("sized bloom filter",
		"maxItems", maxItems, "falsePositiveRate", fpRate,
		"width", m, "hashCount", k, "bytes", bytesFor(m))
	if o.hash32 && m > math.MaxUint32 {
		o.log.Info("bits above 2^32 are unreachable with the default 32 bit hash; use WithHash with a double hashing family",
			"width", m, "reachableBits", uint64(math.MaxUint32)+1)
	}

	return &BloomFilter{
		fpRate:    fpRate,
		maxItems:  maxItems,
		width:     m,
		hashCount: k,
		bits:      bits,
		hash:      o.hash,
	}, nil
}

func (bf *BloomFilter) Insert(data []byte) {
	for idx := range bf.hash(data, bf.width, bf.hashCount) {
		bf.bits.Set(uint(idx))
	}
	bf.items++
}

// Contains reports whether data may have been inserted. A false result is always correct.
func (bf *BloomFilter) Contains(data []byte) bool {
	for idx := range bf.hash(data, bf.width, bf.hashCount) {
		if !bf.bits.Test(uint(idx)) {
			return false
		}
	}
	return true
}

// Positions returns the bit positions data maps to, in probe order.
func (bf *BloomFilter) Positions(data []byte) []uint64 {
	positions := make([]uint64, 0, bf.hashCount)
	for idx := range bf.hash(data, bf.width, bf.hashCount) {
		positions = append(positions, idx)
	}
	return positions
}

func (bf *BloomFilter) Width() uint64              { return bf.width }
func (bf *BloomFilter) HashCount() uint8           { return bf.hashCount }
func (bf *BloomFilter) ItemCount() uint64          { return bf.items }
func (bf *BloomFilter) MaxItems() uint64           { return bf.maxItems }
func (bf *BloomFilter) FalsePositiveRate() float64 { return bf.fpRate }

// SetBits returns the number of bits set in the filter.
func (bf *BloomFilter) SetBits() uint64 {
	return uint64(bf.bits.Count())
}

func (bf *BloomFilter) FillRatio() float64 {
	return float64(bf.SetBits()) / float64(bf.width)
}

// EstimatedFalsePositiveRate returns (1 - e^(-kn/m))^k with n the number of Insert calls.
func (bf *BloomFilter) EstimatedFalsePositiveRate() float64 {
	k := float64(bf.hashCount)
	return math.Pow(1-math.Exp(-k*float64(bf.items)/float64(bf.width)), k)
}
