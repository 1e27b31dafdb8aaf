package filter

import (
	"errors"
	"fmt"
	"iter"

	"github.com/dgryski/go-metro"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
	"github.com/zhenjl/cityhash"
)

// Hash yields k bit positions in [0, m) for data.
// The same (data, m, k) must always yield the same positions in the same order.
type Hash func(data []byte, m uint64, k uint8) iter.Seq[uint64]

var ErrUnknownHash = errors.New("filter: unknown hash family")

// SeededMurmur3 evaluates one 32-bit murmur3 per probe, seeded with the probe index,
// and reduces it with value % m. Only the first 2^32 bits of a wider filter are reachable.
func SeededMurmur3(data []byte, m uint64, k uint8) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for i := uint32(0); i < uint32(k); i++ {
			if !yield(uint64(murmur3.Sum32WithSeed(data, i)) % m) {
				return
			}
		}
	}
}

// MetroDoubleHash splits a single metro hash into h1 and h2 and probes h1 + i*h2.
func MetroDoubleHash(data []byte, m uint64, k uint8) iter.Seq[uint64] {
	hash := metro.Hash64(data, 0)
	return DoubleHash(hash&0xffffffff, hash>>32, m, k)
}

// XXH3DoubleHash uses the two halves of a 128 bit xxh3 as h1 and h2.
func XXH3DoubleHash(data []byte, m uint64, k uint8) iter.Seq[uint64] {
	hash := xxh3.Hash128(data)
	return DoubleHash(hash.Lo, hash.Hi, m, k)
}

// CityDoubleHash splits a single cityhash64 into h1 and h2 and probes h1 + i*h2.
func CityDoubleHash(data []byte, m uint64, k uint8) iter.Seq[uint64] {
	hash := cityhash.CityHash64(data, uint32(len(data)))
	return DoubleHash(hash&0xffffffff, hash>>32, m, k)
}

// DoubleHash yields (h1 + i*h2) % m for i in [0, k).
// h2 is forced odd so consecutive probes never collapse onto h1.
func DoubleHash(h1, h2, m uint64, k uint8) iter.Seq[uint64] {
	h2 |= 1
	return func(yield func(uint64) bool) {
		for i := uint64(0); i < uint64(k); i++ {
			if !yield((h1 + i*h2) % m) {
				return
			}
		}
	}
}

var hashes = map[string]Hash{
	"murmur3": SeededMurmur3,
	"metro":   MetroDoubleHash,
	"xxh3":    XXH3DoubleHash,
	"city":    CityDoubleHash,
}

// LookupHash returns the hash family registered under name.
func LookupHash(name string) (Hash, error) {
	h, ok := hashes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHash, name)
	}
	return h, nil
}

// HashNames lists the registered hash family names.
func HashNames() []string {
	return []string{"murmur3", "metro", "xxh3", "city"}
}
