package filter_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rag-nar1/sized-bloom/filter"
)

var testData = [][]byte{
	[]byte("RAGNAR"),
	[]byte("New value 1"),
	[]byte("New value 2 but very new"),
	[]byte("New value 3 but this one has some money"),
	{},
}

func TestHashFamilies(t *testing.T) {
	const m, k = 1000, 7
	for _, name := range filter.HashNames() {
		t.Run(name, func(t *testing.T) {
			h, err := filter.LookupHash(name)
			require.NoError(t, err)

			for _, data := range testData {
				h1 := slices.Collect(h(data, m, k))
				h2 := slices.Collect(h(data, m, k))

				require.Len(t, h1, k)
				require.Equal(t, h1, h2)
				for _, pos := range h1 {
					require.Less(t, pos, uint64(m))
				}
			}
		})
	}
}

func TestHashStopsEarly(t *testing.T) {
	for _, name := range filter.HashNames() {
		h, err := filter.LookupHash(name)
		require.NoError(t, err)

		seen := 0
		for range h([]byte("RAGNAR"), 1000, 10) {
			seen++
			if seen == 3 {
				break
			}
		}
		require.Equal(t, 3, seen, name)
	}
}

func TestSeededMurmur3Seeds(t *testing.T) {
	// probe i must not depend on k
	short := slices.Collect(filter.SeededMurmur3([]byte("hello"), 1<<20, 2))
	long := slices.Collect(filter.SeededMurmur3([]byte("hello"), 1<<20, 6))
	require.Equal(t, short, long[:2])
	require.NotEqual(t, long[0], long[1])
}

func TestDoubleHash(t *testing.T) {
	// an even h2 is bumped to odd
	got := slices.Collect(filter.DoubleHash(3, 0, 10, 4))
	require.Equal(t, []uint64{3, 4, 5, 6}, got)

	got = slices.Collect(filter.DoubleHash(3, 5, 10, 3))
	require.Equal(t, []uint64{3, 8, 3}, got)
}

func TestWidthOne(t *testing.T) {
	for _, name := range filter.HashNames() {
		h, err := filter.LookupHash(name)
		require.NoError(t, err)
		for pos := range h([]byte("x"), 1, 5) {
			require.Equal(t, uint64(0), pos)
		}
	}
}

func TestLookupHash_Unknown(t *testing.T) {
	_, err := filter.LookupHash("sha1")
	require.ErrorIs(t, err, filter.ErrUnknownHash)
}
