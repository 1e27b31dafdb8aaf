package bloom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeapAllocator(t *testing.T) {
	b, err := HeapAllocator{}.Alloc(958)
	require.NoError(t, err)
	require.Equal(t, uint(958), b.Len())
	require.Equal(t, uint(0), b.Count())
}

func TestHeapAllocator_Limit(t *testing.T) {
	_, err := HeapAllocator{MaxBytes: 120}.Alloc(958)
	require.NoError(t, err)

	_, err = HeapAllocator{MaxBytes: 119}.Alloc(958)
	require.ErrorIs(t, err, ErrOutOfMemory)
}

func TestBytesFor(t *testing.T) {
	require.Equal(t, uint64(8), bytesFor(1))
	require.Equal(t, uint64(8), bytesFor(64))
	require.Equal(t, uint64(16), bytesFor(65))
	require.Equal(t, uint64(120), bytesFor(958))
}
