package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruncUint64(t *testing.T) {
	tests := []struct {
		in   float64
		want uint64
		ok   bool
	}{
		{0.9, 0, true},
		{-3, 0, true},
		{math.NaN(), 0, true},
		{9585.99, 9585, true},
		{twoTo64 / 2, 1 << 63, true},
		{twoTo64, 0, false},
		{math.Inf(1), 0, false},
	}
	for _, tt := range tests {
		got, ok := TruncUint64(tt.in)
		require.Equal(t, tt.ok, ok, "in %g", tt.in)
		require.Equal(t, tt.want, got, "in %g", tt.in)
	}
}

func TestTruncUint8(t *testing.T) {
	got, ok := TruncUint8(6.64)
	require.True(t, ok)
	require.Equal(t, uint8(6), got)

	got, ok = TruncUint8(255.99)
	require.True(t, ok)
	require.Equal(t, uint8(255), got)

	_, ok = TruncUint8(256)
	require.False(t, ok)

	got, ok = TruncUint8(0.5)
	require.True(t, ok)
	require.Equal(t, uint8(0), got)
}
