package filter

import "math"

// twoTo64 is 2^64, the first float64 value that does not fit in a uint64.
const twoTo64 = float64(1<<63) * 2

// TruncUint64 truncates v toward zero. Non-positive and NaN values become 0.
// ok is false when v does not fit in a uint64.
func TruncUint64(v float64) (u uint64, ok bool) {
	if math.IsNaN(v) || v <= 0 {
		return 0, true
	}
	if v >= twoTo64 {
		return 0, false
	}
	return uint64(v), true
}

// TruncUint8 truncates v toward zero. Non-positive and NaN values become 0.
// ok is false when v does not fit in a uint8.
func TruncUint8(v float64) (u uint8, ok bool) {
	if math.IsNaN(v) || v <= 0 {
		return 0, true
	}
	if v >= math.MaxUint8+1 {
		return 0, false
	}
	return uint8(v), true
}
