package bloom

import (
	"fmt"
	"math"

	"github.com/rag-nar1/sized-bloom/filter"
)

// OptimalWidth returns m = -n ln(p) / ln(2)^2, truncated toward zero and clamped to at least 1.
func OptimalWidth(maxItems uint64, fpRate float64) (uint64, error) {
	if err := checkParams(fpRate, maxItems); err != nil {
		return 0, err
	}
	raw := -float64(maxItems) * math.Log(fpRate) / (math.Ln2 * math.Ln2)
	m, ok := filter.TruncUint64(raw)
	if !ok {
		return 0, fmt.Errorf("%w: %g bits for %d items at rate %g", ErrBitWidthOverflow, raw, maxItems, fpRate)
	}
	return max(m, 1), nil
}

// OptimalHashCount returns k = m ln(2) / n, truncated toward zero and clamped to at least 1.
func OptimalHashCount(width, maxItems uint64) (uint8, error) {
	if maxItems == 0 {
		return 0, fmt.Errorf("%w: max items must be positive", ErrInvalidParameter)
	}
	raw := float64(width) * math.Ln2 / float64(maxItems)
	k, ok := filter.TruncUint8(raw)
	if !ok {
		return 0, fmt.Errorf("%w: derived %g, limit %d", ErrTooManyHashFunctions, raw, math.MaxUint8)
	}
	return max(k, 1), nil
}

func checkParams(fpRate float64, maxItems uint64) error {
	// written so that NaN fails too
	if !(fpRate > 0 && fpRate < 1) {
		return fmt.Errorf("%w: false positive rate %g not in (0, 1)", ErrInvalidParameter, fpRate)
	}
	if maxItems == 0 {
		return fmt.Errorf("%w: max items must be positive", ErrInvalidParameter)
	}
	return nil
}
