package pipeline

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PercentChange computes the percentage change between the two most recent
// closes in an ordered trailing window (oldest first, most recent last):
// (last - secondToLast) / secondToLast * 100.
//
// Fewer than 2 closes fails with *InsufficientDataError. A zero-valued
// second-to-last close fails with *DataError rather than producing a
// division by zero.
func PercentChange(closes []decimal.Decimal) (float64, error) {
	if len(closes) < 2 {
		return 0, &InsufficientDataError{Need: 2, Got: len(closes)}
	}

	last := closes[len(closes)-1]
	secondToLast := closes[len(closes)-2]
	if secondToLast.IsZero() {
		return 0, &DataError{Reason: "second-to-last close is zero; percent change is undefined"}
	}

	change := last.Sub(secondToLast).Div(secondToLast).Mul(hundred)
	return change.InexactFloat64(), nil
}
