package pipeline

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentChange(t *testing.T) {
	closes := func(values ...float64) []decimal.Decimal {
		out := make([]decimal.Decimal, len(values))
		for i, v := range values {
			out[i] = decimal.NewFromFloat(v)
		}
		return out
	}

	t.Run("computes change between two most recent closes", func(t *testing.T) {
		change, err := PercentChange(closes(100.0, 105.0))
		require.NoError(t, err)
		assert.InDelta(t, 5.0, change, 1e-9)
	})

	t.Run("only the last two closes matter in a longer window", func(t *testing.T) {
		change, err := PercentChange(closes(90.0, 95.0, 200.0, 100.0))
		require.NoError(t, err)
		assert.InDelta(t, -50.0, change, 1e-9)
	})

	t.Run("negative change for a falling close", func(t *testing.T) {
		change, err := PercentChange(closes(105.0, 100.0))
		require.NoError(t, err)
		assert.InDelta(t, -4.761904762, change, 1e-6)
	})

	t.Run("fewer than two closes fails with InsufficientDataError", func(t *testing.T) {
		_, err := PercentChange(closes(100.0))
		var insufficientErr *InsufficientDataError
		require.ErrorAs(t, err, &insufficientErr)
		assert.Equal(t, 2, insufficientErr.Need)
		assert.Equal(t, 1, insufficientErr.Got)

		_, err = PercentChange(nil)
		require.ErrorAs(t, err, &insufficientErr)
		assert.Equal(t, 0, insufficientErr.Got)
	})

	t.Run("zero denominator fails with DataError instead of infinity", func(t *testing.T) {
		_, err := PercentChange(closes(0.0, 5.0))
		var dataErr *DataError
		require.ErrorAs(t, err, &dataErr)
	})
}
