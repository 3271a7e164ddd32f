package pipeline

import (
	"fmt"
	"time"

	"github.com/omshetye/Stock-sentiment-analytics/internal/models"
)

// BuildRecords assembles one HeadlineRecord per raw row, resolving each
// row's timestamp. The carry-forward date is threaded through as a local
// accumulator so concurrent runs never interfere.
//
// Input order is preserved: the source presents rows reverse-chronologically
// within day groups, and callers that need chronological order must sort by
// Timestamp themselves.
func BuildRecords(rows []models.RawNewsRow, referenceDate time.Time) ([]models.HeadlineRecord, error) {
	records := make([]models.HeadlineRecord, 0, len(rows))

	var lastKnown *time.Time
	for i, row := range rows {
		ts, carry, err := NormalizeTimestamp(row.DateToken, row.TimeToken, referenceDate, lastKnown)
		if err != nil {
			return nil, fmt.Errorf("failed to normalize row %d: %w", i, err)
		}
		lastKnown = &carry

		records = append(records, models.HeadlineRecord{
			Timestamp: ts,
			Headline:  row.Headline,
			Link:      row.Link,
		})
	}

	return records, nil
}
