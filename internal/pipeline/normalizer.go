package pipeline

import (
	"errors"
	"strings"
	"time"
)

// Source token layouts: abbreviated month, day, 2-digit year for dates and
// a 12-hour clock with meridiem for times (e.g. "Jan-05-24", "09:30AM").
const (
	dateTokenLayout = "Jan-02-06"
	timeTokenLayout = "3:04PM"
)

// tokenToday is the source's relative date token, matched case-insensitively.
const tokenToday = "today"

// NormalizeTimestamp resolves one (dateToken, timeToken) pair into an
// absolute timestamp. An empty dateToken reuses lastKnown, the date carried
// forward from the nearest preceding row that had one; the literal token
// "today" resolves to referenceDate. The returned carry date is the resolved
// date, to be threaded into the next row's call.
//
// lastKnown is nil only before any row has carried a date token. An empty
// dateToken in that state means the source's first row omitted its date,
// which has no defined resolution; it fails with a *ParseError rather than
// guessing a default date.
//
// Timestamps are timezone-naive: they carry the exchange's local wall time
// and are constructed in UTC purely as a fixed-offset convention.
func NormalizeTimestamp(dateToken, timeToken string, referenceDate time.Time, lastKnown *time.Time) (time.Time, time.Time, error) {
	var date time.Time
	switch {
	case dateToken == "":
		if lastKnown == nil {
			return time.Time{}, time.Time{}, &ParseError{Kind: "date", Token: "", Err: errFirstRowNoDate}
		}
		date = *lastKnown
	case strings.EqualFold(dateToken, tokenToday):
		date = referenceDate
	default:
		parsed, err := time.Parse(dateTokenLayout, dateToken)
		if err != nil {
			return time.Time{}, time.Time{}, &ParseError{Kind: "date", Token: dateToken, Err: err}
		}
		date = parsed
	}

	clock, err := time.Parse(timeTokenLayout, timeToken)
	if err != nil {
		return time.Time{}, time.Time{}, &ParseError{Kind: "time", Token: timeToken, Err: err}
	}

	ts := time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC)
	carry := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return ts, carry, nil
}

var errFirstRowNoDate = errors.New("first row carries no date token; cannot resolve a carry-forward date")
