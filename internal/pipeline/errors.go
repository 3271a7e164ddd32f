package pipeline

import "fmt"

// ParseError indicates a date or time token that does not match the source
// grammar, or a first row that carries no date token at all.
type ParseError struct {
	Kind  string // "date" or "time"
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse %s token %q: %v", e.Kind, e.Token, e.Err)
	}
	return fmt.Sprintf("failed to parse %s token %q", e.Kind, e.Token)
}

func (e *ParseError) Unwrap() error { return e.Err }

// InsufficientDataError indicates that a computation received fewer data
// points than it requires.
type InsufficientDataError struct {
	Need int
	Got  int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: need %d points, got %d", e.Need, e.Got)
}

// DataError indicates degenerate input data, such as a zero-valued
// denominator, that would otherwise produce a meaningless result.
type DataError struct {
	Reason string
}

func (e *DataError) Error() string {
	return "invalid data: " + e.Reason
}
