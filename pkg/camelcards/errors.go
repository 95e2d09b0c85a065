package camelcards

import (
	"errors"
	"fmt"
)

// ErrInvalidBid is returned when a bid is missing, not a number, or negative
var ErrInvalidBid = errors.New("invalid bid")

// ErrInvalidLine is returned when a line is not a hand followed by a bid
var ErrInvalidLine = errors.New("expected a hand and a bid separated by a space")

// BidError is an error on the bid of a hand
type BidError struct {
	Bid string
	Err error
}

func (b BidError) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("%s %q: %v", ErrInvalidBid, b.Bid, b.Err)
	}

	return fmt.Sprintf("%s %q", ErrInvalidBid, b.Bid)
}

// Unwrap returns the underlying parse error
func (b BidError) Unwrap() error {
	return b.Err
}

// Is allows errors.Is(err, ErrInvalidBid)
func (b BidError) Is(target error) bool {
	return target == ErrInvalidBid
}

// LineError reports the line of the input that could not be parsed
type LineError struct {
	Line int
	Err  error
}

func (l LineError) Error() string {
	return fmt.Sprintf("line %d: %v", l.Line, l.Err)
}

// Unwrap returns the error for the line
func (l LineError) Unwrap() error {
	return l.Err
}
