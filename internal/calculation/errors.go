package calculation

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors matched with errors.Is.
var (
	// ErrInvalidDate is matched by every *ParseError.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidLine is matched by every *FormatError.
	ErrInvalidLine = errors.New("invalid line")
	// ErrNoInput is returned when a batch holds no non-blank line.
	ErrNoInput = errors.WithHint(errors.New("no date pairs in input"),
		"enter one pair per line, e.g. 1370/01/10,1375/02/15")
)

const dateFormatHint = "dates must be written as YYYY/MM/DD, e.g. 1370/01/10"

// Side identifies which date of a pair failed to parse.
type Side int

const (
	SideNone Side = iota
	SideFirst
	SideSecond
)

func (s Side) String() string {
	switch s {
	case SideFirst:
		return "first"
	case SideSecond:
		return "second"
	default:
		return ""
	}
}

// ParseError reports a date string that is not a valid YYYY/MM/DD Jalali date.
type ParseError struct {
	Text   string
	Side   Side
	Reason string
	cause  error
}

func newParseError(text, reason string, cause error) *ParseError {
	if cause == nil {
		cause = errors.New(reason)
	}
	return &ParseError{Text: text, Reason: reason, cause: errors.WithHint(cause, dateFormatHint)}
}

func (e *ParseError) Error() string {
	if e.Side != SideNone {
		return fmt.Sprintf("%s date %q: %s", e.Side, e.Text, e.Reason)
	}
	return fmt.Sprintf("invalid date %q: %s", e.Text, e.Reason)
}

// Unwrap exposes the underlying cause (a *jalali.RangeError for calendar violations).
func (e *ParseError) Unwrap() error { return e.cause }

// Is makes every ParseError match ErrInvalidDate.
func (e *ParseError) Is(target error) bool { return target == ErrInvalidDate }

// withSide returns a copy of a *ParseError tagged with the failing side.
func withSide(err error, side Side) error {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return err
	}
	tagged := *pe
	tagged.Side = side
	return &tagged
}

// FormatError reports an input line that does not hold exactly two fields.
type FormatError struct {
	Line      string
	Fields    int
	Separator string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %q: expected 2 dates separated by %q, got %d field(s)", e.Line, e.Separator, e.Fields)
}

// Is makes every FormatError match ErrInvalidLine.
func (e *FormatError) Is(target error) bool { return target == ErrInvalidLine }
