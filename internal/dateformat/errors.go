package dateformat

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyPattern             = errors.New("please enter a date format")
	ErrSuffixPositionOutOfRange = errors.New("ordinal day suffix position exceeds format length")
	ErrReservedCharacter        = errors.New("curly braces are not permitted")
	ErrInvalidPattern           = errors.New("invalid date format")
)

// PatternError ties a failure condition to the pattern and rune offset
// that caused it.
type PatternError struct {
	Pattern string
	Offset  int
	Detail  string
	Err     error
}

func (e *PatternError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("dateformat: %v (pattern %q, offset %d)", e.Err, e.Pattern, e.Offset)
	}

	return fmt.Sprintf("dateformat: %v: %s (pattern %q, offset %d)", e.Err, e.Detail, e.Pattern, e.Offset)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Condition names the failure condition err belongs to, or "" when err is
// not a formatter failure.
func Condition(err error) string {
	switch {
	case errors.Is(err, ErrEmptyPattern):
		return "EmptyPattern"
	case errors.Is(err, ErrSuffixPositionOutOfRange):
		return "SuffixPositionOutOfRange"
	case errors.Is(err, ErrReservedCharacter):
		return "ReservedCharacter"
	case errors.Is(err, ErrInvalidPattern):
		return "InvalidPattern"
	default:
		return ""
	}
}

func invalid(pattern string, offset int, detail string) error {
	return &PatternError{
		Pattern: pattern,
		Offset:  offset,
		Detail:  detail,
		Err:     ErrInvalidPattern,
	}
}
