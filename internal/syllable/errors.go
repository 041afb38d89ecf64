package syllable

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyLine is returned when Parse receives a blank line.
	ErrEmptyLine = errors.New("syllable: empty line")
	// ErrMalformed is returned when a line cannot be read as syllable text plus rules.
	ErrMalformed = errors.New("syllable: malformed line")
)

// ParseError reports the line that failed to parse.
type ParseError struct {
	Line   string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%v: %q", e.Err, e.Line)
	}
	return fmt.Sprintf("%v: %q: %s", e.Err, e.Line, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
