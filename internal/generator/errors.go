package generator

import (
	"errors"
	"fmt"

	"name-pump/internal/syllable"
)

var (
	// ErrNilRand is returned by New when no random source is supplied.
	ErrNilRand = errors.New("generator: nil random source")
	// ErrNilSource is returned by New when no dialect source is supplied.
	ErrNilSource = errors.New("generator: nil dialect source")
	// ErrEmptyPool is wrapped by EmptyPoolError.
	ErrEmptyPool = errors.New("generator: empty syllable pool")
	// ErrUnproductive is wrapped by IncompatibleError.
	ErrUnproductive = errors.New("generator: no compatible syllable")
)

// LoadError reports a dialect source that could not be read or parsed.
// Line is zero when the failure is not tied to a line.
type LoadError struct {
	Source string
	Line   int
	Err    error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("failed to load dialect %s (line %d): %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("failed to load dialect %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// EmptyPoolError reports a dialect that has no syllables for a role.
type EmptyPoolError struct {
	Source string
	Role   syllable.Role
}

func (e *EmptyPoolError) Error() string {
	return fmt.Sprintf("dialect %s has no %s syllables", e.Source, e.Role)
}

func (e *EmptyPoolError) Unwrap() error {
	return ErrEmptyPool
}

// IncompatibleError reports that no syllable in a pool may follow Previous.
type IncompatibleError struct {
	Previous syllable.Syllable
	Role     syllable.Role
	Pool     int
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("none of %d %s syllables may follow %q", e.Pool, e.Role, e.Previous.Text())
}

func (e *IncompatibleError) Unwrap() error {
	return ErrUnproductive
}
