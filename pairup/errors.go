package pairup

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedToken = errors.New("malformed location id")
	ErrColumnCount    = errors.New("line must have exactly two columns")
	ErrLengthMismatch = errors.New("left and right lists must have the same length")
	ErrEmptyInput     = errors.New("input lists must have at least one element")
)

// LineError reports a parse failure on a 1-based input line.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
