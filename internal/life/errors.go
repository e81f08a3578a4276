package life

import (
	"errors"
	"fmt"
)

// Construction errors.
var (
	// ErrInvalidSize indicates a non-positive grid width or height.
	ErrInvalidSize = errors.New("life: grid dimensions must be positive")

	// ErrEmptyPattern indicates a pattern with no rows or no columns.
	ErrEmptyPattern = errors.New("life: pattern is empty")

	// ErrJaggedPattern indicates pattern rows of differing widths.
	ErrJaggedPattern = errors.New("life: pattern rows have different widths")
)

// PatternError reports the first row of a pattern that breaks its rectangle.
type PatternError struct {
	Row     int
	Width   int
	Want    int
	Wrapped error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("%v: row %d has width %d, want %d", e.Wrapped, e.Row, e.Width, e.Want)
}

func (e *PatternError) Unwrap() error {
	return e.Wrapped
}
