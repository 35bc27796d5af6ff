package codec

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrBadShape is returned for a negative row, col or size.
	ErrBadShape = errors.New("codec: negative extent")

	// ErrShapeMismatch is returned when the declared extents exceed the data.
	ErrShapeMismatch = errors.New("codec: extent exceeds data")

	// ErrInvalidDelimiter rejects delimiters that would collide with line breaks.
	ErrInvalidDelimiter = errors.New("codec: invalid delimiter")

	// ErrParse marks a token that is not a number of the element type (strict parsing only).
	ErrParse = errors.New("codec: token is not a number")

	// ErrRaggedRows marks lines of differing width under the uniform width policy.
	ErrRaggedRows = errors.New("codec: rows have different widths")
)

// ParseError locates a token that failed strict parsing. Line and Column are 1-based.
type ParseError struct {
	Line   int
	Column int
	Token  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("codec: line %d, column %d: cannot parse %q: %v", e.Line, e.Column, e.Token, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// RaggedError reports the first line whose width differs from the first line's.
type RaggedError struct {
	Line     int
	Width    int
	Expected int
}

func (e *RaggedError) Error() string {
	return fmt.Sprintf("codec: line %d has %d columns, expected %d", e.Line, e.Width, e.Expected)
}

func (e *RaggedError) Unwrap() error {
	return ErrRaggedRows
}

// ValidateDelimiter rejects delimiters that cannot separate values on one line.
func ValidateDelimiter(d rune) error {
	if d == '\n' || d == '\r' || d == utf8.RuneError || !utf8.ValidRune(d) {
		return fmt.Errorf("%w: %q", ErrInvalidDelimiter, d)
	}
	return nil
}
