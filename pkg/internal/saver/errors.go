package saver

import (
	"errors"
	"fmt"
)

const (
	opOpen  = "open"
	opRead  = "read"
	opWrite = "write"
	opClose = "close"
)

var (
	// ErrFileNotOpened matches any *IOError raised while opening the target file.
	ErrFileNotOpened = errors.New("saver: file hasn't been opened")

	// ErrUnsupportedShape is returned by SaveArray for values that are not fixed-size arrays of T.
	ErrUnsupportedShape = errors.New("saver: unsupported array shape")

	// ErrNilPointer is returned when a pointer shape is nil but a non-zero extent was requested.
	ErrNilPointer = errors.New("saver: nil pointer")
)

// IOError reports a failure to open, read, write or close a file. The
// underlying *fs.PathError stays reachable through errors.Is / errors.As.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Op == opOpen {
		return fmt.Sprintf("saver: file %s hasn't been opened: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("saver: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrFileNotOpened) true for open failures.
func (e *IOError) Is(target error) bool {
	return target == ErrFileNotOpened && e.Op == opOpen
}
