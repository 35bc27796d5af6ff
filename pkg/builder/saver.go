package builder

import (
	"github.com/joeydtaylor/arraysaver/pkg/internal/saver"
	"gonum.org/v1/gonum/mat"
)

type IOError = saver.IOError

var (
	ErrFileNotOpened    = saver.ErrFileNotOpened
	ErrUnsupportedShape = saver.ErrUnsupportedShape
	ErrNilPointer       = saver.ErrNilPointer
)

// Save writes the leading row x col block of m to path.
func Save[T Numeric](path string, m Matrix[T], row, col int, opts ...Option) error {
	return saver.Save(path, m, row, col, opts...)
}

// SaveVector writes the leading size elements of v to path as one line.
func SaveVector[T Numeric](path string, v Vector[T], size int, opts ...Option) error {
	return saver.SaveVector(path, v, size, opts...)
}

// Load reads path and returns the matrix with its row and column counts.
func Load[T Numeric](path string, opts ...Option) (Matrix[T], int, int, error) {
	return saver.Load[T](path, opts...)
}

// SavePointers saves row x col values addressed by one pointer per row.
func SavePointers[T Numeric](path string, rows []*T, row, col int, opts ...Option) error {
	return saver.SavePointers(path, rows, row, col, opts...)
}

// SavePointer saves size values starting at p.
func SavePointer[T Numeric](path string, p *T, size int, opts ...Option) error {
	return saver.SavePointer(path, p, size, opts...)
}

// SaveArray saves a [N]T or [R][C]T array, or a pointer to one.
func SaveArray[T Numeric](path string, arr any, opts ...Option) error {
	return saver.SaveArray[T](path, arr, opts...)
}

// SaveFlat saves a row-major buffer as a row x col matrix.
func SaveFlat[T Numeric](path string, data []T, row, col int, opts ...Option) error {
	return saver.SaveFlat(path, data, row, col, opts...)
}

// SaveDense saves a gonum matrix.
func SaveDense(path string, m mat.Matrix, opts ...Option) error {
	return saver.SaveDense(path, m, opts...)
}

// LoadDense loads path into a gonum Dense, zero-padding short rows.
func LoadDense(path string, opts ...Option) (*mat.Dense, error) {
	return saver.LoadDense(path, opts...)
}

// SaveParquet writes the leading row x col block of m as a parquet file.
func SaveParquet[T Numeric](path string, m Matrix[T], row, col int, opts ...Option) error {
	return saver.SaveParquet(path, m, row, col, opts...)
}

// LoadParquet reads a parquet file written by SaveParquet.
func LoadParquet[T Numeric](path string, opts ...Option) (Matrix[T], int, int, error) {
	return saver.LoadParquet[T](path, opts...)
}
