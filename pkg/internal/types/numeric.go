package types

// Numeric is the set of element types the array codec accepts: every Go
// integer and floating-point kind. Anything else is rejected at compile time.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Matrix is the canonical 2-D shape: rows of columns.
type Matrix[T Numeric] [][]T

// Vector is the canonical 1-D shape.
type Vector[T Numeric] []T

// NewMatrix allocates a zeroed row x col matrix.
func NewMatrix[T Numeric](row, col int) Matrix[T] {
	m := make(Matrix[T], row)
	for i := range m {
		m[i] = make([]T, col)
	}
	return m
}

// Dims reports the row count and the width of the widest row.
func (m Matrix[T]) Dims() (row, col int) {
	for _, r := range m {
		if len(r) > col {
			col = len(r)
		}
	}
	return len(m), col
}
