package saver

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/joeydtaylor/arraysaver/pkg/internal/codec"
	"github.com/joeydtaylor/arraysaver/pkg/internal/types"
	"gonum.org/v1/gonum/mat"
)

// The entry points below accept other in-memory layouts. Each one copies
// into a fresh canonical Matrix or Vector and delegates to Save or
// SaveVector with the same options, so the file bytes do not depend on
// which entry point was used.

// SavePointers saves row x col values addressed by one pointer per row, each
// pointing at the first element of a contiguous run of at least col values
// (for example &grid[i][0] or memory handed over from C).
//
// Only the row slice itself is bounds-checked. Reading col values past the
// end of a row's allocation is undefined behavior, as with any unsafe.Slice.
func SavePointers[T types.Numeric](path string, rows []*T, row, col int, opts ...types.Option) error {
	if row < 0 || col < 0 {
		return fmt.Errorf("%w: row=%d col=%d", codec.ErrBadShape, row, col)
	}
	if row > len(rows) {
		return fmt.Errorf("%w: row=%d but %d row pointers", codec.ErrShapeMismatch, row, len(rows))
	}

	tmp := types.NewMatrix[T](row, col)
	if col > 0 {
		for i := 0; i < row; i++ {
			if rows[i] == nil {
				return fmt.Errorf("%w: row %d", ErrNilPointer, i)
			}
			copy(tmp[i], unsafe.Slice(rows[i], col))
		}
	}
	return Save(path, tmp, row, col, opts...)
}

// SavePointer saves size values starting at p. The same caveat as
// SavePointers applies: size must not run past the allocation.
func SavePointer[T types.Numeric](path string, p *T, size int, opts ...types.Option) error {
	if size < 0 {
		return fmt.Errorf("%w: size=%d", codec.ErrBadShape, size)
	}

	tmp := make(types.Vector[T], size)
	if size > 0 {
		if p == nil {
			return ErrNilPointer
		}
		copy(tmp, unsafe.Slice(p, size))
	}
	return SaveVector(path, tmp, size, opts...)
}

// SaveFlat saves a row-major buffer of at least row*col values as a matrix.
func SaveFlat[T types.Numeric](path string, data []T, row, col int, opts ...types.Option) error {
	if row < 0 || col < 0 {
		return fmt.Errorf("%w: row=%d col=%d", codec.ErrBadShape, row, col)
	}
	if row*col > len(data) {
		return fmt.Errorf("%w: %dx%d needs %d values, have %d", codec.ErrShapeMismatch, row, col, row*col, len(data))
	}

	tmp := make(types.Matrix[T], row)
	for i := range tmp {
		tmp[i] = append([]T(nil), data[i*col:(i+1)*col]...)
	}
	return Save(path, tmp, row, col, opts...)
}

// SaveArray saves a fixed-size array. arr may be [N]T or [R][C]T, or a
// pointer to either; the extents come from the array type. Go cannot abstract
// over array length with type parameters, so the shape is inspected with
// reflection once and the values are copied with reflect.Copy.
func SaveArray[T types.Numeric](path string, arr any, opts ...types.Option) error {
	v := reflect.ValueOf(arr)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ErrNilPointer
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Array {
		return fmt.Errorf("%w: %T", ErrUnsupportedShape, arr)
	}

	elem := reflect.TypeFor[T]()
	at := v.Type()
	switch {
	case at.Elem() == elem:
		tmp := make(types.Vector[T], v.Len())
		reflect.Copy(reflect.ValueOf(tmp), v)
		return SaveVector(path, tmp, len(tmp), opts...)

	case at.Elem().Kind() == reflect.Array && at.Elem().Elem() == elem:
		row, col := v.Len(), at.Elem().Len()
		tmp := types.NewMatrix[T](row, col)
		for i := 0; i < row; i++ {
			reflect.Copy(reflect.ValueOf(tmp[i]), v.Index(i))
		}
		return Save(path, tmp, row, col, opts...)

	default:
		return fmt.Errorf("%w: %T is not an array of %s", ErrUnsupportedShape, arr, elem)
	}
}

// SaveDense saves any gonum matrix (float64) using its own dimensions.
func SaveDense(path string, m mat.Matrix, opts ...types.Option) error {
	if m == nil {
		return ErrNilPointer
	}
	row, col := m.Dims()
	tmp := types.NewMatrix[float64](row, col)
	for i := 0; i < row; i++ {
		for j := 0; j < col; j++ {
			tmp[i][j] = m.At(i, j)
		}
	}
	return Save(path, tmp, row, col, opts...)
}

// LoadDense loads path into a gonum Dense. Short rows are always zero-padded
// to the widest row: WidthLastRow, explicit or default, is read as WidthMax.
// WidthUniform is kept and fails on ragged input. An empty file yields an
// empty Dense.
func LoadDense(path string, opts ...types.Option) (*mat.Dense, error) {
	if types.ApplyOptions(opts...).WidthPolicy != types.WidthUniform {
		opts = append(opts[:len(opts):len(opts)], codec.WithWidthPolicy(types.WidthMax))
	}

	m, row, col, err := Load[float64](path, opts...)
	if err != nil {
		return nil, err
	}
	if row == 0 || col == 0 {
		return &mat.Dense{}, nil
	}

	data := make([]float64, row*col)
	for i, r := range m {
		copy(data[i*col:(i+1)*col], r)
	}
	return mat.NewDense(row, col, data), nil
}
