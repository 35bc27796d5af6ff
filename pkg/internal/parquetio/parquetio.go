// Package parquetio stores matrices as parquet files, one parquet row per
// matrix row. It is a columnar companion to the text format for callers that
// hand matrices to analytics tooling.
package parquetio

import (
	"io"
	"reflect"

	"github.com/joeydtaylor/arraysaver/pkg/internal/codec"
	"github.com/joeydtaylor/arraysaver/pkg/internal/types"
	parquet "github.com/parquet-go/parquet-go"
)

// Row is the on-disk record: the matrix row index and its values. Values are
// widened to one of three parquet-native element types, so every Numeric
// kind (int8 and uintptr included) has a column representation.
type Row[V storage] struct {
	Index  int64 `parquet:"index"`
	Values []V   `parquet:"values"`
}

type storage interface {
	int64 | uint64 | float64
}

type storageKind uint8

const (
	storeInt storageKind = iota
	storeUint
	storeFloat
)

func storageOf[T types.Numeric]() storageKind {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return storeInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return storeUint
	default:
		return storeFloat
	}
}

// CompressionOption maps the shared compression names onto parquet page
// codecs. Snappy is the parquet default when nothing is chosen.
func CompressionOption(c types.Compression) parquet.WriterOption {
	switch c {
	case types.CompressionZstd:
		return parquet.Compression(&parquet.Zstd)
	case types.CompressionGzip:
		return parquet.Compression(&parquet.Gzip)
	case types.CompressionBrotli:
		return parquet.Compression(&parquet.Brotli)
	case types.CompressionLZ4:
		return parquet.Compression(&parquet.Lz4Raw)
	case types.CompressionNone:
		return parquet.Compression(&parquet.Uncompressed)
	default:
		return parquet.Compression(&parquet.Snappy)
	}
}

// Write encodes the leading row x col block of m to w.
func Write[T types.Numeric](w io.Writer, m types.Matrix[T], row, col int, c types.Compression) error {
	if err := codec.ValidateMatrix(m, row, col); err != nil {
		return err
	}

	switch storageOf[T]() {
	case storeInt:
		return writeRows(w, widen[T, int64](m, row, col), c)
	case storeUint:
		return writeRows(w, widen[T, uint64](m, row, col), c)
	default:
		return writeRows(w, widen[T, float64](m, row, col), c)
	}
}

func widen[T types.Numeric, V storage](m types.Matrix[T], row, col int) []Row[V] {
	rows := make([]Row[V], row)
	for i := range rows {
		values := make([]V, col)
		for j := range values {
			values[j] = V(m[i][j])
		}
		rows[i] = Row[V]{Index: int64(i), Values: values}
	}
	return rows
}

func writeRows[V storage](w io.Writer, rows []Row[V], c types.Compression) error {
	pw := parquet.NewGenericWriter[Row[V]](w, CompressionOption(c))
	if _, err := pw.Write(rows); err != nil {
		_ = pw.Close()
		return err
	}
	return pw.Close()
}

// Read decodes every row from ra into T. col is the width of the last row,
// matching the text loader's default. T should belong to the same family
// (signed, unsigned or float) as the type the file was written with.
func Read[T types.Numeric](ra io.ReaderAt) (types.Matrix[T], int, int, error) {
	var (
		out types.Matrix[T]
		err error
	)
	switch storageOf[T]() {
	case storeInt:
		out, err = readRows[T, int64](ra)
	case storeUint:
		out, err = readRows[T, uint64](ra)
	default:
		out, err = readRows[T, float64](ra)
	}
	if err != nil {
		return nil, 0, 0, err
	}

	col := 0
	if len(out) > 0 {
		col = len(out[len(out)-1])
	}
	return out, len(out), col, nil
}

func readRows[T types.Numeric, V storage](ra io.ReaderAt) (types.Matrix[T], error) {
	gr := parquet.NewGenericReader[Row[V]](ra)
	defer gr.Close()

	out := make(types.Matrix[T], 0, gr.NumRows())
	batch := make([]Row[V], 256)
	for {
		n, err := gr.Read(batch)
		for i := 0; i < n; i++ {
			values := make([]T, len(batch[i].Values))
			for j, v := range batch[i].Values {
				values[j] = T(v)
			}
			out = append(out, values)
			batch[i] = Row[V]{}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
