package saver

import (
	"fmt"
	"io"
	"os"

	"github.com/joeydtaylor/arraysaver/pkg/internal/codec"
	"github.com/joeydtaylor/arraysaver/pkg/internal/parquetio"
	"github.com/joeydtaylor/arraysaver/pkg/internal/types"
	"github.com/joeydtaylor/arraysaver/pkg/logschema"
)

// SaveParquet writes the leading row x col block of m to path as parquet.
// The compression option selects the parquet page codec instead of wrapping
// the file; auto picks snappy.
func SaveParquet[T types.Numeric](path string, m types.Matrix[T], row, col int, opts ...types.Option) error {
	o := types.ApplyOptions(opts...)
	if err := codec.ValidateMatrix(m, row, col); err != nil {
		return err
	}

	pageCodec := o.Compression
	if pageCodec == types.CompressionAuto {
		pageCodec = types.CompressionSnappy
	}
	plain := o
	plain.Compression = types.CompressionNone
	if err := writeFile(path, plain, func(w io.Writer) error {
		return parquetio.Write(w, m, row, col, pageCodec)
	}); err != nil {
		return err
	}

	notifyLoggers(o, types.InfoLevel, fmt.Sprintf("The file %s has been saved", path),
		logschema.FieldEvent, "SaveParquet",
		logschema.FieldPath, path,
		logschema.FieldRows, row,
		logschema.FieldCols, col,
	)
	return nil
}

// LoadParquet reads a file written by SaveParquet.
func LoadParquet[T types.Numeric](path string, opts ...types.Option) (types.Matrix[T], int, int, error) {
	o := types.ApplyOptions(opts...)

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, &IOError{Op: opOpen, Path: path, Err: err}
	}
	defer f.Close()

	m, row, col, err := parquetio.Read[T](f)
	if err != nil {
		return nil, 0, 0, &IOError{Op: opRead, Path: path, Err: err}
	}

	notifyLoggers(o, types.InfoLevel,
		fmt.Sprintf("The file %s has been loaded. The data has been uploaded to the array", path),
		logschema.FieldEvent, "LoadParquet",
		logschema.FieldPath, path,
		logschema.FieldRows, row,
		logschema.FieldCols, col,
	)
	return m, row, col, nil
}
