// Package saver writes numeric matrices and vectors to delimiter-separated
// text files and reads them back.
//
// Every call is self-contained: the file is opened on entry, closed on every
// return path, and nothing is shared between calls apart from the default
// logger that prints the save/load confirmations.
package saver

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joeydtaylor/arraysaver/pkg/internal/codec"
	"github.com/joeydtaylor/arraysaver/pkg/internal/compression"
	"github.com/joeydtaylor/arraysaver/pkg/internal/types"
	"github.com/joeydtaylor/arraysaver/pkg/logschema"
)

// Save writes the leading row x col block of m to path, truncating any
// existing file. Extents are checked before the file is touched.
func Save[T types.Numeric](path string, m types.Matrix[T], row, col int, opts ...types.Option) error {
	o := types.ApplyOptions(opts...)
	if err := codec.ValidateDelimiter(o.Delimiter); err != nil {
		return err
	}
	if err := codec.ValidateMatrix(m, row, col); err != nil {
		return err
	}

	enc := codec.NewMatrixEncoder[T](o)
	if err := writeFile(path, o, func(w io.Writer) error {
		return enc.Encode(w, m, row, col)
	}); err != nil {
		return err
	}

	notifyLoggers(o, types.InfoLevel, fmt.Sprintf("The file %s has been saved", path),
		logschema.FieldEvent, "Save",
		logschema.FieldPath, path,
		logschema.FieldRows, row,
		logschema.FieldCols, col,
	)
	return nil
}

// SaveVector writes the leading size elements of v to path as a single line.
func SaveVector[T types.Numeric](path string, v types.Vector[T], size int, opts ...types.Option) error {
	o := types.ApplyOptions(opts...)
	if err := codec.ValidateDelimiter(o.Delimiter); err != nil {
		return err
	}
	if err := codec.ValidateVector(v, size); err != nil {
		return err
	}

	enc := codec.NewVectorEncoder[T](o)
	if err := writeFile(path, o, func(w io.Writer) error {
		return enc.Encode(w, v, size)
	}); err != nil {
		return err
	}

	notifyLoggers(o, types.InfoLevel, fmt.Sprintf("The file %s has been saved", path),
		logschema.FieldEvent, "SaveVector",
		logschema.FieldPath, path,
		logschema.FieldRows, 1,
		logschema.FieldCols, size,
	)
	return nil
}

// Load reads path into a matrix. row is the number of lines; col follows the
// width policy (by default, the width of the last line).
func Load[T types.Numeric](path string, opts ...types.Option) (types.Matrix[T], int, int, error) {
	o := types.ApplyOptions(opts...)
	if err := codec.ValidateDelimiter(o.Delimiter); err != nil {
		return nil, 0, 0, err
	}
	alg, err := compression.Resolve(o.Compression, path)
	if err != nil {
		return nil, 0, 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, &IOError{Op: opOpen, Path: path, Err: err}
	}
	defer f.Close()

	r, err := compression.NewReader(f, alg)
	if err != nil {
		return nil, 0, 0, &IOError{Op: opRead, Path: path, Err: err}
	}
	defer r.Close()

	m, row, col, err := codec.NewMatrixDecoder[T](o).Decode(r)
	if err != nil {
		if errors.Is(err, codec.ErrParse) || errors.Is(err, codec.ErrRaggedRows) {
			return nil, 0, 0, fmt.Errorf("saver: load %s: %w", path, err)
		}
		return nil, 0, 0, &IOError{Op: opRead, Path: path, Err: err}
	}

	notifyLoggers(o, types.InfoLevel,
		fmt.Sprintf("The file %s has been loaded. The data has been uploaded to the array", path),
		logschema.FieldEvent, "Load",
		logschema.FieldPath, path,
		logschema.FieldRows, row,
		logschema.FieldCols, col,
	)
	return m, row, col, nil
}

// writeFile opens path for writing, wraps it per the compression option and
// hands the writer to encode. Any failure after a successful open is an
// *IOError for the write or close step.
func writeFile(path string, o types.CodecOptions, encode func(io.Writer) error) (err error) {
	alg, err := compression.Resolve(o.Compression, path)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return &IOError{Op: opOpen, Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: opClose, Path: path, Err: cerr}
		}
	}()

	cw, err := compression.NewWriter(f, alg)
	if err != nil {
		return &IOError{Op: opWrite, Path: path, Err: err}
	}
	if err := encode(cw); err != nil {
		_ = cw.Close()
		return &IOError{Op: opWrite, Path: path, Err: err}
	}
	if err := cw.Close(); err != nil {
		return &IOError{Op: opWrite, Path: path, Err: err}
	}
	return nil
}
