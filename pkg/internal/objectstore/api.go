package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3api "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/joeydtaylor/arraysaver/pkg/internal/codec"
	"github.com/joeydtaylor/arraysaver/pkg/internal/compression"
	"github.com/joeydtaylor/arraysaver/pkg/internal/types"
	"github.com/joeydtaylor/arraysaver/pkg/logschema"
)

// Save uploads the leading row x col block of m as the object name.
func (s *Store[T]) Save(ctx context.Context, name string, m types.Matrix[T], row, col int, opts ...types.Option) error {
	o, key, err := s.prepare(name, opts)
	if err != nil {
		return err
	}
	if err := codec.ValidateMatrix(m, row, col); err != nil {
		return err
	}

	enc := codec.NewMatrixEncoder[T](o)
	n, err := s.upload(ctx, key, o, func(w io.Writer) error {
		return enc.Encode(w, m, row, col)
	})
	if err != nil {
		return err
	}

	s.NotifyLoggers(o, types.InfoLevel, fmt.Sprintf("The object s3://%s/%s has been saved", s.bucket, key),
		logschema.FieldEvent, "PutObject",
		logschema.FieldPath, key,
		logschema.FieldRows, row,
		logschema.FieldCols, col,
		"bytes", n,
	)
	return nil
}

// SaveVector uploads the leading size elements of v as a single-line object.
func (s *Store[T]) SaveVector(ctx context.Context, name string, v types.Vector[T], size int, opts ...types.Option) error {
	o, key, err := s.prepare(name, opts)
	if err != nil {
		return err
	}
	if err := codec.ValidateVector(v, size); err != nil {
		return err
	}

	enc := codec.NewVectorEncoder[T](o)
	n, err := s.upload(ctx, key, o, func(w io.Writer) error {
		return enc.Encode(w, v, size)
	})
	if err != nil {
		return err
	}

	s.NotifyLoggers(o, types.InfoLevel, fmt.Sprintf("The object s3://%s/%s has been saved", s.bucket, key),
		logschema.FieldEvent, "PutObject",
		logschema.FieldPath, key,
		logschema.FieldRows, 1,
		logschema.FieldCols, size,
		"bytes", n,
	)
	return nil
}

// Load downloads the object name and decodes it. The body is decompressed
// per the compression option; with the default (none) or auto on a key
// without a known extension, the object's Content-Encoding is honored.
func (s *Store[T]) Load(ctx context.Context, name string, opts ...types.Option) (types.Matrix[T], int, int, error) {
	o, key, err := s.prepare(name, opts)
	if err != nil {
		return nil, 0, 0, err
	}

	out, err := s.cli.GetObject(ctx, &s3api.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, 0, 0, &ObjectError{Op: "get", Bucket: s.bucket, Key: key, Err: err}
	}
	defer out.Body.Close()

	alg, err := resolveGet(o.Compression, key, aws.ToString(out.ContentEncoding))
	if err != nil {
		return nil, 0, 0, err
	}
	r, err := compression.NewReader(out.Body, alg)
	if err != nil {
		return nil, 0, 0, &ObjectError{Op: "read", Bucket: s.bucket, Key: key, Err: err}
	}
	defer r.Close()

	m, row, col, err := codec.NewMatrixDecoder[T](o).Decode(r)
	if err != nil {
		if errors.Is(err, codec.ErrParse) || errors.Is(err, codec.ErrRaggedRows) {
			return nil, 0, 0, fmt.Errorf("objectstore: load s3://%s/%s: %w", s.bucket, key, err)
		}
		return nil, 0, 0, &ObjectError{Op: "read", Bucket: s.bucket, Key: key, Err: err}
	}

	s.NotifyLoggers(o, types.InfoLevel,
		fmt.Sprintf("The object s3://%s/%s has been loaded. The data has been uploaded to the array", s.bucket, key),
		logschema.FieldEvent, "GetObject",
		logschema.FieldPath, key,
		logschema.FieldRows, row,
		logschema.FieldCols, col,
	)
	return m, row, col, nil
}
