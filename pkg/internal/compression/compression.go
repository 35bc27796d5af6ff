package compression

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/joeydtaylor/arraysaver/pkg/internal/types"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
)

var (
	// ErrUnknownCompression is returned for an algorithm name this package does not implement.
	ErrUnknownCompression = errors.New("compression: unknown algorithm")

	// ErrUnresolved is returned when "auto" reaches a writer or reader without a path to detect from.
	ErrUnresolved = errors.New("compression: auto must be resolved against a path")
)

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// NewWriter wraps w so everything written is compressed with alg. Close must
// be called to flush the trailing frame; it does not close w.
func NewWriter(w io.Writer, alg types.Compression) (io.WriteCloser, error) {
	switch alg {
	case types.CompressionNone, "":
		return nopWriteCloser{w}, nil
	case types.CompressionGzip:
		return gzip.NewWriter(w), nil
	case types.CompressionSnappy:
		return snappy.NewBufferedWriter(w), nil
	case types.CompressionZstd:
		enc, err := zstd.NewWriter(w)
		if err != nil {
			return nil, err
		}
		return enc, nil
	case types.CompressionBrotli:
		return brotli.NewWriterLevel(w, brotli.DefaultCompression), nil
	case types.CompressionLZ4:
		return lz4.NewWriter(w), nil
	case types.CompressionAuto:
		return nil, ErrUnresolved
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, alg)
	}
}

// NewReader wraps r so reads yield the decompressed body.
func NewReader(r io.Reader, alg types.Compression) (io.ReadCloser, error) {
	switch alg {
	case types.CompressionNone, "":
		return io.NopCloser(r), nil
	case types.CompressionGzip:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return gz, nil
	case types.CompressionSnappy:
		return io.NopCloser(snappy.NewReader(r)), nil
	case types.CompressionZstd:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	case types.CompressionBrotli:
		return io.NopCloser(brotli.NewReader(r)), nil
	case types.CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case types.CompressionAuto:
		return nil, ErrUnresolved
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, alg)
	}
}

// Detect picks an algorithm from the file extension; unknown extensions are plain text.
func Detect(path string) types.Compression {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return types.CompressionGzip
	case ".sz", ".snappy":
		return types.CompressionSnappy
	case ".zst", ".zstd":
		return types.CompressionZstd
	case ".br":
		return types.CompressionBrotli
	case ".lz4":
		return types.CompressionLZ4
	default:
		return types.CompressionNone
	}
}

// Resolve turns "auto" into a concrete algorithm for path and validates the rest.
func Resolve(alg types.Compression, path string) (types.Compression, error) {
	if alg == types.CompressionAuto {
		return Detect(path), nil
	}
	return Parse(string(alg))
}

// Parse accepts the canonical names plus the common short forms.
func Parse(name string) (types.Compression, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "off":
		return types.CompressionNone, nil
	case "auto":
		return types.CompressionAuto, nil
	case "gzip", "gz", "deflate":
		return types.CompressionGzip, nil
	case "snappy", "sz":
		return types.CompressionSnappy, nil
	case "zstd", "zst":
		return types.CompressionZstd, nil
	case "brotli", "br":
		return types.CompressionBrotli, nil
	case "lz4":
		return types.CompressionLZ4, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCompression, name)
	}
}
