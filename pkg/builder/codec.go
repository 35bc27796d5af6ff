package builder

import (
	"github.com/joeydtaylor/arraysaver/pkg/internal/codec"
	"github.com/joeydtaylor/arraysaver/pkg/internal/compression"
	"github.com/joeydtaylor/arraysaver/pkg/internal/types"
)

// Numeric is the set of element types that can be saved and loaded.
type Numeric = types.Numeric

// Matrix is the canonical 2-D shape: rows of columns.
type Matrix[T Numeric] = types.Matrix[T]

// Vector is the canonical 1-D shape.
type Vector[T Numeric] = types.Vector[T]

type (
	Option       = types.Option
	CodecOptions = types.CodecOptions
	CommaMode    = types.CommaMode
	WidthPolicy  = types.WidthPolicy
	ParsePolicy  = types.ParsePolicy
	Compression  = types.Compression
	ParseError   = codec.ParseError
	RaggedError  = codec.RaggedError
)

const (
	DefaultDelimiter    = types.DefaultDelimiter
	DefaultDecimalComma = types.DefaultDecimalComma
	DefaultMaxLineBytes = types.DefaultMaxLineBytes

	CommaAlways = types.CommaAlways
	CommaGated  = types.CommaGated

	WidthLastRow = types.WidthLastRow
	WidthMax     = types.WidthMax
	WidthUniform = types.WidthUniform

	ParseLenient = types.ParseLenient
	ParseStrict  = types.ParseStrict

	CompressionNone   = types.CompressionNone
	CompressionAuto   = types.CompressionAuto
	CompressionGzip   = types.CompressionGzip
	CompressionSnappy = types.CompressionSnappy
	CompressionZstd   = types.CompressionZstd
	CompressionBrotli = types.CompressionBrotli
	CompressionLZ4    = types.CompressionLZ4
)

var (
	ErrBadShape           = codec.ErrBadShape
	ErrShapeMismatch      = codec.ErrShapeMismatch
	ErrInvalidDelimiter   = codec.ErrInvalidDelimiter
	ErrParse              = codec.ErrParse
	ErrRaggedRows         = codec.ErrRaggedRows
	ErrUnknownCompression = compression.ErrUnknownCompression
)

// NewMatrix allocates a zeroed row x col matrix.
func NewMatrix[T Numeric](row, col int) Matrix[T] {
	return types.NewMatrix[T](row, col)
}

// DefaultCodecOptions returns the options used when none are given.
func DefaultCodecOptions() CodecOptions {
	return types.DefaultCodecOptions()
}

// ApplyOptions folds opts over the defaults.
func ApplyOptions(opts ...Option) CodecOptions {
	return types.ApplyOptions(opts...)
}

// NewMatrixEncoder creates an encoder writing matrices to any io.Writer.
func NewMatrixEncoder[T Numeric](opts ...Option) *codec.MatrixEncoder[T] {
	return codec.NewMatrixEncoder[T](types.ApplyOptions(opts...))
}

// NewVectorEncoder creates an encoder writing single-line vectors.
func NewVectorEncoder[T Numeric](opts ...Option) *codec.VectorEncoder[T] {
	return codec.NewVectorEncoder[T](types.ApplyOptions(opts...))
}

// NewMatrixDecoder creates a decoder reading matrices from any io.Reader.
func NewMatrixDecoder[T Numeric](opts ...Option) *codec.MatrixDecoder[T] {
	return codec.NewMatrixDecoder[T](types.ApplyOptions(opts...))
}

// FormatElement renders one value the way it appears in a file.
func FormatElement[T Numeric](v T, decimalComma bool) string {
	return codec.FormatElement(v, decimalComma)
}

// ParseElement parses one token the way Load does.
func ParseElement[T Numeric](tok string, opts ...Option) (T, error) {
	return codec.ParseElement[T](tok, types.ApplyOptions(opts...))
}

// DetectCompression picks an algorithm from a file extension.
func DetectCompression(path string) Compression {
	return compression.Detect(path)
}

// ParseCompression accepts an algorithm name such as "gzip" or "zst".
func ParseCompression(name string) (Compression, error) {
	return compression.Parse(name)
}

// WithDelimiter sets the element separator (default ';').
func WithDelimiter(d rune) Option { return codec.WithDelimiter(d) }

// WithDecimalComma toggles writing ',' as the decimal separator (default on).
func WithDecimalComma(on bool) Option { return codec.WithDecimalComma(on) }

// WithCommaMode selects when Load turns ',' into '.'.
func WithCommaMode(m CommaMode) Option { return codec.WithCommaMode(m) }

// WithWidthPolicy selects how Load reports the column count.
func WithWidthPolicy(p WidthPolicy) Option { return codec.WithWidthPolicy(p) }

// WithParsePolicy selects lenient or strict token parsing.
func WithParsePolicy(p ParsePolicy) Option { return codec.WithParsePolicy(p) }

// WithStrictParsing is WithParsePolicy(ParseStrict).
func WithStrictParsing() Option { return codec.WithStrictParsing() }

// WithCompression wraps the file body with a stream compressor.
func WithCompression(c Compression) Option { return codec.WithCompression(c) }

// WithMaxLineBytes bounds the longest line Load accepts.
func WithMaxLineBytes(n int) Option { return codec.WithMaxLineBytes(n) }

// WithLogger routes save/load confirmations to the given loggers.
func WithLogger(loggers ...Logger) Option { return codec.WithLogger(loggers...) }

// WithQuiet suppresses save/load confirmations.
func WithQuiet() Option { return codec.WithQuiet() }
