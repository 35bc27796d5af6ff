// pkg/internal/types/codec.go
package types

import "io"

// DefaultDelimiter separates values within a line.
const DefaultDelimiter = ';'

// DefaultDecimalComma is the default decimal-comma mode for save and load.
const DefaultDecimalComma = true

// DefaultMaxLineBytes caps a single line when loading.
const DefaultMaxLineBytes = 16 << 20

// CommaMode selects when load rewrites ',' to '.' inside a token.
type CommaMode string

const (
	// CommaAlways rewrites every token regardless of the decimal-comma flag.
	// Save only rewrites when the flag is set, so the two sides are not symmetric.
	CommaAlways CommaMode = "always"
	// CommaGated rewrites only when decimal-comma mode is enabled.
	CommaGated CommaMode = "gated"
)

// WidthPolicy selects the column count reported by load.
type WidthPolicy string

const (
	WidthLastRow WidthPolicy = "last"    // width of the final line
	WidthMax     WidthPolicy = "max"     // width of the widest line
	WidthUniform WidthPolicy = "uniform" // ragged input is an error
)

// ParsePolicy selects how load treats tokens that are not numbers.
type ParsePolicy string

const (
	ParseLenient ParsePolicy = "lenient" // unparsable token becomes the zero value
	ParseStrict  ParsePolicy = "strict"  // unparsable token fails the load
)

// Compression names the stream wrapper applied around the text body.
type Compression string

const (
	CompressionNone   Compression = "none"
	CompressionAuto   Compression = "auto" // chosen from the file extension
	CompressionGzip   Compression = "gzip"
	CompressionSnappy Compression = "snappy"
	CompressionZstd   Compression = "zstd"
	CompressionBrotli Compression = "brotli"
	CompressionLZ4    Compression = "lz4"
)

// MatrixEncoder writes the leading row x col block of a matrix.
type MatrixEncoder[T Numeric] interface {
	Encode(w io.Writer, m Matrix[T], row, col int) error
}

// VectorEncoder writes the leading size elements of a vector.
type VectorEncoder[T Numeric] interface {
	Encode(w io.Writer, v Vector[T], size int) error
}

// MatrixDecoder reads a whole delimited body and reports its extents.
type MatrixDecoder[T Numeric] interface {
	Decode(r io.Reader) (m Matrix[T], row, col int, err error)
}
