package codec

import (
	"github.com/joeydtaylor/arraysaver/pkg/internal/types"
)

// MatrixEncoder writes a matrix as one delimited line per row.
type MatrixEncoder[T types.Numeric] struct {
	delimiter    rune
	decimalComma bool
	format       numberFormat
}

// VectorEncoder writes a vector as a single delimited line.
type VectorEncoder[T types.Numeric] struct {
	delimiter    rune
	decimalComma bool
	format       numberFormat
}

// MatrixDecoder parses delimited lines back into a matrix.
type MatrixDecoder[T types.Numeric] struct {
	delimiter    rune
	decimalComma bool
	commaMode    types.CommaMode
	widthPolicy  types.WidthPolicy
	parsePolicy  types.ParsePolicy
	maxLineBytes int
	format       numberFormat
}

func NewMatrixEncoder[T types.Numeric](opts types.CodecOptions) *MatrixEncoder[T] {
	return &MatrixEncoder[T]{
		delimiter:    opts.Delimiter,
		decimalComma: opts.DecimalComma,
		format:       formatOf[T](),
	}
}

func NewVectorEncoder[T types.Numeric](opts types.CodecOptions) *VectorEncoder[T] {
	return &VectorEncoder[T]{
		delimiter:    opts.Delimiter,
		decimalComma: opts.DecimalComma,
		format:       formatOf[T](),
	}
}

func NewMatrixDecoder[T types.Numeric](opts types.CodecOptions) *MatrixDecoder[T] {
	maxLine := opts.MaxLineBytes
	if maxLine <= 0 {
		maxLine = types.DefaultMaxLineBytes
	}
	return &MatrixDecoder[T]{
		delimiter:    opts.Delimiter,
		decimalComma: opts.DecimalComma,
		commaMode:    opts.CommaMode,
		widthPolicy:  opts.WidthPolicy,
		parsePolicy:  opts.ParsePolicy,
		maxLineBytes: maxLine,
		format:       formatOf[T](),
	}
}
