package codec

import (
	"github.com/joeydtaylor/arraysaver/pkg/internal/types"
)

// WithDelimiter sets the value separator. The default is ';'.
func WithDelimiter(d rune) types.Option {
	return func(o *types.CodecOptions) {
		o.Delimiter = d
	}
}

// WithDecimalComma toggles writing ',' as the decimal separator.
func WithDecimalComma(on bool) types.Option {
	return func(o *types.CodecOptions) {
		o.DecimalComma = on
	}
}

// WithCommaMode selects whether load's ','→'.' rewrite depends on the decimal-comma flag.
func WithCommaMode(mode types.CommaMode) types.Option {
	return func(o *types.CodecOptions) {
		o.CommaMode = mode
	}
}

// WithWidthPolicy selects how load reports the column count.
func WithWidthPolicy(p types.WidthPolicy) types.Option {
	return func(o *types.CodecOptions) {
		o.WidthPolicy = p
	}
}

// WithParsePolicy selects lenient or strict token parsing.
func WithParsePolicy(p types.ParsePolicy) types.Option {
	return func(o *types.CodecOptions) {
		o.ParsePolicy = p
	}
}

// WithStrictParsing is shorthand for WithParsePolicy(types.ParseStrict).
func WithStrictParsing() types.Option {
	return WithParsePolicy(types.ParseStrict)
}

// WithCompression wraps the body in the given algorithm; CompressionAuto picks it from the path.
func WithCompression(c types.Compression) types.Option {
	return func(o *types.CodecOptions) {
		o.Compression = c
	}
}

// WithMaxLineBytes raises or lowers the longest line load accepts.
func WithMaxLineBytes(n int) types.Option {
	return func(o *types.CodecOptions) {
		if n > 0 {
			o.MaxLineBytes = n
		}
	}
}

// WithLogger routes confirmations to the given loggers instead of the default one.
func WithLogger(loggers ...types.Logger) types.Option {
	return func(o *types.CodecOptions) {
		for _, l := range loggers {
			if l != nil {
				o.Loggers = append(o.Loggers, l)
			}
		}
	}
}

// WithQuiet suppresses confirmations entirely.
func WithQuiet() types.Option {
	return func(o *types.CodecOptions) {
		o.Quiet = true
	}
}
