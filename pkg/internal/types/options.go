package types

// CodecOptions carries every knob shared by the file saver, the object store
// and the parquet helpers. The zero value is not usable; start from
// DefaultCodecOptions.
type CodecOptions struct {
	Delimiter    rune
	DecimalComma bool
	CommaMode    CommaMode
	WidthPolicy  WidthPolicy
	ParsePolicy  ParsePolicy
	Compression  Compression
	MaxLineBytes int
	Loggers      []Logger // nil means the shared default logger
	Quiet        bool     // suppress save/load confirmations
}

// Option mutates CodecOptions. Options are applied in order, so later ones win.
type Option func(*CodecOptions)

// DefaultCodecOptions returns the documented defaults.
func DefaultCodecOptions() CodecOptions {
	return CodecOptions{
		Delimiter:    DefaultDelimiter,
		DecimalComma: DefaultDecimalComma,
		CommaMode:    CommaAlways,
		WidthPolicy:  WidthLastRow,
		ParsePolicy:  ParseLenient,
		Compression:  CompressionNone,
		MaxLineBytes: DefaultMaxLineBytes,
	}
}

// ApplyOptions folds opts over the defaults.
func ApplyOptions(opts ...Option) CodecOptions {
	o := DefaultCodecOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
