package codec

import (
	"reflect"
	"strconv"

	"github.com/joeydtaylor/arraysaver/pkg/internal/types"
)

type numberKind uint8

const (
	kindInt numberKind = iota
	kindUint
	kindFloat
)

// numberFormat is resolved once per encoder/decoder from T's underlying kind.
type numberFormat struct {
	kind numberKind
	bits int
}

func formatOf[T types.Numeric]() numberFormat {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return numberFormat{kind: kindInt, bits: t.Bits()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return numberFormat{kind: kindUint, bits: t.Bits()}
	default:
		return numberFormat{kind: kindFloat, bits: t.Bits()}
	}
}

// appendElement appends the decimal text of v. Floats use fixed notation with
// the shortest digits that round-trip, so 3.5 is "3.5" and 1e21 is never
// written in exponent form. With decimalComma every '.' becomes ','.
func appendElement[T types.Numeric](dst []byte, v T, f numberFormat, decimalComma bool) []byte {
	switch f.kind {
	case kindInt:
		return strconv.AppendInt(dst, int64(v), 10)
	case kindUint:
		return strconv.AppendUint(dst, uint64(v), 10)
	}

	start := len(dst)
	dst = strconv.AppendFloat(dst, float64(v), 'f', -1, f.bits)
	if decimalComma {
		for i := start; i < len(dst); i++ {
			if dst[i] == '.' {
				dst[i] = ','
			}
		}
	}
	return dst
}

// FormatElement returns the text a single element is saved as.
func FormatElement[T types.Numeric](v T, decimalComma bool) string {
	return string(appendElement(nil, v, formatOf[T](), decimalComma))
}
