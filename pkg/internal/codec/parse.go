package codec

import (
	"strconv"
	"strings"

	"github.com/joeydtaylor/arraysaver/pkg/internal/types"
)

func parseElement[T types.Numeric](tok string, f numberFormat) (T, error) {
	var zero T
	switch f.kind {
	case kindInt:
		n, err := strconv.ParseInt(tok, 10, f.bits)
		if err != nil {
			return zero, err
		}
		return T(n), nil
	case kindUint:
		n, err := strconv.ParseUint(tok, 10, f.bits)
		if err != nil {
			return zero, err
		}
		return T(n), nil
	default:
		x, err := strconv.ParseFloat(tok, f.bits)
		if err != nil {
			return zero, err
		}
		return T(x), nil
	}
}

// ParseElement converts one token the way load does under the given options:
// comma rewrite per CommaMode, surrounding whitespace ignored. Under
// ParseLenient a token that is not a whole number yields its longest numeric
// prefix, or the zero value when there is none; ParseStrict rejects it.
func ParseElement[T types.Numeric](tok string, opts types.CodecOptions) (T, error) {
	d := NewMatrixDecoder[T](opts)
	return d.parseToken(tok, 0, 0)
}

func (d *MatrixDecoder[T]) rewriteComma() bool {
	return d.commaMode != types.CommaGated || d.decimalComma
}

func (d *MatrixDecoder[T]) parseToken(tok string, line, column int) (T, error) {
	clean := tok
	if d.rewriteComma() {
		clean = strings.ReplaceAll(clean, ",", ".")
	}
	clean = strings.TrimSpace(clean)

	v, err := parseElement[T](clean, d.format)
	if err == nil {
		return v, nil
	}
	var zero T
	if d.parsePolicy == types.ParseStrict {
		return zero, &ParseError{Line: line, Column: column, Token: tok, Err: err}
	}
	if p := numericPrefix(clean, d.format.kind); p != "" && p != clean {
		if v, err := parseElement[T](p, d.format); err == nil {
			return v, nil
		}
	}
	return zero, nil
}

// numericPrefix returns the longest leading run of clean that reads as a
// number of the given kind: "12abc" gives "12", and for integers "3.5" gives
// "3". Floats may carry a fraction and an exponent. Unsigned values take no
// sign other than a dropped '+'.
func numericPrefix(clean string, kind numberKind) string {
	i := 0
	if i < len(clean) && (clean[i] == '+' || (clean[i] == '-' && kind != kindUint)) {
		i++
	}
	start := i
	for i < len(clean) && isDigit(clean[i]) {
		i++
	}
	digits := i - start

	if kind != kindFloat {
		if digits == 0 {
			return ""
		}
		if kind == kindUint {
			return clean[start:i]
		}
		return clean[:i]
	}

	if i < len(clean) && clean[i] == '.' {
		j := i + 1
		for j < len(clean) && isDigit(clean[j]) {
			j++
		}
		digits += j - i - 1
		i = j
	}
	if digits == 0 {
		return ""
	}
	if i < len(clean) && (clean[i] == 'e' || clean[i] == 'E') {
		j := i + 1
		if j < len(clean) && (clean[j] == '+' || clean[j] == '-') {
			j++
		}
		if j < len(clean) && isDigit(clean[j]) {
			for j < len(clean) && isDigit(clean[j]) {
				j++
			}
			i = j
		}
	}
	return clean[:i]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
