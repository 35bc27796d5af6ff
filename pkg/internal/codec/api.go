package codec

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/joeydtaylor/arraysaver/pkg/internal/types"
)

// Encode writes the leading row x col block of m. Elements are joined by the
// delimiter and every row, the last one included, ends with '\n'.
func (e *MatrixEncoder[T]) Encode(w io.Writer, m types.Matrix[T], row, col int) error {
	if err := ValidateDelimiter(e.delimiter); err != nil {
		return err
	}
	if err := ValidateMatrix(m, row, col); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	line := make([]byte, 0, 16*col+1)
	for i := 0; i < row; i++ {
		line = line[:0]
		for j := 0; j < col; j++ {
			if j > 0 {
				line = utf8.AppendRune(line, e.delimiter)
			}
			line = appendElement(line, m[i][j], e.format, e.decimalComma)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Encode writes the leading size elements of v as a single line.
func (e *VectorEncoder[T]) Encode(w io.Writer, v types.Vector[T], size int) error {
	if err := ValidateDelimiter(e.delimiter); err != nil {
		return err
	}
	if err := ValidateVector(v, size); err != nil {
		return err
	}

	line := make([]byte, 0, 16*size+1)
	for i := 0; i < size; i++ {
		if i > 0 {
			line = utf8.AppendRune(line, e.delimiter)
		}
		line = appendElement(line, v[i], e.format, e.decimalComma)
	}
	line = append(line, '\n')
	_, err := w.Write(line)
	return err
}

// Decode reads r to the end. Each line becomes one row; row is the number of
// lines and col follows the decoder's width policy.
func (d *MatrixDecoder[T]) Decode(r io.Reader) (types.Matrix[T], int, int, error) {
	if err := ValidateDelimiter(d.delimiter); err != nil {
		return nil, 0, 0, err
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), d.maxLineBytes)

	out := make(types.Matrix[T], 0)
	sep := string(d.delimiter)
	row, col, first := 0, 0, -1
	for scanner.Scan() {
		row++
		tokens := splitLine(scanner.Text(), sep)

		values := make([]T, len(tokens))
		for j, tok := range tokens {
			v, err := d.parseToken(tok, row, j+1)
			if err != nil {
				return nil, 0, 0, err
			}
			values[j] = v
		}
		out = append(out, values)

		width := len(values)
		switch d.widthPolicy {
		case types.WidthMax:
			if width > col {
				col = width
			}
		case types.WidthUniform:
			if first < 0 {
				first = width
			} else if width != first {
				return nil, 0, 0, &RaggedError{Line: row, Width: width, Expected: first}
			}
			col = width
		default:
			col = width
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, 0, err
	}
	return out, row, col, nil
}

// splitLine splits on sep keeping a trailing empty token. An empty line has
// no tokens at all.
func splitLine(line, sep string) []string {
	if line == "" {
		return nil
	}
	return strings.Split(line, sep)
}

// ValidateMatrix checks that the leading row x col block of m exists.
func ValidateMatrix[T types.Numeric](m types.Matrix[T], row, col int) error {
	if row < 0 || col < 0 {
		return fmt.Errorf("%w: row=%d col=%d", ErrBadShape, row, col)
	}
	if row > len(m) {
		return fmt.Errorf("%w: row=%d but matrix has %d rows", ErrShapeMismatch, row, len(m))
	}
	for i := 0; i < row; i++ {
		if col > len(m[i]) {
			return fmt.Errorf("%w: col=%d but row %d has %d elements", ErrShapeMismatch, col, i, len(m[i]))
		}
	}
	return nil
}

// ValidateVector checks that v holds at least size elements.
func ValidateVector[T types.Numeric](v types.Vector[T], size int) error {
	if size < 0 {
		return fmt.Errorf("%w: size=%d", ErrBadShape, size)
	}
	if size > len(v) {
		return fmt.Errorf("%w: size=%d but vector has %d elements", ErrShapeMismatch, size, len(v))
	}
	return nil
}
