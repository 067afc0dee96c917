// SPDX-License-Identifier: MIT

// Package matrix - textual input/output.
//
// Output format (human inspection only, not a round-trip format):
//
//	| 1 2 |
//	| 3 4 |
//
// Input format: whitespace-delimited tokens consumed in row-major order into
// a matrix whose shape is already known. Decorations are not accepted.
//
// Complexity quicksheet:
//   - Parse: O(r*c) tokens, one staging buffer; WriteTo/Format/String: O(r*c).

package matrix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"unicode"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "| "
	_fmtElemSep  = " "
	_fmtRowClose = "|\n"
)

const (
	opParse  = "Parse"
	opFormat = "Format"
)

// Parse fills m with Rows()*Cols() whitespace-delimited tokens read from r in
// row-major order. Each token is parsed as T (see WithIntegerBase).
//
// When r implements io.RuneScanner (e.g. *bufio.Reader) nothing past the
// delimiter that ends the last token is consumed, so consecutive matrices can
// be read from one stream. Other readers are wrapped in a bufio.Reader and
// may be read ahead.
//
// m is left untouched on failure.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix.
//   - *ParseError (errors.Is(err, ErrParse)) carrying the failing (row,col);
//     its cause is io.ErrUnexpectedEOF for truncated input, the strconv error
//     for a malformed token, or the reader's own error.
func (m *Dense[T]) Parse(r io.Reader, opts ...Option) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opParse, err)
	}
	o := gatherOptions(opts...)
	rs := asRuneScanner(r)

	staged := make([]T, len(m.data))
	var (
		i, j int
		tok  string
		err  error
	)
	for idx := range staged {
		i, j = idx/m.c, idx%m.c
		tok, err = nextToken(rs)
		if errors.Is(err, io.EOF) {
			return &ParseError{Row: i, Col: j, Err: io.ErrUnexpectedEOF}
		}
		if err != nil {
			return &ParseError{Row: i, Col: j, Err: err}
		}
		if staged[idx], err = parseElement[T](tok, o.base); err != nil {
			return &ParseError{Row: i, Col: j, Token: tok, Err: err}
		}
	}
	copy(m.data, staged) // commit only on full success

	return nil
}

// ParseDense allocates a rows×cols matrix and fills it via Parse.
//
// Errors:
//   - ErrInvalidShape from NewDense; *ParseError from Parse.
func ParseDense[T Element](r io.Reader, rows, cols int, opts ...Option) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, matrixErrorf(opParse, err)
	}
	if err = m.Parse(r, opts...); err != nil {
		return nil, err
	}

	return m, nil
}

// Format writes m to w as one "| e0 e1 ... |" line per row.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix; any error returned by w.
func Format[T Element](w io.Writer, m *Dense[T], opts ...Option) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opFormat, err)
	}
	_, err := m.writeText(w, gatherOptions(opts...))

	return err
}

// WriteTo implements io.WriterTo with the default element rendering.
func (m *Dense[T]) WriteTo(w io.Writer) (int64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opFormat, err)
	}

	return m.writeText(w, gatherOptions())
}

// String renders the same text as WriteTo; an empty matrix renders as "".
func (m *Dense[T]) String() string {
	var b strings.Builder
	_, _ = m.writeText(&b, gatherOptions()) // strings.Builder never fails

	return b.String()
}

// writeText emits rows one line at a time; total is the byte count written.
func (m *Dense[T]) writeText(w io.Writer, o Options) (int64, error) {
	var (
		b     strings.Builder
		total int64
		i, j  int
	)
	for i = 0; i < m.r; i++ {
		b.Reset()
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, o.verb, m.data[i*m.c+j])
			b.WriteString(_fmtElemSep)
		}
		b.WriteString(_fmtRowClose)
		n, err := io.WriteString(w, b.String())
		total += int64(n)
		if err != nil {
			return total, matrixErrorf(opFormat, fmt.Errorf("row %d: %w", i, err))
		}
	}

	return total, nil
}

// asRuneScanner reuses r when it already supports UnreadRune.
func asRuneScanner(r io.Reader) io.RuneScanner {
	if rs, ok := r.(io.RuneScanner); ok {
		return rs
	}

	return bufio.NewReader(r)
}

// nextToken skips leading whitespace and returns the next run of
// non-space runes. The delimiter after the token is consumed.
// Returns io.EOF only when no token starts before the end of input.
func nextToken(rs io.RuneScanner) (string, error) {
	var b strings.Builder
	for {
		ch, _, err := rs.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) && b.Len() > 0 {
				return b.String(), nil
			}
			return "", err
		}
		if unicode.IsSpace(ch) {
			if b.Len() > 0 {
				return b.String(), nil
			}
			continue
		}
		b.WriteRune(ch)
	}
}

// parseElement converts tok into T by T's underlying kind, using T's bit
// size so out-of-range values are rejected rather than truncated.
func parseElement[T Element](tok string, base int) (T, error) {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(tok, base, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(tok, base, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(tok, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetFloat(f)
	case reflect.Complex64, reflect.Complex128:
		c, err := strconv.ParseComplex(tok, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetComplex(c)
	default:
		return v, fmt.Errorf("unsupported element kind %s", rv.Kind())
	}

	return v, nil
}
