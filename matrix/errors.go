// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors and the positional
// ParseError used across the matrix package. All algorithms MUST return these
// sentinels and tests MUST check them via errors.Is. No algorithm panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Detection sites return the bare sentinel; kernels
// wrap with fmt.Errorf("ctx: %w", ErrX) so callers can still use errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil/empty -> shape/index -> dimension mismatch -> square -> exponent -> parse.

var (
	// ErrInvalidShape is returned when a requested shape is invalid (rows<1 or cols<1),
	// including row data with no rows or an empty first row.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrRaggedRows indicates that supplied row data does not share one row length.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrInvalidExponent signals a negative exponent passed to Pow.
	ErrInvalidExponent = errors.New("matrix: invalid exponent")

	// ErrInvalidOperation marks an internal step that failed where success was
	// guaranteed by the caller's checks (e.g. a squaring step inside Pow).
	ErrInvalidOperation = errors.New("matrix: invalid operation")

	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("matrix: parse error")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEmptyMatrix indicates use of a matrix whose storage was moved out.
	ErrEmptyMatrix = errors.New("matrix: empty matrix")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

// ParseError reports the cell at which textual input could not be ingested.
// Row and Col are zero-based; Token is empty when the input ran out.
type ParseError struct {
	Row, Col int
	Token    string
	Err      error
}

// Error renders "matrix: parse error at (row,col) ...".
func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s at (%d,%d): %v", ErrParse, e.Row, e.Col, e.Err)
	}

	return fmt.Sprintf("%s at (%d,%d) token %q: %v", ErrParse, e.Row, e.Col, e.Token, e.Err)
}

// Unwrap exposes the underlying cause (io.ErrUnexpectedEOF, *strconv.NumError, ...).
func (e *ParseError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrParse) hold for every *ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrParse }
