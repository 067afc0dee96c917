// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep the rectangularity invariant structural: one flat buffer, len == rows*cols.
//   - Make ownership explicit: Clone/CopyFrom duplicate, Move transfers.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Row: O(c); Clone: O(r*c); Move: O(1).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxFromRows = "FromRows" // ctor tag for NewDenseFromRows
	ctxCopyFrom = "CopyFrom" // method tag for Dense.CopyFrom
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel stays reachable via errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over T.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value and a moved-from Dense are empty (0×0) and are rejected by
// every operation with ErrEmptyMatrix or ErrOutOfRange.
type Dense[T Element] struct {
	r, c int // row and column counts (>=1 unless empty)
	data []T // contiguous row-major storage (len == r*c)
}

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidShape.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidShape (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Element](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidShape)
	}

	// make() zero-fills deterministically; T(0) is the additive identity.
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// NewDenseFromRows builds a matrix from fully populated rows.
// The rows are duplicated; later changes to the argument do not reach the
// matrix.
//
// Errors:
//   - ErrInvalidShape when len(rows)==0 or the first row is empty.
//   - ErrRaggedRows when any row length differs from the first.
func NewDenseFromRows[T Element](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewDense%s: %w", ctxFromRows, ErrInvalidShape)
	}
	r, c := len(rows), len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewDense%s: row %d has %d elements, want %d: %w",
				ctxFromRows, i, len(rows[i]), c, ErrRaggedRows)
		}
	}

	m := &Dense[T]{r: r, c: c, data: make([]T, r*c)}
	for i := 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether m holds no storage (zero value or moved-from).
func (m *Dense[T]) IsEmpty() bool { return m.r == 0 || m.c == 0 }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates; never returns a guessed default
//     for an invalid position.
//
// Errors:
//   - ErrOutOfRange when out of bounds (wrapped as "Dense.At(r,c): ...").
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// This is the only element-level mutation on Dense.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns a copy of row i. Negative i counts from the end, so Row(-1)
// is the last row. The copy has a fixed length of Cols(); writing to it does
// not touch the matrix, use Set for that.
//
// Errors:
//   - ErrOutOfRange unless -Rows() <= i < Rows().
func (m *Dense[T]) Row(i int) ([]T, error) {
	idx := i
	if idx < 0 {
		idx += m.r
	}
	if idx < 0 || idx >= m.r {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[idx*m.c:(idx+1)*m.c])

	return out, nil
}

// ToRows returns a deep copy of all rows as a slice of slices.
// Complexity: O(r*c).
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy (new buffer, same shape).
// Mutations of the clone do not affect the original and vice versa.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// CopyFrom replaces m's shape and contents with a private copy of src
// (copy-assignment). The previous buffer is reused when it is large enough.
//
// Errors:
//   - ErrNilMatrix when m or src is nil.
func (m *Dense[T]) CopyFrom(src *Dense[T]) error {
	if m == nil || src == nil {
		return fmt.Errorf("Dense.%s: %w", ctxCopyFrom, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	n := len(src.data)
	if cap(m.data) >= n {
		m.data = m.data[:n]
	} else {
		m.data = make([]T, n)
	}
	copy(m.data, src.data)
	m.r, m.c = src.r, src.c

	return nil
}

// Move transfers m's storage into a new Dense and leaves m empty (0×0).
// The returned matrix is the sole owner of the buffer; m may only be
// reassigned (CopyFrom) or dropped afterwards.
// Complexity: O(1).
func (m *Dense[T]) Move() *Dense[T] {
	out := &Dense[T]{r: m.r, c: m.c, data: m.data}
	m.r, m.c, m.data = 0, 0, nil

	return out
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
// Complexity: O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, in row-major order.
// Complexity: O(r*c), Space O(1).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}
