// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels on Dense: element-wise
// addition and subtraction, matrix multiplication and scalar scaling.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Purpose:
//   - Canonical kernels used by facades (api.go) and by Pow (impl_power.go).
//   - Operation tags and the shared matrixErrorf wrapper for error reporting.
//
// Notes:
//   - Kernels never mutate their operands; every result is freshly allocated.
//   - Kernels use central validators and wrap via matrixErrorf.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd   = "Add"
	opSub   = "Sub"
	opMul   = "Mul"
	opScale = "Scale"
	opPow   = "Pow"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are usable and have identical shapes.
//   - Stage 2: Single flat loop 0..n-1 over both buffers.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix (unusable input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Element](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + b.data[idx]
	}

	return res, nil
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// The difference is taken directly per cell, so T never needs a negation
// (unsigned element types wrap exactly as their own '-' does).
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix (unusable input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub[T Element](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for idx := range res.data {
		res.data[idx] = a.data[idx] - b.data[idx]
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j over row-major strides. Every C[i,j] starts at T(0)
//     and receives A[i,k]*B[k,j] for k = 0,1,...,n-1 in ascending order, so
//     floating-point results match the textbook Σ_k evaluation.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Element](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res := &Dense[T]{r: aRows, c: bCols, data: make([]T, aRows*bCols)}

	// da layout: i*aCols + k; db layout: k*bCols + j.
	var (
		i, j, k                            int
		rowOffsetA, rowOffsetB, rowOffsetR int
		av                                 T
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Scale returns a copy of m with every element multiplied by s.
// No shape constraint applies.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale[T Element](m *Dense[T], s T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := m.Clone()
	for idx := range res.data {
		res.data[idx] *= s
	}

	return res, nil
}
