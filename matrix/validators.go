// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating nil/shape/square checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m is non-nil and still owns storage.
//
// Errors: ErrNilMatrix for nil, ErrEmptyMatrix for a zero-value or moved-from Dense.
// Complexity: O(1).
func ValidateNotNil[T Element](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if m.IsEmpty() {
		return validatorErrorf("ValidateNotNil", ErrEmptyMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are usable and have equal dimensions.
//
// Errors: ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape[T Element](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs usable.
//
// Errors: ErrNilMatrix, ErrEmptyMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T Element](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is usable and square (Rows == Cols).
//
// Errors: ErrNilMatrix, ErrEmptyMatrix, ErrNotSquare.
// Complexity: O(1).
func ValidateSquare[T Element](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNotSquare)
	}

	return nil
}
