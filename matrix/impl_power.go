// SPDX-License-Identifier: MIT
// Package matrix - integer powers of square matrices.
//
// Policy:
//   - p < 0  → ErrInvalidExponent.
//   - p == 0 → identity of the same dimension.
//   - p == 1 → a copy of the input.
//   - p ≥ 2  → exponentiation by squaring, O(log p) calls to Mul.

package matrix

import (
	"fmt"
	"math/bits"
)

// Pow computes A^p for a square A.
// Implementation:
//   - Stage 1: ValidateSquare(A); reject p < 0.
//   - Stage 2: base cases p==0 (identity) and p==1 (clone).
//   - Stage 3: H = A^(p/2); R = H×H; if p is odd R = R×A.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix, ErrNotSquare, ErrInvalidExponent.
//   - ErrInvalidOperation if a multiplication step fails; the cause stays
//     reachable through errors.Is.
//
// Complexity:
//   - Time O(n³·log p), Space O(n²·log p) for the recursion.
func Pow[T Element](a *Dense[T], p int) (*Dense[T], error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if p < 0 {
		return nil, matrixErrorf(opPow, fmt.Errorf("p=%d: %w", p, ErrInvalidExponent))
	}

	return powSquare(a, p)
}

// powSquare assumes a is square and p ≥ 0. Recursion depth is bits.Len(p).
func powSquare[T Element](a *Dense[T], p int) (*Dense[T], error) {
	switch p {
	case 0:
		return identityOf[T](a.r), nil
	case 1:
		return a.Clone(), nil
	}

	half, err := powSquare(a, p/2)
	if err != nil {
		return nil, err
	}
	res, err := Mul(half, half)
	if err != nil {
		return nil, powStepErr(p, "square", err)
	}
	if p%2 == 1 {
		if res, err = Mul(res, a); err != nil {
			return nil, powStepErr(p, "multiply", err)
		}
	}

	return res, nil
}

// powStepErr reports a failed Mul inside the squaring chain as
// ErrInvalidOperation while keeping the original cause in the chain.
func powStepErr(p int, step string, cause error) error {
	return matrixErrorf(opPow, fmt.Errorf("p=%d %s step (depth %d): %w: %w",
		p, step, bits.Len(uint(p)), ErrInvalidOperation, cause))
}

// identityOf returns I_n. Callers guarantee n ≥ 1.
func identityOf[T Element](n int) *Dense[T] {
	id := &Dense[T]{r: n, c: n, data: make([]T, n*n)}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id
}
