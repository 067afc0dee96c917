// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical kernel.
//   - Offer method-form sugar (a.Add(b), a.Pow(3)) over the named functions.

package matrix

import "fmt"

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros[T Element](rows, cols int) (*Dense[T], error) {
	return NewDense[T](rows, cols)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidShape when n < 1.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T Element](n int) (*Dense[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewIdentity(%d): %w", n, ErrInvalidShape)
	}

	return identityOf[T](n), nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike[T Element](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense[T](m.r, m.c)
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike[T Element](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return identityOf[T](m.r), nil
}

// ---------- Aliases ----------

// Sum is an alias for Add: element-wise a + b.
func Sum[T Element](a, b *Dense[T]) (*Dense[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff[T Element](a, b *Dense[T]) (*Dense[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product[T Element](a, b *Dense[T]) (*Dense[T], error) { return Mul(a, b) }

// ScaleBy is an alias for Scale: s*m.
func ScaleBy[T Element](m *Dense[T], s T) (*Dense[T], error) { return Scale(m, s) }

// ---------- Method sugar ----------

// Add returns m + b. See the package-level Add.
func (m *Dense[T]) Add(b *Dense[T]) (*Dense[T], error) { return Add(m, b) }

// Sub returns m − b. See the package-level Sub.
func (m *Dense[T]) Sub(b *Dense[T]) (*Dense[T], error) { return Sub(m, b) }

// Mul returns m × b. See the package-level Mul.
func (m *Dense[T]) Mul(b *Dense[T]) (*Dense[T], error) { return Mul(m, b) }

// Scale returns s*m. See the package-level Scale.
func (m *Dense[T]) Scale(s T) (*Dense[T], error) { return Scale(m, s) }

// Pow returns m^p. See the package-level Pow.
func (m *Dense[T]) Pow(p int) (*Dense[T], error) { return Pow(m, p) }
