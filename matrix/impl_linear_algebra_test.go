// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the arithmetic kernels
// Add, Sub, Mul and Scale, including their facades and method forms.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestArithmeticScenarios checks the worked 2×2 examples.
func TestArithmeticScenarios(t *testing.T) {
	t.Parallel()

	A := MustRows(t, [][]int{{1, 2}, {3, 4}})
	B := MustRows(t, [][]int{{5, 6}, {7, 8}})

	sum, err := matrix.Add(A, B)
	require.NoError(t, err)
	RequireSameRows(t, [][]int{{6, 8}, {10, 12}}, sum)

	prod, err := matrix.Mul(A, B)
	require.NoError(t, err)
	RequireSameRows(t, [][]int{{19, 22}, {43, 50}}, prod)

	diff, err := matrix.Sub(A, B)
	require.NoError(t, err)
	RequireSameRows(t, [][]int{{-4, -4}, {-4, -4}}, diff)

	scaled, err := matrix.Scale(A, 3)
	require.NoError(t, err)
	RequireSameRows(t, [][]int{{3, 6}, {9, 12}}, scaled)
}

// TestShapeLaws covers shape preservation for Add/Sub and m×k · k×n = m×n for Mul.
func TestShapeLaws(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ m, k, n int }{
		{1, 1, 1}, {2, 3, 4}, {4, 1, 5}, {3, 7, 2},
	} {
		A := RandomIntDense(t, tc.m, tc.k, int64(tc.m*100+tc.k))
		A2 := RandomIntDense(t, tc.m, tc.k, int64(tc.n))
		B := RandomIntDense(t, tc.k, tc.n, int64(tc.k*100+tc.n))

		sum, err := matrix.Add(A, A2)
		require.NoError(t, err)
		require.Equal(t, tc.m, sum.Rows())
		require.Equal(t, tc.k, sum.Cols())

		diff, err := matrix.Sub(A, A2)
		require.NoError(t, err)
		require.Equal(t, tc.m, diff.Rows())
		require.Equal(t, tc.k, diff.Cols())

		prod, err := matrix.Mul(A, B)
		require.NoError(t, err)
		require.Equal(t, tc.m, prod.Rows())
		require.Equal(t, tc.n, prod.Cols())
	}
}

// TestAddSubInverse verifies Sub(Add(A,B), B) == A for several seeds.
func TestAddSubInverse(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 8; seed++ {
		A := RandomIntDense(t, 3, 4, seed)
		B := RandomIntDense(t, 3, 4, seed*31)

		sum, err := matrix.Add(A, B)
		require.NoError(t, err)
		back, err := matrix.Sub(sum, B)
		require.NoError(t, err)
		RequireSameRows(t, A.ToRows(), back)
	}
}

// TestOperandsNotMutated checks that every kernel leaves both inputs untouched.
func TestOperandsNotMutated(t *testing.T) {
	t.Parallel()

	A := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	B := MustRows(t, [][]float64{{5, 6}, {7, 8}})
	wantA, wantB := A.ToRows(), B.ToRows()

	ops := map[string]func() (*matrix.Dense[float64], error){
		"Add":   func() (*matrix.Dense[float64], error) { return matrix.Add(A, B) },
		"Sub":   func() (*matrix.Dense[float64], error) { return matrix.Sub(A, B) },
		"Mul":   func() (*matrix.Dense[float64], error) { return matrix.Mul(A, B) },
		"Scale": func() (*matrix.Dense[float64], error) { return matrix.Scale(A, 2.5) },
	}
	for name, op := range ops {
		res, err := op()
		require.NoError(t, err, name)
		require.NotSame(t, A, res, name)
		require.NotSame(t, B, res, name)
		require.Equal(t, wantA, A.ToRows(), name)
		require.Equal(t, wantB, B.ToRows(), name)
	}
}

// TestDimensionMismatch covers shape errors and nil/empty operands.
func TestDimensionMismatch(t *testing.T) {
	t.Parallel()

	a23 := MustDense[int](t, 2, 3)
	a32 := MustDense[int](t, 3, 2)
	a22 := MustDense[int](t, 2, 2)
	empty := MustDense[int](t, 1, 1)
	_ = empty.Move()

	tests := []struct {
		name    string
		run     func() (*matrix.Dense[int], error)
		wantErr error
	}{
		{"add rows", func() (*matrix.Dense[int], error) { return matrix.Add(a23, a32) }, matrix.ErrDimensionMismatch},
		{"add cols", func() (*matrix.Dense[int], error) { return matrix.Add(a22, a23) }, matrix.ErrDimensionMismatch},
		{"sub shape", func() (*matrix.Dense[int], error) { return matrix.Sub(a23, a22) }, matrix.ErrDimensionMismatch},
		{"mul inner", func() (*matrix.Dense[int], error) { return matrix.Mul(a23, a23) }, matrix.ErrDimensionMismatch},
		{"mul inner rev", func() (*matrix.Dense[int], error) { return matrix.Mul(a22, a32) }, matrix.ErrDimensionMismatch},
		{"add nil", func() (*matrix.Dense[int], error) { return matrix.Add(nil, a22) }, matrix.ErrNilMatrix},
		{"mul nil", func() (*matrix.Dense[int], error) { return matrix.Mul(a22, nil) }, matrix.ErrNilMatrix},
		{"scale nil", func() (*matrix.Dense[int], error) { return matrix.Scale[int](nil, 2) }, matrix.ErrNilMatrix},
		{"scale empty", func() (*matrix.Dense[int], error) { return matrix.Scale(empty, 2) }, matrix.ErrEmptyMatrix},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			res, err := tc.run()
			require.ErrorIs(t, err, tc.wantErr)
			require.Nil(t, res)
		})
	}

	// 2×3 · 3×2 is legal.
	res, err := matrix.Mul(a23, a32)
	require.NoError(t, err)
	require.Equal(t, 2, res.Rows())
	require.Equal(t, 2, res.Cols())
}

// TestErrorCarriesOpTag ensures kernels prefix the operation name.
func TestErrorCarriesOpTag(t *testing.T) {
	_, err := matrix.Mul(MustDense[int](t, 2, 3), MustDense[int](t, 2, 3))
	require.ErrorContains(t, err, "Mul: ValidateMulCompatible")
}

// TestSubUnsigned ensures Sub is a direct difference (no negation of T).
func TestSubUnsigned(t *testing.T) {
	A := MustRows(t, [][]uint8{{10, 200}})
	B := MustRows(t, [][]uint8{{3, 50}})

	diff, err := matrix.Sub(A, B)
	require.NoError(t, err)
	RequireSameRows(t, [][]uint8{{7, 150}}, diff)

	// Below zero wraps as uint8's own '-' does.
	wrap, err := matrix.Sub(B, A)
	require.NoError(t, err)
	RequireSameRows(t, [][]uint8{{249, 106}}, wrap)
}

// TestMulAccumulationOrder checks Σ_k runs k=0..n-1 starting from zero.
// With float64, (1e16 + 1) + -1e16 differs from 1e16 + (1 + -1e16).
func TestMulAccumulationOrder(t *testing.T) {
	A := MustRows(t, [][]float64{{1e16, 1, -1e16}})
	B := MustRows(t, [][]float64{{1}, {1}, {1}})

	res, err := matrix.Mul(A, B)
	require.NoError(t, err)
	v, err := res.At(0, 0)
	require.NoError(t, err)

	want := 0.0
	for _, x := range []float64{1e16, 1, -1e16} {
		want += x
	}
	require.Equal(t, want, v)
}

// TestMulFloatSpecials ensures zero entries still multiply (0*Inf = NaN).
func TestMulFloatSpecials(t *testing.T) {
	A := MustRows(t, [][]float64{{0, 1}})
	B := MustRows(t, [][]float64{{math.Inf(1)}, {2}})

	res, err := matrix.Mul(A, B)
	require.NoError(t, err)
	v, err := res.At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsNaN(v))
}

// TestComplexElements runs the kernels over complex128.
func TestComplexElements(t *testing.T) {
	A := MustRows(t, [][]complex128{{1i, 0}, {0, 1i}})

	sq, err := matrix.Mul(A, A)
	require.NoError(t, err)
	RequireSameRows(t, [][]complex128{{-1, 0}, {0, -1}}, sq)
}

// TestFacadesAndMethods ensures aliases and method sugar agree with the kernels.
func TestFacadesAndMethods(t *testing.T) {
	A := MustRows(t, [][]int{{1, 2}, {3, 4}})
	B := MustRows(t, [][]int{{5, 6}, {7, 8}})

	pairs := []struct {
		name     string
		fn, meth func() (*matrix.Dense[int], error)
	}{
		{"sum", func() (*matrix.Dense[int], error) { return matrix.Sum(A, B) }, func() (*matrix.Dense[int], error) { return A.Add(B) }},
		{"diff", func() (*matrix.Dense[int], error) { return matrix.Diff(A, B) }, func() (*matrix.Dense[int], error) { return A.Sub(B) }},
		{"product", func() (*matrix.Dense[int], error) { return matrix.Product(A, B) }, func() (*matrix.Dense[int], error) { return A.Mul(B) }},
		{"scale", func() (*matrix.Dense[int], error) { return matrix.ScaleBy(A, 3) }, func() (*matrix.Dense[int], error) { return A.Scale(3) }},
	}
	for _, p := range pairs {
		x, err := p.fn()
		require.NoError(t, err, p.name)
		y, err := p.meth()
		require.NoError(t, err, p.name)
		require.Equal(t, x.ToRows(), y.ToRows(), p.name)
	}
}

// TestIdentityAndZeros covers NewIdentity, NewZeros, ZerosLike and IdentityLike.
func TestIdentityAndZeros(t *testing.T) {
	I, err := matrix.NewIdentity[int](3)
	require.NoError(t, err)
	RequireSameRows(t, [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I)

	_, err = matrix.NewIdentity[int](0)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)

	Z, err := matrix.NewZeros[float32](2, 3)
	require.NoError(t, err)
	RequireSameRows(t, [][]float32{{0, 0, 0}, {0, 0, 0}}, Z)

	ZL, err := matrix.ZerosLike(Z)
	require.NoError(t, err)
	require.Equal(t, 2, ZL.Rows())
	require.Equal(t, 3, ZL.Cols())

	_, err = matrix.IdentityLike(Z)
	require.ErrorIs(t, err, matrix.ErrNotSquare)

	IL, err := matrix.IdentityLike(I)
	require.NoError(t, err)
	RequireSameRows(t, I.ToRows(), IL)

	// A·I == A for any square A.
	A := RandomIntDense(t, 3, 3, 7)
	I64, err := matrix.IdentityLike(A)
	require.NoError(t, err)
	AI, err := matrix.Mul(A, I64)
	require.NoError(t, err)
	RequireSameRows(t, A.ToRows(), AI)
}
