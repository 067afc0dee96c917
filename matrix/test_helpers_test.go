// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep a slow reference power (repeated Mul) for cross-checking Pow.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// MustDense ALLOCATES an r×c zero matrix or fails the test.
func MustDense[T matrix.Element](t testing.TB, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows BUILDS a matrix from literal rows or fails the test.
func MustRows[T matrix.Element](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// RandomIntDense FILLS an r×c int64 matrix with values in [-5,5] from a fixed seed.
// Small magnitudes keep powers up to 6 of 4×4 matrices far from overflow.
func RandomIntDense(t testing.TB, r, c int, seed int64) *matrix.Dense[int64] {
	t.Helper()
	m := MustDense[int64](t, r, c)
	rng := rand.New(rand.NewSource(seed))
	m.Apply(func(_, _ int, _ int64) int64 { return rng.Int63n(11) - 5 })

	return m
}

// NaivePow MULTIPLIES a by itself p times starting from the identity.
func NaivePow[T matrix.Element](t testing.TB, a *matrix.Dense[T], p int) *matrix.Dense[T] {
	t.Helper()
	res, err := matrix.NewIdentity[T](a.Rows())
	require.NoError(t, err)
	for i := 0; i < p; i++ {
		res, err = matrix.Mul(res, a)
		require.NoError(t, err)
	}

	return res
}

// RequireSameRows ASSERTS shape and every element of got against want.
func RequireSameRows[T matrix.Element](t testing.TB, want [][]T, got *matrix.Dense[T]) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, want, got.ToRows())
}
