// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclovander/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions, so
// kernels take the interface (non-*Dense) path.
//
// AI-Hints:
//   - Wrap ONLY the operand you want to de-opt; keep the other one *Dense to
//     isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err, "NewDense(%d,%d)", r, c)

	return m
}

// NewFilledDense builds an r×c *Dense from row-major vals or fails the test.
func NewFilledDense(tb testing.TB, r, c int, vals []float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(tb, err, "NewDenseFrom(%d,%d)", r, c)

	return m
}

// RandFilledDense returns an r×c *Dense with values in [-1,1) from a fixed seed.
func RandFilledDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return NewFilledDense(tb, r, c, vals)
}

// RandSPD returns A = MᵀM + n·I, a well-conditioned symmetric positive-definite matrix.
func RandSPD(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	M := RandFilledDense(tb, n, n, seed)
	vals := make([]float64, n*n)
	var i, j, k int
	var sum, a, b float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sum = 0
			for k = 0; k < n; k++ {
				a, _ = M.At(k, i)
				b, _ = M.At(k, j)
				sum += a * b
			}
			if i == j {
				sum += float64(n)
			}
			vals[i*n+j] = sum
		}
	}

	return NewFilledDense(tb, n, n, vals)
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err, "At(%d,%d)", i, j)

	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet(tb testing.TB, m matrix.Matrix, i, j int, v float64) {
	tb.Helper()
	require.NoError(tb, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// RequireIdentity asserts m ≈ I within tol, element by element.
func RequireIdentity(tb testing.TB, m matrix.Matrix, tol float64) {
	tb.Helper()
	require.Equal(tb, m.Rows(), m.Cols(), "identity must be square")
	var want float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			want = 0
			if i == j {
				want = 1
			}
			require.InDelta(tb, want, MustAt(tb, m, i, j), tol, "[%d,%d]", i, j)
		}
	}
}

// RequireEqualMatrix asserts a and b have equal shapes and bitwise-equal elements.
func RequireEqualMatrix(tb testing.TB, a, b matrix.Matrix) {
	tb.Helper()
	require.Equal(tb, a.Rows(), b.Rows(), "rows")
	require.Equal(tb, a.Cols(), b.Cols(), "cols")
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			x, y := MustAt(tb, a, i, j), MustAt(tb, b, i, j)
			require.Equal(tb, math.Float64bits(x), math.Float64bits(y), "[%d,%d]: %v != %v", i, j, x, y)
		}
	}
}
