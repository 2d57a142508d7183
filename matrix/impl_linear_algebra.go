// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the cyclotomic
// engine: LU factorization, inversion, multiplication, scaling and trace.
// All functions perform strict fail-fast validation and return sentinel
// errors wrapped with an operation tag.
//
// Notes:
//   - Kernels call asDense once and then run on flat row-major slices, so any
//     Matrix implementation is accepted and *Dense inputs cost no copy.
//   - Loop orders are fixed; identical inputs give bit-identical outputs.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for dot-product accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul     = "Mul"
	opScale   = "Scale"
	opTrace   = "Trace"
	opInverse = "Inverse"
	opLU      = "LU"
	opResid   = "MaxIntegerResidual"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c). Loop order i→k→j keeps B's rows contiguous.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ad, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	r, inner, c := ad.r, ad.c, bd.c
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var i, k, j int
	var aik float64
	for i = 0; i < r; i++ {
		for k = 0; k < inner; k++ {
			aik = ad.data[i*inner+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < c; j++ {
				res.data[i*c+j] += aik * bd.data[k*c+j]
			}
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// The input is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	md, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(md.r, md.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx, v := range md.data {
		res.data[idx] = v * alpha
	}

	return res, nil
}

// Trace returns Σ_i m[i,i] for a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity:
//   - Time O(n), Space O(1) for *Dense.
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	n := m.Rows()
	var sum = ZeroSum
	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			sum += d.data[i*n+i]
		}
		return sum, nil
	}
	for i := 0; i < n; i++ {
		v, err := m.At(i, i)
		if err != nil {
			return 0, matrixErrorf(opTrace, err)
		}
		sum += v
	}

	return sum, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate Dense L,U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U, check the pivot, then column i of L.
//
// Behavior highlights:
//   - Deterministic loops on flat slices; pivot guard |U[i,i]| <= PivotTolerance.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Without pivoting this is only stable for inputs whose leading minors are
//     well away from zero (e.g. symmetric positive-definite matrices).
func LU(m Matrix, opts ...Option) (Matrix, Matrix, error) {
	o := gatherOptions(opts...)
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	a, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := a.r
	L, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	var (
		i, j, k      int
		baseI, baseJ int
		sum, pivot   float64
	)
	for i = 0; i < n; i++ {
		baseI = i * n
		// Row i of U: U[i][j] = A[i][j] - Σ_{k<i} L[i][k]·U[k][j], j ≥ i.
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[baseI+k] * U.data[k*n+j]
			}
			U.data[baseI+j] = a.data[baseI+j] - sum
		}

		pivot = U.data[baseI+i]
		if math.Abs(pivot) <= o.pivotTol {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("pivot %d = %g: %w", i, pivot, ErrSingular))
		}

		// Column i of L: L[j][i] = (A[j][i] - Σ_{k<i} L[j][k]·U[k][i]) / U[i][i], j > i.
		for j = i + 1; j < n; j++ {
			baseJ = j * n
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[baseJ+k] * U.data[k*n+i]
			}
			L.data[baseJ+i] = (a.data[baseJ+i] - sum) / pivot
		}
	}

	return L, U, nil
}

// Inverse computes A^{-1} via Doolittle LU without pivoting (deterministic).
// The input must be non-nil and square. Produces a new Dense; the input is read-only.
//
// Implementation:
//   - Stage 1: validate; factorize A = L·U.
//   - Stage 2: for each basis column e_col, forward-solve L·y = e_col
//     (starting at row col, since y[i] = 0 for i < col), then back-solve U·x = y.
//   - Stage 3: under the finite policy, reject a non-finite result (ErrNaNInf):
//     a matrix that is numerically singular without hitting an exact zero
//     pivot shows up here instead of leaking NaN/Inf to the caller.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular, ErrNaNInf.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - Use WithPivotTolerance to turn "tiny pivot" into ErrSingular when the
//     caller prefers a hard failure over a huge, meaningless inverse.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	Lm, Um, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	L, U := Lm.(*Dense), Um.(*Dense)

	n := L.r
	inv, err := newDenseWithPolicy(n, n, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k int
		base      int
		sum       float64
		y         = make([]float64, n) // forward substitution workspace
		x         = make([]float64, n) // backward substitution workspace
	)
	for col = 0; col < n; col++ {
		// Forward: L·y = e_col. Entries above col stay zero.
		for i = 0; i < col; i++ {
			y[i] = 0
		}
		y[col] = 1
		for i = col + 1; i < n; i++ {
			sum = ZeroSum
			base = i * n
			for k = col; k < i; k++ {
				sum += L.data[base+k] * y[k]
			}
			y[i] = -sum
		}
		// Backward: U·x = y.
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			base = i * n
			for k = i + 1; k < n; k++ {
				sum += U.data[base+k] * x[k]
			}
			x[i] = (y[i] - sum) / U.data[base+i]
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	if o.validateNaNInf {
		for idx, v := range inv.data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf(opInverse, denseErrorf(ctxAt, idx/n, idx%n, ErrNaNInf))
			}
		}
	}

	return inv, nil
}

// MaxIntegerResidual returns max_{i,j} |m[i,j] - round(m[i,j])| together with
// the coordinates where it occurs. For a matrix that is integral in exact
// arithmetic this is the accumulated floating-point drift.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf if an element is not finite.
//
// Complexity:
//   - Time O(r*c), Space O(1) for *Dense.
func MaxIntegerResidual(m Matrix) (residual float64, row, col int, err error) {
	if err = ValidateNotNil(m); err != nil {
		return 0, 0, 0, matrixErrorf(opResid, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, 0, 0, matrixErrorf(opResid, err)
	}

	d.Do(func(i, j int, v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			err = matrixErrorf(opResid, denseErrorf(ctxAt, i, j, ErrNaNInf))
			return false
		}
		if r := math.Abs(v - math.Round(v)); r > residual {
			residual, row, col = r, i, j
		}
		return true
	})
	if err != nil {
		return 0, 0, 0, err
	}

	return residual, row, col, nil
}
