// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

const opToeplitz = "NewSymmetricToeplitz"

// NewSymmetricToeplitz builds the m×m matrix A[i,j] = v[|j-i|], m = len(v).
//
// Implementation:
//   - Stage 1: validate v is non-empty and (under the finite policy) finite.
//   - Stage 2: fill row i as v[i], v[i-1], ..., v[1], v[0], v[1], ..., v[m-1-i],
//     i.e. the reversed prefix followed by the forward suffix; no per-cell abs.
//
// Behavior highlights:
//   - Symmetric by construction (|j-i| = |i-j|); at most m distinct values.
//   - v is read-only; the matrix owns a fresh buffer.
//
// Errors:
//   - ErrEmptySequence when len(v) == 0.
//   - ErrNaNInf when v holds NaN/±Inf and the finite policy is on.
//
// Complexity:
//   - Time O(m²), Space O(m²).
//
// AI-Hints:
//   - Compute v once and pass it here; do not recompute coefficients per cell.
func NewSymmetricToeplitz(v []float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	m := len(v)
	if m == 0 {
		return nil, matrixErrorf(opToeplitz, ErrEmptySequence)
	}
	if o.validateNaNInf {
		for t, x := range v {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, matrixErrorf(opToeplitz, fmt.Errorf("v[%d]: %w", t, ErrNaNInf))
			}
		}
	}

	a, err := newDenseWithPolicy(m, m, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opToeplitz, err)
	}

	var i, j, base int
	for i = 0; i < m; i++ {
		base = i * m
		for j = 0; j < i; j++ {
			a.data[base+j] = v[i-j]
		}
		copy(a.data[base+i:base+m], v[:m-i])
	}

	return a, nil
}
