// SPDX-License-Identifier: MIT

// Package matrix is the dense real linear-algebra layer used by the
// cyclotomic engine.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface over two-dimensional float64 storage, and
//     Dense, its row-major implementation with bounds-checked At/Set.
//   - NewSymmetricToeplitz, which folds a coefficient sequence v into the
//     symmetric Toeplitz matrix A[i,j] = v[|j-i|].
//   - LU (Doolittle, no pivoting) and Inverse built on it, plus Mul, Scale
//     and Trace.
//   - MaxIntegerResidual, which measures how far a matrix that is integral
//     in exact arithmetic drifted under floating point.
//
// All functions validate their inputs through validators.go and return
// sentinel errors from errors.go (match them with errors.Is). No function
// panics on user-triggered conditions; Option constructors panic only on
// nonsensical parameters.
//
// Numerical note: inversion does not pivot. That keeps results bit-for-bit
// reproducible and is stable for symmetric positive-definite inputs such as
// Gram matrices, which is the only workload this package is tuned for.
package matrix
