// SPDX-License-Identifier: MIT

package numtheory

import "errors"

var (
	// ErrZero is returned when an argument that must be ≥ 1 is zero.
	ErrZero = errors.New("numtheory: argument must be >= 1")

	// ErrNotDivisor is returned when d does not divide n where the operation
	// requires it (Factorization.Quotient).
	ErrNotDivisor = errors.New("numtheory: not a divisor")
)
