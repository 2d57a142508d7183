// SPDX-License-Identifier: MIT
// Package cyclo: sentinel error set.

package cyclo

import "errors"

var (
	// ErrInvalidInput is returned for n = 0, t outside [0, φ(n)) or a
	// dimension above MaxDim. Raised before any numeric work begins.
	ErrInvalidInput = errors.New("cyclo: invalid input")

	// ErrInversion wraps a failed Gram inversion (singular pivot or a
	// non-finite inverse). The matrix cause stays reachable via errors.Is.
	ErrInversion = errors.New("cyclo: gram matrix inversion failed")

	// ErrInexactDivision signals φ(n/g) not dividing μ(n/g)·φ(n). It can only
	// come from a defect in the number-theory primitives; the coefficient is
	// never truncated.
	ErrInexactDivision = errors.New("cyclo: inexact coefficient division")
)
