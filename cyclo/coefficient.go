// SPDX-License-Identifier: MIT

package cyclo

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cyclovander/numtheory"
)

const (
	opCoefficient  = "Coefficient"
	opCoefficients = "Coefficients"
)

// cycloErrorf wraps err with an operation tag and the input n.
func cycloErrorf(op string, n uint64, err error) error {
	return fmt.Errorf("%s(n=%d): %w", op, n, err)
}

// Coefficient returns c_t(n) = μ(n/g)·φ(n)/φ(n/g) with g = gcd(n, t).
//
// It evaluates the formula literally through numtheory.MobiusRatio and
// numtheory.Totient. Use Coefficients for the whole sequence: it factorizes n
// once instead of once per call.
//
// Errors:
//   - ErrInvalidInput: n = 0, t ≥ φ(n), or φ(n) beyond int64.
//   - ErrInexactDivision: φ(n/g) does not divide the numerator.
func Coefficient(t, n uint64) (int64, error) {
	if n == 0 {
		return 0, cycloErrorf(opCoefficient, n, ErrInvalidInput)
	}
	phi, err := numtheory.Totient(n)
	if err != nil {
		return 0, cycloErrorf(opCoefficient, n, err)
	}
	if t >= phi {
		return 0, cycloErrorf(opCoefficient, n, fmt.Errorf("t=%d outside [0,%d): %w", t, phi, ErrInvalidInput))
	}
	if phi > math.MaxInt64 {
		return 0, cycloErrorf(opCoefficient, n, fmt.Errorf("φ(n)=%d overflows int64: %w", phi, ErrInvalidInput))
	}

	g := numtheory.GCD(n, t)
	mu, err := numtheory.MobiusRatio(n, g)
	if err != nil {
		return 0, cycloErrorf(opCoefficient, n, err)
	}
	phiQ, err := numtheory.Totient(n / g)
	if err != nil {
		return 0, cycloErrorf(opCoefficient, n, err)
	}

	c, err := divideExact(mu, phi, phiQ)
	if err != nil {
		return 0, cycloErrorf(opCoefficient, n, fmt.Errorf("t=%d: %w", t, err))
	}

	return c, nil
}

// Coefficients returns v[t] = c_t(n) for t = 0..φ(n)-1.
//
// Implementation:
//   - Stage 1: reject n = 0 and inputs whose dimension exceeds MaxDim. Since
//     φ(n) ≥ sqrt(n/2), any n > 2·MaxDim² is rejected before factorizing.
//   - Stage 2: factorize n once; v[0] = φ(n).
//   - Stage 3: c_t(n) depends on t only through g = gcd(n, t), a divisor of n,
//     so each distinct g is evaluated once from the factorization of n/g.
//
// Complexity:
//   - Time O(m·log n + d(n)·ω(n)) after an O(√n) factorization, Space O(m + d(n)).
func Coefficients(n uint64) ([]int64, error) {
	if n == 0 {
		return nil, cycloErrorf(opCoefficients, n, ErrInvalidInput)
	}
	if n/2 > MaxDim*MaxDim {
		return nil, cycloErrorf(opCoefficients, n, fmt.Errorf("dimension above %d: %w", MaxDim, ErrInvalidInput))
	}

	f, err := numtheory.Factorize(n)
	if err != nil {
		return nil, cycloErrorf(opCoefficients, n, err)
	}
	phi := f.Totient()
	if phi > MaxDim {
		return nil, cycloErrorf(opCoefficients, n, fmt.Errorf("φ(n)=%d above %d: %w", phi, MaxDim, ErrInvalidInput))
	}

	m := int(phi)
	v := make([]int64, m)
	byGCD := make(map[uint64]int64)
	var (
		t    uint64
		g    uint64
		c    int64
		seen bool
		q    numtheory.Factorization
	)
	for t = 0; t < phi; t++ {
		g = numtheory.GCD(n, t)
		if c, seen = byGCD[g]; !seen {
			q, err = f.Quotient(g)
			if err != nil {
				return nil, cycloErrorf(opCoefficients, n, err)
			}
			c, err = divideExact(q.Mobius(), phi, q.Totient())
			if err != nil {
				return nil, cycloErrorf(opCoefficients, n, fmt.Errorf("g=%d: %w", g, err))
			}
			byGCD[g] = c
		}
		v[t] = c
	}

	return v, nil
}

// divideExact returns mu·phi/phiQ, failing on a zero divisor or a remainder.
func divideExact(mu int64, phi, phiQ uint64) (int64, error) {
	if phiQ == 0 || phi%phiQ != 0 {
		return 0, fmt.Errorf("φ(n)=%d / φ(n/g)=%d: %w", phi, phiQ, ErrInexactDivision)
	}
	if mu == 0 {
		return 0, nil
	}

	return mu * int64(phi/phiQ), nil
}
