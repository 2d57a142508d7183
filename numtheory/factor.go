// SPDX-License-Identifier: MIT

package numtheory

import (
	"fmt"
	"strconv"
	"strings"
)

// Factor is one prime power p^k of a factorization.
type Factor struct {
	Prime uint64 // p, strictly increasing across a Factorization
	Exp   int    // k ≥ 1
}

// Factorization is the prime factorization of a positive integer, sorted by
// increasing prime. The empty Factorization represents 1.
type Factorization []Factor

// Factorize returns the prime factorization of n ≥ 1 by trial division.
//
// Implementation:
//   - Stage 1: strip factors of 2.
//   - Stage 2: try odd divisors d while d ≤ n/d (no d*d overflow).
//   - Stage 3: the remaining cofactor > 1 is prime.
//
// Errors:
//   - ErrZero for n == 0.
//
// Complexity:
//   - Time O(√n) worst case, Space O(ω(n)).
func Factorize(n uint64) (Factorization, error) {
	if n == 0 {
		return nil, ErrZero
	}

	var f Factorization
	if n%2 == 0 {
		k := 0
		for n%2 == 0 {
			n /= 2
			k++
		}
		f = append(f, Factor{Prime: 2, Exp: k})
	}
	for d := uint64(3); d <= n/d; d += 2 {
		if n%d != 0 {
			continue
		}
		k := 0
		for n%d == 0 {
			n /= d
			k++
		}
		f = append(f, Factor{Prime: d, Exp: k})
	}
	if n > 1 {
		f = append(f, Factor{Prime: n, Exp: 1})
	}

	return f, nil
}

// Value multiplies the factorization back out.
func (f Factorization) Value() uint64 {
	v := uint64(1)
	for _, pk := range f {
		for i := 0; i < pk.Exp; i++ {
			v *= pk.Prime
		}
	}

	return v
}

// Totient returns φ of the factored value: Π p^(k-1)·(p-1).
func (f Factorization) Totient() uint64 {
	phi := uint64(1)
	for _, pk := range f {
		phi *= pk.Prime - 1
		for i := 1; i < pk.Exp; i++ {
			phi *= pk.Prime
		}
	}

	return phi
}

// Squarefree reports whether no prime appears with exponent > 1.
func (f Factorization) Squarefree() bool {
	for _, pk := range f {
		if pk.Exp > 1 {
			return false
		}
	}

	return true
}

// Mobius returns μ of the factored value.
func (f Factorization) Mobius() int64 {
	if !f.Squarefree() {
		return 0
	}
	if len(f)%2 == 1 {
		return -1
	}

	return 1
}

// Quotient returns the factorization of n/d, where n is the factored value,
// without factoring again. Returns ErrNotDivisor when d does not divide n
// and ErrZero for d == 0.
// Complexity: O(ω(n) + log d).
func (f Factorization) Quotient(d uint64) (Factorization, error) {
	if d == 0 {
		return nil, ErrZero
	}

	out := make(Factorization, 0, len(f))
	for _, pk := range f {
		k := pk.Exp
		for k > 0 && Divides(pk.Prime, d) {
			d /= pk.Prime
			k--
		}
		if Divides(pk.Prime, d) {
			// d still carries p after all of n's copies were removed.
			return nil, fmt.Errorf("Quotient: %w", ErrNotDivisor)
		}
		if k > 0 {
			out = append(out, Factor{Prime: pk.Prime, Exp: k})
		}
	}
	if d != 1 {
		return nil, fmt.Errorf("Quotient: %w", ErrNotDivisor)
	}

	return out, nil
}

// String renders the factorization as "2^3 * 5"; 1 renders as "1".
func (f Factorization) String() string {
	if len(f) == 0 {
		return "1"
	}
	parts := make([]string, len(f))
	for i, pk := range f {
		p := strconv.FormatUint(pk.Prime, 10)
		if pk.Exp > 1 {
			p += "^" + strconv.Itoa(pk.Exp)
		}
		parts[i] = p
	}

	return strings.Join(parts, " * ")
}
