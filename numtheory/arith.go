// SPDX-License-Identifier: MIT

package numtheory

import "fmt"

// GCD returns the greatest common divisor of a and b (Euclid).
// By convention GCD(a, 0) = a and GCD(0, 0) = 0.
// Complexity: O(log min(a,b)).
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// Divides reports whether d divides n. Zero divides only zero.
func Divides(d, n uint64) bool {
	if d == 0 {
		return n == 0
	}

	return n%d == 0
}

// Totient returns Euler's φ(n) for n ≥ 1.
// Returns ErrZero for n == 0.
func Totient(n uint64) (uint64, error) {
	f, err := Factorize(n)
	if err != nil {
		return 0, fmt.Errorf("Totient(%d): %w", n, err)
	}

	return f.Totient(), nil
}

// Mobius returns the classical Möbius function μ(n) for n ≥ 1:
// 0 if n has a squared prime factor, otherwise (-1)^k for k distinct primes.
func Mobius(n uint64) (int64, error) {
	f, err := Factorize(n)
	if err != nil {
		return 0, fmt.Errorf("Mobius(%d): %w", n, err)
	}

	return f.Mobius(), nil
}

// MobiusRatio is the generalized Möbius function mobius(n, d) used in
// Ramanujan-sum theory: μ(n/d) when d divides n, and 0 otherwise.
//
// With g = gcd(n, t) the Ramanujan sum reads
//
//	c_n(t) = MobiusRatio(n, g) · φ(n) / φ(n/g).
//
// Returns ErrZero when n or d is zero.
func MobiusRatio(n, d uint64) (int64, error) {
	if n == 0 || d == 0 {
		return 0, fmt.Errorf("MobiusRatio(%d,%d): %w", n, d, ErrZero)
	}
	if !Divides(d, n) {
		return 0, nil
	}

	return Mobius(n / d)
}
