// SPDX-License-Identifier: MIT

// Package numtheory provides the exact integer arithmetic behind the
// cyclotomic engine: gcd, prime factorization, Euler's totient and the
// (generalized) Möbius function used by Ramanujan sums.
//
// What & Why:
//
//	Every quantity in this package is an exact unsigned or signed 64-bit
//	integer. Nothing is rounded; callers that need exact divisibility (the
//	Ramanujan-sum coefficients) can rely on the results being exact.
//
// Factorization is by trial division, which is more than enough for the
// inputs the engine can invert (φ(n) ≤ a few thousand ⇒ n ≤ ~10⁵). Reuse a
// Factorization (Quotient, Totient, Mobius) when many related values are
// needed for the same n.
//
// Complexity:
//
//	GCD: O(log min(a,b)).
//	Factorize: O(√n) divisions in the worst case (n prime).
//	Totient/Mobius on a Factorization: O(ω(n)), ω = number of distinct primes.
package numtheory
