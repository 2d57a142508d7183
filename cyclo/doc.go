// SPDX-License-Identifier: MIT

// Package cyclo computes two invariants of the cyclotomic Vandermonde matrix
// V_n, the Vandermonde matrix whose nodes are the primitive n-th roots of unity:
//
//   - tr_h(n), the trace of the integer matrix H_n = n·G_n⁻¹, where G_n is the
//     Gram matrix of V_n;
//   - cond(n) = φ(n)·sqrt(tr_h(n)/n), the condition number of V_n.
//
// Pipeline (strictly sequential for one n):
//
//	Coefficients(n)  v[t] = μ(n/g)·φ(n)/φ(n/g), g = gcd(n,t), t = 0..φ(n)-1
//	Gram(n)          G[i,j] = v[|j-i|]                (symmetric Toeplitz, m = φ(n))
//	H(n)             n·G⁻¹                            (Doolittle LU, no pivoting)
//	TraceH(n)        round(trace(H)) + residual diagnostics
//	TrH(n), Cond(n)  the two invariants
//
// Every call is a pure function of n; nothing is shared between invocations
// unless the caller opts into Memo.
//
// Precision. G_n is inverted in float64 and the trace is rounded to the
// nearest integer. H_n is integral in exact arithmetic, so the distance of its
// entries to the nearest integer (Trace.Residual) measures the accumulated
// drift. The drift grows with m = φ(n) and with the magnitude of H_n, so
// Tolerance is relative to both: inputs with m ≤ MaxReliableDim are expected
// to stay within Tolerance(m, Raw); otherwise the rounded value is still
// returned but Trace.Reliable reports false. Dimensions above MaxDim are
// rejected with ErrInvalidInput before any allocation.
//
// Mode selects which invariant the table and get entry points print.
package cyclo
