// SPDX-License-Identifier: MIT

// Package cyclovander computes two invariants of the cyclotomic Vandermonde
// matrix V_n: the integer trace of H_n = n·G_n⁻¹, where G_n = V_n·V_n* is the
// Gram matrix, and the spectral condition number cond(V_n) = φ(n)·sqrt(Tr(H_n)/n).
//
// G_n never has to be built from complex roots of unity. Its entries are
// Ramanujan sums c_t(n) = μ(n/g)·φ(n)/φ(n/g) with g = gcd(n, t), so the whole
// matrix is a real symmetric Toeplitz matrix over small integers.
//
// Under the hood the work is split into packages:
//
//	numtheory/  gcd, Euler's totient, Möbius function, factorization
//	matrix/     dense matrices: symmetric Toeplitz builder, LU, inverse, trace
//	cyclo/      coefficients, Gram matrix, Tr(H_n), cond(V_n), output modes, memo
//	batch/      concurrent line-oriented table runner with ordered output
//	progress/   spinner reporting the n currently being computed
//	config/     flags, CYCLOVANDER_* environment and config file, validated
//	logging/    slog loggers (tint on terminals, JSON otherwise)
//	metrics/    Prometheus collectors for batch runs, textfile export
//	cmd/        the cyclovander CLI: get <n> and table <file>
//
// Quick example:
//
//	$ cyclovander --trace get 105
//	1160
//	$ cyclovander table inputs.txt -t 8 --ordered > cond.tsv
//
//	go install github.com/katalvlaran/cyclovander/cmd/cyclovander@latest
package cyclovander
