// SPDX-License-Identifier: MIT

package cyclo

import "math"

// TrH returns tr_h(n), the rounded trace of H_n.
func TrH(n uint64) (uint64, error) {
	tr, err := TraceH(n)
	if err != nil {
		return 0, err
	}

	return tr.Value, nil
}

// Cond returns cond(n) = φ(n)·sqrt(tr_h(n)/n), the condition number of V_n.
// n = 0 fails with ErrInvalidInput before any division.
func Cond(n uint64) (float64, error) {
	tr, err := TraceH(n)
	if err != nil {
		return 0, err
	}

	return CondOf(tr), nil
}

// CondOf derives cond(n) from an already computed trace. The result is
// non-negative and finite for every Trace returned without error.
func CondOf(tr Trace) float64 {
	if tr.N == 0 {
		return 0
	}

	return float64(tr.Dim) * math.Sqrt(float64(tr.Value)/float64(tr.N))
}
