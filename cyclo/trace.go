// SPDX-License-Identifier: MIT

package cyclo

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/cyclovander/matrix"
)

const (
	// MaxReliableDim is the largest φ(n) for which the entries of H_n are
	// expected to stay within Tolerance of an integer.
	MaxReliableDim = 2048

	// MaxDim is the largest φ(n) accepted at all. An m×m float64 matrix of
	// this size takes 128 MiB, and the inversion keeps three of them.
	MaxDim = 4096

	// toleranceScale multiplies the unit m·|Raw|·ε in Tolerance. Residuals
	// measured for φ(n) ≤ MaxReliableDim peak at 1.3 units (n = 3135, 6270).
	toleranceScale = 4

	// epsilon is the float64 machine epsilon.
	epsilon = 0x1p-52
)

const (
	opH      = "H"
	opTraceH = "TraceH"
)

// Tolerance returns the largest accepted distance between an entry of H_n and
// the nearest integer, for a Gram matrix of dimension m and a trace raw.
// Inversion drift scales with both the dimension and the size of the entries,
// so the bound is relative: toleranceScale·m·max(|raw|, 1)·ε.
func Tolerance(m int, raw float64) float64 {
	if m < 1 {
		m = 1
	}

	return toleranceScale * float64(m) * math.Max(math.Abs(raw), 1) * epsilon
}

// Trace is the outcome of one tr_h(n) evaluation together with the
// diagnostics the rounding would otherwise discard.
type Trace struct {
	N        uint64  // input
	Dim      int     // m = φ(n)
	Value    uint64  // round(Raw); this is tr_h(n)
	Raw      float64 // trace of H_n before rounding
	Residual float64 // max over entries of |H[i,j] - round(H[i,j])|
}

// Tolerance returns Tolerance(tr.Dim, tr.Raw).
func (tr Trace) Tolerance() float64 {
	return Tolerance(tr.Dim, tr.Raw)
}

// Reliable reports whether every entry of H_n landed within tr.Tolerance()
// of an integer.
func (tr Trace) Reliable() bool {
	return tr.Residual <= tr.Tolerance()
}

// H returns H_n = n·G_n⁻¹.
//
// Errors:
//   - ErrInvalidInput from Coefficients.
//   - ErrInversion when G_n is singular or its inverse is not finite; the
//     matrix sentinel (matrix.ErrSingular, matrix.ErrNaNInf) stays matchable.
//
// Complexity:
//   - Time O(m³), Space O(m²).
func H(n uint64) (matrix.Matrix, error) {
	g, err := Gram(n)
	if err != nil {
		return nil, err
	}

	inv, err := matrix.Inverse(g)
	if err != nil {
		return nil, cycloErrorf(opH, n, fmt.Errorf("%w: %w", ErrInversion, err))
	}

	h, err := matrix.Scale(inv, float64(n))
	if err != nil {
		return nil, cycloErrorf(opH, n, err)
	}

	return h, nil
}

// TraceH computes H_n and returns its rounded trace with diagnostics.
//
// Implementation:
//   - Stage 1: H_n via H.
//   - Stage 2: Raw = Σ H[i,i]; Value = round-half-away-from-zero(Raw).
//     Rounding, never truncation: Raw is routinely an ulp below the integer.
//   - Stage 3: Residual = matrix.MaxIntegerResidual(H_n).
//
// A negative or non-finite Raw can only come from a broken inversion and is
// reported as ErrInversion rather than wrapped into a uint64.
func TraceH(n uint64) (Trace, error) {
	h, err := H(n)
	if err != nil {
		return Trace{}, err
	}

	raw, err := matrix.Trace(h)
	if err != nil {
		return Trace{}, cycloErrorf(opTraceH, n, err)
	}
	if math.IsNaN(raw) || math.IsInf(raw, 0) || raw < 0 {
		return Trace{}, cycloErrorf(opTraceH, n, fmt.Errorf("trace %g: %w", raw, ErrInversion))
	}

	residual, _, _, err := matrix.MaxIntegerResidual(h)
	if err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return Trace{}, cycloErrorf(opTraceH, n, fmt.Errorf("%w: %w", ErrInversion, err))
		}
		return Trace{}, cycloErrorf(opTraceH, n, err)
	}

	return Trace{
		N:        n,
		Dim:      h.Rows(),
		Value:    uint64(math.Round(raw)),
		Raw:      raw,
		Residual: residual,
	}, nil
}
