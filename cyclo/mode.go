// SPDX-License-Identifier: MIT

package cyclo

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects which invariant an entry point reports.
type Mode int

const (
	// ModeCond reports cond(n). It is the zero value and the default.
	ModeCond Mode = iota
	// ModeTrace reports tr_h(n).
	ModeTrace
)

const (
	headerCond  = "n\tCond(V_n)"
	headerTrace = "n\tTr(H_n)"
)

// ParseMode maps "cond" and "trace" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cond":
		return ModeCond, nil
	case "trace":
		return ModeTrace, nil
	default:
		return ModeCond, fmt.Errorf("mode %q: want cond or trace: %w", s, ErrInvalidInput)
	}
}

// String returns the name accepted by ParseMode.
func (m Mode) String() string {
	if m == ModeTrace {
		return "trace"
	}

	return "cond"
}

// Header returns the two-column table header for m.
func (m Mode) Header() string {
	if m == ModeTrace {
		return headerTrace
	}

	return headerCond
}

// Format renders the invariant selected by m. Traces print as integers and
// condition numbers in the shortest decimal form that round-trips.
func (m Mode) Format(tr Trace) string {
	if m == ModeTrace {
		return strconv.FormatUint(tr.Value, 10)
	}

	return strconv.FormatFloat(CondOf(tr), 'f', -1, 64)
}

// TraceFunc computes the trace of H_n. TraceH and (*Memo).TraceH satisfy it.
type TraceFunc func(n uint64) (Trace, error)

// Eval computes n under m and returns the formatted result.
func (m Mode) Eval(n uint64) (string, error) {
	return m.EvalWith(n, TraceH)
}

// EvalWith is Eval with a caller-supplied trace source.
func (m Mode) EvalWith(n uint64, fn TraceFunc) (string, error) {
	tr, err := fn(n)
	if err != nil {
		return "", err
	}

	return m.Format(tr), nil
}
