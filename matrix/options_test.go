// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclovander/matrix"
)

// TestDefaultOptions_Documented verifies that NewMatrixOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewMatrixOptions()
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	require.Equal(t, matrix.DefaultPivotTolerance, o.PivotTolerance())
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
}

// TestNewMatrixOptions_LastWriterWins ensures each Option toggles exactly its intended field.
func TestNewMatrixOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewMatrixOptions(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.True(t, o.ValidateNaNInf())
	o = matrix.NewMatrixOptions(matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.False(t, o.ValidateNaNInf())

	o = matrix.NewMatrixOptions(matrix.WithEpsilon(1e-3), matrix.WithPivotTolerance(1e-6), nil)
	require.Equal(t, 1e-3, o.Epsilon())
	require.Equal(t, 1e-6, o.PivotTolerance())
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf(), "untouched field keeps its default")
}

func TestWithX_PanicsOnInvalid(t *testing.T) {
	for _, bad := range []float64{-1, math.NaN(), math.Inf(1)} {
		require.Panics(t, func() { matrix.WithEpsilon(bad) }, "WithEpsilon(%v)", bad)
		require.Panics(t, func() { matrix.WithPivotTolerance(bad) }, "WithPivotTolerance(%v)", bad)
	}
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
	require.NotPanics(t, func() { matrix.WithPivotTolerance(0) })
}
