// Package matrix_test provides benchmarks for the linear algebra kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/cyclovander/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkF float64
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandFilledDense(b, n, n, 1337)
			B := RandFilledDense(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkLU(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandSPD(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				L, _, err := matrix.LU(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = L
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandSPD(b, n, 9)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Inverse(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkSymmetricToeplitz(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			v := make([]float64, n)
			for k := range v {
				v[k] = math.Cos(float64(k))
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.NewSymmetricToeplitz(v)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTrace(b *testing.B) {
	A := RandFilledDense(b, 512, 512, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr, err := matrix.Trace(A)
		if err != nil {
			b.Fatal(err)
		}
		sinkF = tr
	}
}
