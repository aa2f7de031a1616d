// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/strassen/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkV []float32
	sinkE matrix.Element
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandIntDense(b, n, 1337, 100)
			B := RandIntDense(b, n, 4242, 100)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Sum(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkSub(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandIntDense(b, n, 11, 100)
			B := RandIntDense(b, n, 22, 100)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Diff(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMulNaive(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandIntDense(b, n, 5, 100)
			B := RandIntDense(b, n, 6, 100)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Product(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMulStrassen(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		for _, threshold := range []int{32, matrix.DefaultThreshold, 128} {
			b.Run(fmt.Sprintf("n=%d/threshold=%d", n, threshold), func(b *testing.B) {
				A := RandIntDense(b, n, 5, 100)
				B := RandIntDense(b, n, 6, 100)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					m, err := matrix.Strassen(A, B, matrix.WithThreshold(threshold))
					if err != nil {
						b.Fatal(err)
					}
					sinkM = m
				}
			})
		}
	}
}

func BenchmarkMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandIntDense(b, n, 7, 100)
			x := make([]float32, n)
			for i := range x {
				x[i] = float32(i % 17)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := matrix.MatVecMul(A, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}

func BenchmarkFindMax(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandIntDense(b, n, 8, 1000)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				e, err := matrix.Max(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkE = e
			}
		})
	}
}
