package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/qplace/matrix"
)

// chainSystem builds the anchored chain Laplacian of size n and its
// right-hand side (left anchor at 0, right anchor at 2(n+1)).
func chainSystem(b *testing.B, n int) (*matrix.Dense, []float64) {
	b.Helper()
	a, err := matrix.NewSquare(n)
	if err != nil {
		b.Fatalf("NewSquare(%d): %v", n, err)
	}
	rhs := make([]float64, n)
	for i := 0; i < n; i++ {
		if err = a.Set(i, i, 4); err != nil {
			b.Fatalf("Set: %v", err)
		}
		if i > 0 {
			_ = a.Set(i, i-1, -2)
		}
		if i < n-1 {
			_ = a.Set(i, i+1, -2)
		}
	}
	rhs[n-1] = 2 * float64(2*(n+1))

	return a, rhs
}

func BenchmarkGaussSeidel(b *testing.B) {
	for _, n := range []int{8, 32, 128} {
		a, rhs := chainSystem(b, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := matrix.GaussSeidel(a, rhs, 1e-6, 100000); err != nil {
					b.Fatalf("GaussSeidel: %v", err)
				}
			}
		})
	}
}

func BenchmarkDenseAddAt(b *testing.B) {
	a, _ := chainSystem(b, 64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = a.AddAt(3, 4, -2)
		_ = a.AddAt(4, 3, -2)
	}
}
