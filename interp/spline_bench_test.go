package interp

import (
	"strconv"
	"testing"
)

func BenchmarkNaturalCubicEval(b *testing.B) {
	s, err := NewNaturalCubic(unevenKnotsX, unevenKnotsY)
	if err != nil {
		b.Fatal(err)
	}

	sizes := []int{64, 256, 1024, 4096, 16384}
	for _, n := range sizes {
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = s.Min() + (s.Max()-s.Min())*float64(i)/float64(n)
		}
		dst := make([]float64, n)

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				s.Eval(dst, xs)
			}
		})
	}
}
