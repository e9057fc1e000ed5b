package extinction

import (
	"strconv"
	"testing"
)

func makeBenchWaves(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1000 + 32000*float64(i)/float64(n)
	}
	return out
}

func BenchmarkCCM89(b *testing.B) {
	sizes := []int{64, 256, 1024, 4096, 16384}
	for _, n := range sizes {
		wave := makeBenchWaves(n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				_, _ = CCM89(wave, 1.0, 3.1)
			}
		})
	}
}

func BenchmarkF99Curve(b *testing.B) {
	c, err := NewF99(DefaultRV)
	if err != nil {
		b.Fatal(err)
	}
	sizes := []int{64, 256, 1024, 4096, 16384}
	for _, n := range sizes {
		wave := makeBenchWaves(n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				_, _ = c.Evaluate(wave, 1.0)
			}
		})
	}
}

func BenchmarkNewF99(b *testing.B) {
	b.ReportAllocs()
	for range b.N {
		_, _ = NewF99(DefaultRV)
	}
}
