package window

import "testing"

func BenchmarkValues(b *testing.B) {
	sizes := []int{256, 1024, 4096}
	for _, n := range sizes {
		ys := make([]float64, n)
		for i := range ys {
			ys[i] = float64(i) * 0.01
		}
		dst := make([]float64, n)

		b.Run("tophat/"+itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Values(dst, KindTopHat, ys)
			}
		})
		b.Run("gaussian/"+itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Values(dst, KindGaussian, ys)
			}
		})
		b.Run("smoothk/"+itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Values(dst, KindSmoothK, ys)
			}
		})
	}
}

func BenchmarkLogDerivs(b *testing.B) {
	n := 4096
	ys := make([]float64, n)
	for i := range ys {
		ys[i] = float64(i) * 0.01
	}
	dst := make([]float64, n)

	b.Run("tophat", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = LogDerivs(dst, KindTopHat, ys)
		}
	})
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	buf := [20]byte{}
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
