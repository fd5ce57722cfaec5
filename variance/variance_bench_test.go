package variance

import (
	"testing"

	"github.com/cwbudde/algo-cosmo/internal/testutil"
	"github.com/cwbudde/algo-cosmo/window"
)

func BenchmarkCalculate(b *testing.B) {
	ks, ps := testutil.PowerLawSpectrum(512, 1e-3, 1e2, 1, -1)
	tbl := mustTable(b, ks, ps)

	kinds := []window.Kind{
		window.KindTopHat,
		window.KindSharpK,
		window.KindGaussian,
		window.KindSmoothK,
	}
	for _, kind := range kinds {
		c, err := NewCalculator(tbl, Config{Window: kind, NRBin: 64, RMin: 0.01, RMax: 50})
		if err != nil {
			b.Fatal(err)
		}
		b.Run(kind.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for range b.N {
				if _, err := c.Calculate(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
