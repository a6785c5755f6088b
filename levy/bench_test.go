package levy

import (
	"math"
	"testing"
)

func benchmarkSimulate(b *testing.B, variant Variant, ws *Workspace) {
	w := []float64{1.0, -0.5, 0.25, 0.8, -1.3}
	h := 0.01
	eps := math.Pow(h, 1.5)
	opts := &Options{Variant: variant, Src: NewSource(1), Workspace: ws}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Simulate(w, h, eps, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSimulateBaseline(b *testing.B) {
	benchmarkSimulate(b, Baseline, nil)
}

func BenchmarkSimulateTailCorrected(b *testing.B) {
	benchmarkSimulate(b, TailCorrected, nil)
}

func BenchmarkSimulateTailCorrectedWorkspace(b *testing.B) {
	ws, err := NewWorkspace(5)
	if err != nil {
		b.Fatal(err)
	}
	benchmarkSimulate(b, TailCorrected, ws)
}
