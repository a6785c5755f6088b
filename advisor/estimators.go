package main

import (
	"fmt"
	"time"

	"levyarea/levy"
)

const bytesPerNumber = 8 // float64

// CostEstimate summarizes the predicted cost of one draw with a variant.
type CostEstimate struct {
	Variant  levy.Variant
	Terms    int
	Flops    float64
	MemoryMB float64
}

// flopsEstimate approximates the floating-point work of one draw. The
// Y*Z product dominates: 2*m^2*n multiply-adds.
func flopsEstimate(m, n int) float64 {
	return 2 * float64(m) * float64(m) * float64(n)
}

// memoryEstimate returns the working set in megabytes: 2*m*n + m^2 floats
// for the truncated series, plus m^2 + m for the residual skew matrix and
// its vector product in the tail-corrected variant.
func memoryEstimate(m, n int, variant levy.Variant) float64 {
	floats := 2*int64(m)*int64(n) + int64(m)*int64(m)
	if variant == levy.TailCorrected {
		floats += int64(m)*int64(m) + int64(m)
	}
	return float64(floats*bytesPerNumber) / (1024 * 1024)
}

// estimateCosts computes both variants' cost estimates for the inputs.
func estimateCosts(w []float64, h, eps float64) ([]CostEstimate, error) {
	m := len(w)
	estimates := make([]CostEstimate, 0, 2)
	for _, variant := range []levy.Variant{levy.Baseline, levy.TailCorrected} {
		n, err := levy.TermsNeeded(w, h, eps, variant)
		if err != nil {
			return nil, err
		}
		estimates = append(estimates, CostEstimate{
			Variant:  variant,
			Terms:    n,
			Flops:    flopsEstimate(m, n),
			MemoryMB: memoryEstimate(m, n, variant),
		})
	}
	return estimates, nil
}

// advise picks the variant with the lowest predicted work whose working set
// fits within maxMemoryMB.
func advise(estimates []CostEstimate, maxMemoryMB float64) (CostEstimate, error) {
	best := CostEstimate{}
	found := false
	for _, est := range estimates {
		if est.MemoryMB > maxMemoryMB {
			continue
		}
		if !found || est.Flops < best.Flops {
			best = est
			found = true
		}
	}
	if !found {
		return CostEstimate{}, fmt.Errorf("no variant fits within %.2f MB, please relax the tolerance", maxMemoryMB)
	}
	return best, nil
}

// microBenchmarkDraw measures the real per-draw time for an estimate so the
// flop model can be sanity-checked against the machine.
func microBenchmarkDraw(w []float64, h, eps float64, est CostEstimate, rounds int) (time.Duration, error) {
	ws, err := levy.NewWorkspace(len(w))
	if err != nil {
		return 0, err
	}
	opts := &levy.Options{
		Variant:   est.Variant,
		Src:       levy.NewSource(1),
		Workspace: ws,
	}

	start := time.Now()
	for i := 0; i < rounds; i++ {
		if _, err := levy.Simulate(w, h, eps, opts); err != nil {
			return 0, err
		}
	}
	return time.Since(start) / time.Duration(rounds), nil
}
