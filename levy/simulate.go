// Package levy approximates the matrix of iterated double stochastic
// integrals of a multidimensional Wiener increment, the cross terms known
// as the Levy area. Exact evaluation is intractable for more than one
// dimension, so the matrix is produced by a truncated-series Monte-Carlo
// estimator with a controllable L2 error bound; the tail-corrected variant
// additionally simulates the discarded series remainder.
//
// All operations are pure apart from consuming draws from a NormalSource.
// Concurrent calls are independent as long as each uses its own source and
// its own Workspace (or none).
package levy

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Options configures Simulate. A nil *Options selects the tail-corrected
// variant, applies the Ito correction and draws from the package default
// normal stream.
type Options struct {
	// Variant selects the estimator. TailCorrected is the zero value and
	// the recommended choice.
	Variant Variant

	// SkipItoCorrection leaves the result in the raw symmetric convention
	// instead of subtracting h/2 from the diagonal.
	SkipItoCorrection bool

	// Src supplies the standard normal draws. Nil means the package
	// default stream; concurrent callers should pass per-goroutine
	// sources from NewSource.
	Src NormalSource

	// Workspace, when non-nil, provides preallocated buffers for repeated
	// calls with a fixed increment dimension. The returned matrix aliases
	// the workspace and stays valid until the next call that uses it.
	Workspace *Workspace
}

// Simulate approximates the m x m matrix of iterated integrals of the
// Wiener increment w over a step of length h, with L2 error below eps.
// The entry (i,j) estimates the double integral of dWi dWj over the step.
func Simulate(w []float64, h, eps float64, opts *Options) (*mat.Dense, error) {
	if err := checkStep(h, eps); err != nil {
		return nil, err
	}
	m := len(w)
	if m == 0 {
		return nil, fmt.Errorf("empty increment: %w", ErrShape)
	}

	var o Options
	if opts != nil {
		o = *opts
	}
	if err := o.Workspace.check(m); err != nil {
		return nil, err
	}
	src := o.Src
	if src == nil {
		src = defaultSource
	}

	// One dimension has no cross terms: exact closed form, no sampling.
	if m == 1 {
		v := 0.5 * w[0] * w[0]
		if !o.SkipItoCorrection {
			v -= 0.5 * h
		}
		g := o.Workspace.buf(bufG, 1, 1)
		g.Set(0, 0, v)
		return g, nil
	}

	alg, err := o.Variant.algorithm()
	if err != nil {
		return nil, err
	}
	n := alg.termsNeeded(w, h, eps)
	if n < 1 {
		n = 1
	}

	// The sampler works on the unit-step increment w/sqrt(h); the integral
	// scales linearly with h under this normalization.
	sh := math.Sqrt(h)
	wUnit := make([]float64, m)
	for i, wi := range w {
		wUnit[i] = wi / sh
	}

	g, err := alg.sample(wUnit, n, src, o.Workspace)
	if err != nil {
		return nil, err
	}
	g.Scale(h, g)

	if !o.SkipItoCorrection {
		if err := ItoCorrection(g, h); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// SimulateScalar is the exact one-dimensional iterated integral under the
// Ito convention: 0.5*w*w - 0.5*h. No randomness is involved.
func SimulateScalar(w, h float64) float64 {
	return 0.5*w*w - 0.5*h
}
