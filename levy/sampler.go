package levy

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// SampleRaw draws one realization of the raw m x m integral matrix for the
// unit-step increment wUnit using n series terms. The result carries
// neither the h rescale nor the Ito correction; Simulate applies both.
// A nil src uses the package default stream.
func SampleRaw(wUnit []float64, n int, variant Variant, src NormalSource) (*mat.Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("term count n=%d must be positive: %w", n, ErrInvalidParameter)
	}
	if len(wUnit) == 0 {
		return nil, fmt.Errorf("empty increment: %w", ErrShape)
	}
	if src == nil {
		src = defaultSource
	}
	alg, err := variant.algorithm()
	if err != nil {
		return nil, err
	}
	return alg.sample(wUnit, n, src, nil)
}

func (baselineAlgorithm) sample(w []float64, n int, src NormalSource, ws *Workspace) (*mat.Dense, error) {
	a := areaEstimate(w, n, src, ws)
	return assemble(w, a, ws), nil
}

// areaEstimate draws the truncated-series area matrix A = Y*Z: column k of
// the m x n matrix Y is (g_k - sqrt(2)*w)/k for standard normal g_k, and Z
// is an independent n x m standard normal matrix. The Y*Z product is the
// dominant cost, O(m^2 n).
func areaEstimate(w []float64, n int, src NormalSource, ws *Workspace) *mat.Dense {
	m := len(w)

	y := ws.buf(bufY, m, n)
	fillNormal(y, src)
	for k := 0; k < n; k++ {
		inv := 1 / float64(k+1)
		for i := 0; i < m; i++ {
			y.Set(i, k, (y.At(i, k)-math.Sqrt2*w[i])*inv)
		}
	}

	z := ws.buf(bufZ, n, m)
	fillNormal(z, src)

	a := ws.buf(bufA, m, m)
	a.Mul(y, z)
	return a
}

// assemble builds G = 0.5*w*w' + (A - A')/(2*pi). The symmetric part is
// deterministic, so G[i][j]+G[j][i] = w[i]*w[j] holds for every sample.
func assemble(w []float64, a *mat.Dense, ws *Workspace) *mat.Dense {
	m := len(w)
	wv := mat.NewVecDense(m, w)

	g := ws.buf(bufG, m, m)
	g.Outer(0.5, wv, wv)

	skew := ws.buf(bufSkew, m, m)
	skew.Sub(a, a.T())
	skew.Scale(1/(2*math.Pi), skew)

	g.Add(g, skew)
	return g
}
