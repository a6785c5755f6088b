package levy

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/mathext"
)

// sample draws the tail-corrected estimate. It starts from the same
// truncated-series area matrix as the baseline, then simulates the infinite
// series tail beyond index n and removes its leading bias in closed form.
func (tailCorrectedAlgorithm) sample(w []float64, n int, src NormalSource, ws *Workspace) (*mat.Dense, error) {
	m := len(w)
	a := areaEstimate(w, n, src, ws)

	// trigamma(n+1) = zeta(2, n+1) is the variance of the summed tail, so
	// one scaled normal draw per entry stands in for the whole remainder.
	tri := mathext.Zeta(2, float64(n)+1)
	if math.IsNaN(tri) || tri <= 0 {
		return nil, fmt.Errorf("trigamma(%d)=%v outside (0,inf): %w", n+1, tri, ErrNumericDomain)
	}
	scale := math.Sqrt(2 * tri)

	r := ws.buf(bufSkew, m, m)
	r.Zero()
	for i := 1; i < m; i++ {
		for j := 0; j < i; j++ {
			z := scale * src.Rand()
			r.Set(i, j, z)
			r.Set(j, i, -z)
			a.Set(i, j, a.At(i, j)+z)
		}
	}

	// Closed-form tail-sum bias correction:
	// A += (R*w)*w' / (1 + sqrt(1 + w'w)).
	wv := mat.NewVecDense(m, w)
	coef := 1 / (1 + math.Sqrt(1+mat.Dot(wv, wv)))
	rw := ws.vec(m)
	rw.MulVec(r, wv)
	corr := ws.buf(bufCorr, m, m)
	corr.Outer(coef, rw, wv)
	a.Add(a, corr)

	return assemble(w, a, ws), nil
}
