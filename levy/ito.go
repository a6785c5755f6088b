package levy

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ItoCorrection shifts g from the raw symmetric convention to the Ito
// convention by subtracting h/2 from every diagonal entry, in place.
// Off-diagonal entries are untouched. g must be square and exclusively
// owned by the caller for the duration of the call.
func ItoCorrection(g *mat.Dense, h float64) error {
	if g == nil {
		return fmt.Errorf("nil matrix: %w", ErrShape)
	}
	r, c := g.Dims()
	if r != c {
		return fmt.Errorf("ito correction needs a square matrix, got %dx%d: %w", r, c, ErrShape)
	}
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return fmt.Errorf("step size h=%v must be positive and finite: %w", h, ErrInvalidParameter)
	}
	for i := 0; i < r; i++ {
		g.Set(i, i, g.At(i, i)-h/2)
	}
	return nil
}
