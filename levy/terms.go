package levy

import (
	"fmt"
	"math"
)

// TermsNeeded returns the truncation order n that keeps the L2 error of the
// given variant below eps for the increment w over a step of length h.
//
// The baseline bound depends only on h and eps. The tail-corrected bound is
// tighter and also depends on the realized increment and its dimension,
// because simulating the series tail changes the truncation-error order.
// The result is always at least 1.
func TermsNeeded(w []float64, h, eps float64, variant Variant) (int, error) {
	if err := checkStep(h, eps); err != nil {
		return 0, err
	}
	if len(w) == 0 {
		return 0, fmt.Errorf("empty increment: %w", ErrShape)
	}
	alg, err := variant.algorithm()
	if err != nil {
		return 0, err
	}
	n := alg.termsNeeded(w, h, eps)
	if n < 1 {
		n = 1
	}
	return n, nil
}

func checkStep(h, eps float64) error {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return fmt.Errorf("step size h=%v must be positive and finite: %w", h, ErrInvalidParameter)
	}
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		return fmt.Errorf("tolerance eps=%v must be positive and finite: %w", eps, ErrInvalidParameter)
	}
	return nil
}

// n = ceil(0.5*(h/(pi*eps))^2), independent of the increment.
func (baselineAlgorithm) termsNeeded(_ []float64, h, eps float64) int {
	r := h / (math.Pi * eps)
	return int(math.Ceil(0.5 * r * r))
}

// n = ceil(sqrt(m*(m-1)*(m+4*|W|^2/h)/6) * h/(2*pi*eps)).
func (tailCorrectedAlgorithm) termsNeeded(w []float64, h, eps float64) int {
	m := float64(len(w))
	var sq float64
	for _, wi := range w {
		sq += wi * wi
	}
	rad := m * (m - 1) * (m + 4*sq/h) / 6
	return int(math.Ceil(math.Sqrt(rad) * h / (2 * math.Pi * eps)))
}
