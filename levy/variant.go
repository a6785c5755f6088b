package levy

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Variant selects which series estimator to use. The set is closed: the two
// variants come from the literature and share the same sampling contract.
type Variant int

const (
	// Baseline is the plain truncated-series Monte-Carlo estimator. Its
	// bias shrinks as the term count grows but nothing accounts for the
	// discarded series tail.
	Baseline Variant = iota

	// TailCorrected additionally simulates the infinite series tail
	// through a single trigamma-scaled residual draw per entry and removes
	// the leading tail bias in closed form. Strictly better accuracy per
	// term at the same asymptotic cost; the recommended default.
	TailCorrected
)

func (v Variant) String() string {
	switch v {
	case Baseline:
		return "baseline"
	case TailCorrected:
		return "tailcorrected"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// algorithm is the strategy contract shared by the two variants: pick a
// truncation order for an error budget, and draw one raw sample at that
// order.
type algorithm interface {
	termsNeeded(w []float64, h, eps float64) int
	sample(w []float64, n int, src NormalSource, ws *Workspace) (*mat.Dense, error)
}

type baselineAlgorithm struct{}

type tailCorrectedAlgorithm struct{}

func (v Variant) algorithm() (algorithm, error) {
	switch v {
	case Baseline:
		return baselineAlgorithm{}, nil
	case TailCorrected:
		return tailCorrectedAlgorithm{}, nil
	}
	return nil, fmt.Errorf("unknown variant %d: %w", int(v), ErrInvalidParameter)
}
