package levy

import (
	"math"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateScalarFastPath(t *testing.T) {
	// m=1 bypasses sampling entirely and matches the closed form exactly.
	for _, tc := range []struct{ w, h float64 }{
		{1.0, 0.5},
		{-2.3, 0.01},
		{0, 1},
	} {
		g, err := Simulate([]float64{tc.w}, tc.h, 0.1, nil)
		require.NoError(t, err)
		r, c := g.Dims()
		require.Equal(t, 1, r)
		require.Equal(t, 1, c)
		assert.Equal(t, SimulateScalar(tc.w, tc.h), g.At(0, 0))
	}
}

func TestSimulateScalarRawConvention(t *testing.T) {
	g, err := Simulate([]float64{1.5}, 0.5, 0.1, &Options{SkipItoCorrection: true})
	require.NoError(t, err)
	assert.Equal(t, 0.5*1.5*1.5, g.At(0, 0))
}

func TestSimulateEndToEnd(t *testing.T) {
	// h=0.5, W=[1.0, 0.5]: the Ito diagonal is [0.25, -0.125] exactly and
	// the symmetric off-diagonal part is 0.5*W0*W1 = 0.25 exactly.
	w := []float64{1.0, 0.5}
	h := 0.5
	eps := math.Pow(h, 1.5)

	for _, variant := range []Variant{Baseline, TailCorrected} {
		g, err := Simulate(w, h, eps, &Options{Variant: variant, Src: NewSource(11)})
		require.NoError(t, err)

		assert.InDelta(t, 0.25, g.At(0, 0), 1e-12)
		assert.InDelta(t, -0.125, g.At(1, 1), 1e-12)
		assert.InDelta(t, w[0]*w[1], g.At(0, 1)+g.At(1, 0), 1e-10)
	}
}

func TestSimulateOffDiagonalMoments(t *testing.T) {
	// Conditional on W, the off-diagonal mean is the symmetric part
	// 0.5*W0*W1 and the Levy-area part averages to zero.
	w := []float64{1.0, 0.5}
	h := 0.5
	src := NewSource(99)

	ws, err := NewWorkspace(len(w))
	require.NoError(t, err)

	const samples = 3000
	offdiag := make([]float64, samples)
	area := make([]float64, samples)
	for s := range offdiag {
		g, err := Simulate(w, h, 0.05, &Options{Src: src, Workspace: ws})
		require.NoError(t, err)
		offdiag[s] = g.At(0, 1)
		area[s] = (g.At(0, 1) - g.At(1, 0)) / 2
	}

	meanOff, err := stats.Mean(offdiag)
	require.NoError(t, err)
	assert.InDelta(t, 0.5*w[0]*w[1], meanOff, 0.05)

	meanArea, err := stats.Mean(area)
	require.NoError(t, err)
	assert.InDelta(t, 0, meanArea, 0.05)
}

func TestSimulateDefaultIsTailCorrected(t *testing.T) {
	// Nil options must work and use the recommended variant; the pair-sum
	// identity holds either way, so just exercise the path.
	w := []float64{0.3, -0.8, 1.1}
	g, err := Simulate(w, 0.25, 0.05, nil)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			assert.InDelta(t, w[i]*w[j], g.At(i, j)+g.At(j, i), 1e-10)
		}
	}
}

func TestSimulateRejectsBadInput(t *testing.T) {
	w := []float64{1, 0.5}

	_, err := Simulate(w, 0, 0.1, nil)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Simulate(w, 0.5, -1, nil)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Simulate(nil, 0.5, 0.1, nil)
	assert.ErrorIs(t, err, ErrShape)

	_, err = Simulate(w, 0.5, 0.1, &Options{Variant: Variant(7)})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestSimulateScalarClosedForm(t *testing.T) {
	assert.Equal(t, 0.25, SimulateScalar(1.0, 0.5))
	assert.Equal(t, -0.125, SimulateScalar(0.5, 0.5))
	assert.Equal(t, 0.5*2.5*2.5-0.5*0.1, SimulateScalar(2.5, 0.1))
}
