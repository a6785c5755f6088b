package levy

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// NormalSource supplies independent standard normal draws.
// distuv.Normal satisfies it directly.
type NormalSource interface {
	Rand() float64
}

// NewSource returns a NormalSource with its own PRNG stream seeded by seed.
// A single stream must not be shared between concurrent calls; give each
// goroutine its own source.
func NewSource(seed uint64) NormalSource {
	return distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}
}

// defaultSource draws from gonum's global stream.
var defaultSource NormalSource = distuv.Normal{Mu: 0, Sigma: 1}

// fillNormal fills dst with independent standard normal draws.
func fillNormal(dst *mat.Dense, src NormalSource) {
	r, c := dst.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			dst.Set(i, j, src.Rand())
		}
	}
}
