package levy_test

import (
	"fmt"
	"math"

	"levyarea/levy"
)

func ExampleSimulateScalar() {
	// One-dimensional increments have an exact closed form.
	fmt.Printf("%.3f\n", levy.SimulateScalar(1.0, 0.5))
	// Output: 0.250
}

func ExampleTermsNeeded() {
	h := 1.0 / 128
	n, err := levy.TermsNeeded([]float64{1.0, 0.5}, h, math.Pow(h, 1.5), levy.Baseline)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(n)
	// Output: 7
}

func ExampleSimulate() {
	w := []float64{1.0, 0.5}
	g, err := levy.Simulate(w, 0.5, 0.01, &levy.Options{Src: levy.NewSource(1)})
	if err != nil {
		fmt.Println(err)
		return
	}
	// The diagonal is deterministic and the off-diagonal pair sums to
	// W[0]*W[1] regardless of the draw.
	fmt.Printf("diag: %.3f %.3f\n", g.At(0, 0), g.At(1, 1))
	fmt.Printf("pair sum: %.3f\n", g.At(0, 1)+g.At(1, 0))
	// Output:
	// diag: 0.250 -0.125
	// pair sum: 0.500
}
