package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"levyarea/levy"
	"levyarea/utils"

	"github.com/montanaflynn/stats"
)

// Monte-Carlo convergence study: for a fixed increment and step size, sweep
// the error tolerance and compare the two estimators on empirical moments
// of the Levy-area part, whose true conditional mean is zero.
func main() {
	flagIncrement := flag.String("w", "1.0,0.5", "comma-separated Wiener increment")
	flagStep := flag.Float64("h", 0.5, "step size")
	flagSamples := flag.Int("samples", 2000, "independent draws per tolerance")
	flagSeed := flag.Uint64("seed", 42, "PRNG seed")
	flag.Parse()

	increment, err := utils.ParseIncrement(*flagIncrement)
	if err != nil {
		fmt.Println("Error parsing increment:", err)
		os.Exit(1)
	}
	if len(increment) < 2 {
		fmt.Println("the convergence study needs at least a 2-dimensional increment")
		os.Exit(1)
	}

	config := utils.Config{
		Increment: increment,
		StepSize:  *flagStep,
		Tolerance: math.Pow(*flagStep, 1.5),
		Algorithm: "tailcorrected",
		Seed:      *flagSeed,
		Samples:   *flagSamples,
	}
	if err := utils.ValidateConfig(&config); err != nil {
		fmt.Println("Invalid configuration:", err)
		os.Exit(1)
	}

	h := config.StepSize
	tolerances := []float64{h / 2, h / 8, h / 32, math.Pow(h, 1.5)}

	for _, name := range []string{"baseline", "tailcorrected"} {
		fmt.Printf("----- %s -----\n", name)
		fmt.Println("eps        n      area mean    area std     |area| p95   us/sample")
		runStudy(config, utils.AlgorithmLookup[name], tolerances)
	}
}

func runStudy(config utils.Config, variant levy.Variant, tolerances []float64) {
	w := config.Increment

	ws, err := levy.NewWorkspace(len(w))
	if err != nil {
		fmt.Println("allocating workspace:", err)
		os.Exit(1)
	}

	timing := &utils.TimingStats{}
	totalStart := time.Now()

	for _, eps := range tolerances {
		termStart := time.Now()
		n, err := levy.TermsNeeded(w, config.StepSize, eps, variant)
		timing.TermSelectionTime += time.Since(termStart)
		if err != nil {
			fmt.Println("selecting term count:", err)
			os.Exit(1)
		}

		opts := &levy.Options{
			Variant:   variant,
			Src:       levy.NewSource(config.Seed),
			Workspace: ws,
		}

		// The (0,1) Levy-area entry; its conditional mean is zero.
		area := make([]float64, config.Samples)
		sampleStart := time.Now()
		for s := range area {
			g, err := levy.Simulate(w, config.StepSize, eps, opts)
			if err != nil {
				fmt.Println("simulating:", err)
				os.Exit(1)
			}
			area[s] = (g.At(0, 1) - g.At(1, 0)) / 2
		}
		elapsed := time.Since(sampleStart)
		timing.SamplingTime += elapsed

		reportStart := time.Now()
		mean, err := stats.Mean(area)
		if err != nil {
			fmt.Println("computing mean:", err)
			os.Exit(1)
		}
		std, err := stats.StandardDeviation(area)
		if err != nil {
			fmt.Println("computing stddev:", err)
			os.Exit(1)
		}
		absArea := make([]float64, len(area))
		for i, a := range area {
			absArea[i] = math.Abs(a)
		}
		p95, err := stats.Percentile(absArea, 95)
		if err != nil {
			fmt.Println("computing percentile:", err)
			os.Exit(1)
		}
		timing.ReportingTime += time.Since(reportStart)

		fmt.Printf("%-10.4g %-6d %- 12.5f %- 12.5f %- 12.5f %.1f\n",
			eps, n, mean, std, p95, utils.DurationUS(elapsed)/float64(config.Samples))
	}

	timing.TotalTime = time.Since(totalStart)
	utils.PrintTimingStats(timing, config.Samples*len(tolerances))
}
