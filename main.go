package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"levyarea/levy"
	"levyarea/utils"

	"gonum.org/v1/gonum/mat"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("a command must be specified: simulate | scalar")
		os.Exit(1)
	}
	subCommand := os.Args[1]

	switch subCommand {
	case "simulate":
		simFlags := flag.NewFlagSet("simulate", flag.ContinueOnError)
		flagIncrement := simFlags.String("w", "1.0,0.5", "comma-separated Wiener increment")
		flagStep := simFlags.Float64("h", 0.5, "step size")
		flagEps := simFlags.Float64("eps", 0.01, "L2 error tolerance")
		flagAlg := simFlags.String("alg", "tailcorrected", "estimator: baseline | tailcorrected")
		flagSeed := simFlags.Uint64("seed", 0, "PRNG seed (0 uses the package default stream)")
		flagRaw := simFlags.Bool("raw", false, "skip the Ito correction")

		err := simFlags.Parse(os.Args[2:])
		if err != nil {
			fmt.Printf("parsing simulate flags: %s\n", err.Error())
			os.Exit(1)
		}

		increment, err := utils.ParseIncrement(*flagIncrement)
		if err != nil {
			fmt.Println("Error parsing increment:", err)
			os.Exit(1)
		}

		config := utils.Config{
			Increment: increment,
			StepSize:  *flagStep,
			Tolerance: *flagEps,
			Algorithm: *flagAlg,
			Seed:      *flagSeed,
			Samples:   1,
		}
		if err := utils.ValidateConfig(&config); err != nil {
			fmt.Println("Invalid configuration:", err)
			os.Exit(1)
		}

		simulate(config, *flagRaw)

	case "scalar":
		scalarFlags := flag.NewFlagSet("scalar", flag.ContinueOnError)
		flagW := scalarFlags.Float64("w", 1.0, "scalar Wiener increment")
		flagStep := scalarFlags.Float64("h", 1.0, "step size")

		err := scalarFlags.Parse(os.Args[2:])
		if err != nil {
			fmt.Printf("parsing scalar flags: %s\n", err.Error())
			os.Exit(1)
		}

		fmt.Printf("I(%.6g, %.6g) = %.12g\n", *flagW, *flagStep, levy.SimulateScalar(*flagW, *flagStep))

	default:
		fmt.Printf("unknown command %q: simulate | scalar\n", subCommand)
		os.Exit(1)
	}
}

func simulate(config utils.Config, raw bool) {
	opts := &levy.Options{
		Variant:           utils.AlgorithmLookup[config.Algorithm],
		SkipItoCorrection: raw,
	}
	if config.Seed != 0 {
		opts.Src = levy.NewSource(config.Seed)
	}

	n, err := levy.TermsNeeded(config.Increment, config.StepSize, config.Tolerance, opts.Variant)
	if err != nil {
		fmt.Printf("selecting term count: %s\n", err.Error())
		os.Exit(1)
	}

	stats := &utils.TimingStats{}
	start := time.Now()
	g, err := levy.Simulate(config.Increment, config.StepSize, config.Tolerance, opts)
	stats.SamplingTime = time.Since(start)
	stats.TotalTime = stats.SamplingTime
	if err != nil {
		fmt.Printf("simulating iterated integrals: %s\n", err.Error())
		os.Exit(1)
	}

	fmt.Printf("m=%d  h=%g  eps=%g  algorithm=%s  terms=%d\n",
		len(config.Increment), config.StepSize, config.Tolerance, opts.Variant, n)
	fmt.Printf("G = %.6v\n", mat.Formatted(g, mat.Prefix("    "), mat.Squeeze()))

	utils.PrintTimingStats(stats, config.Samples)
}
