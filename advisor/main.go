package main

import (
	"flag"
	"fmt"
	"os"

	"levyarea/utils"
)

func main() {
	flagIncrement := flag.String("w", "1.0,0.5,-0.25", "comma-separated Wiener increment")
	flagStep := flag.Float64("h", 0.01, "step size")
	flagEps := flag.Float64("eps", 0.001, "L2 error tolerance")
	flagMaxMemory := flag.Float64("maxmem", 500.0, "memory budget in MB")
	flagRounds := flag.Int("rounds", 50, "micro-benchmark rounds per variant")
	flag.Parse()

	increment, err := utils.ParseIncrement(*flagIncrement)
	if err != nil {
		fmt.Println("Error parsing increment:", err)
		os.Exit(1)
	}

	estimates, err := estimateCosts(increment, *flagStep, *flagEps)
	if err != nil {
		fmt.Println("estimating costs:", err)
		os.Exit(1)
	}

	fmt.Println("----- Cost Estimates -----")
	for _, est := range estimates {
		measured, err := microBenchmarkDraw(increment, *flagStep, *flagEps, est, *flagRounds)
		if err != nil {
			fmt.Println("benchmarking:", err)
			os.Exit(1)
		}
		fmt.Printf("%-14s terms=%-8d flops=%-12.3g memory=%.4f MB  measured=%v/draw\n",
			est.Variant, est.Terms, est.Flops, est.MemoryMB, measured)
	}

	best, err := advise(estimates, *flagMaxMemory)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Println("----- Recommendation -----")
	fmt.Printf("Use %s with %d terms (%.3g flops, %.4f MB)\n",
		best.Variant, best.Terms, best.Flops, best.MemoryMB)
}
