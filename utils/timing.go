package utils

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Verbose controls whether timing statistics are printed.
// Set to false to suppress output.
var Verbose = true

// Output is the writer where timing statistics are printed.
// Defaults to os.Stdout.
var Output io.Writer = os.Stdout

// TimingStats holds timing information for the simulation pipeline
type TimingStats struct {
	TotalTime         time.Duration
	TermSelectionTime time.Duration
	SamplingTime      time.Duration
	CorrectionTime    time.Duration
	ReportingTime     time.Duration
}

// PrintTimingStats prints detailed timing statistics.
// Respects the Verbose flag - does nothing if Verbose is false.
func PrintTimingStats(stats *TimingStats, samples int) {
	if !Verbose {
		return
	}
	fmt.Fprintln(Output, "\n=== TIMING STATISTICS ===")
	fmt.Fprintf(Output, "Total simulation time: %v\n", stats.TotalTime)
	fmt.Fprintf(Output, "Average time per sample: %v\n", stats.TotalTime/time.Duration(samples))
	fmt.Fprintf(Output, "Samples completed: %d\n", samples)
	fmt.Fprintln(Output, "\nBreakdown by phase:")
	fmt.Fprintf(Output, "  Term selection: %v (%.1f%%)\n", stats.TermSelectionTime, float64(stats.TermSelectionTime)/float64(stats.TotalTime)*100)
	fmt.Fprintf(Output, "  Sampling: %v (%.1f%%)\n", stats.SamplingTime, float64(stats.SamplingTime)/float64(stats.TotalTime)*100)
	fmt.Fprintf(Output, "  Ito correction: %v (%.1f%%)\n", stats.CorrectionTime, float64(stats.CorrectionTime)/float64(stats.TotalTime)*100)
	fmt.Fprintf(Output, "  Reporting: %v (%.1f%%)\n", stats.ReportingTime, float64(stats.ReportingTime)/float64(stats.TotalTime)*100)
}

// DurationUS converts any time.Duration to micro-seconds as float64
func DurationUS(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1_000.0
}
