package utils

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"
)

func TestDurationUS(t *testing.T) {
	d := 250*time.Microsecond + 125*time.Nanosecond
	got := DurationUS(d)
	if math.Abs(got-250.125) > 0.001 {
		t.Fatalf("want 250.125µs, got %.3f", got)
	}
}

func TestPrintTimingStatsRespectsVerbose(t *testing.T) {
	var buf bytes.Buffer
	oldOut, oldVerbose := Output, Verbose
	defer func() { Output, Verbose = oldOut, oldVerbose }()
	Output = &buf

	stats := &TimingStats{
		TotalTime:    100 * time.Millisecond,
		SamplingTime: 80 * time.Millisecond,
	}

	Verbose = false
	PrintTimingStats(stats, 10)
	if buf.Len() != 0 {
		t.Fatal("expected no output with Verbose=false")
	}

	Verbose = true
	PrintTimingStats(stats, 10)
	if !strings.Contains(buf.String(), "TIMING STATISTICS") {
		t.Fatalf("missing header in output: %q", buf.String())
	}
}
