package utils

import (
	"fmt"
	"strconv"
	"strings"

	"levyarea/levy"
)

// AlgorithmLookup maps CLI names to estimator variants.
var AlgorithmLookup = map[string]levy.Variant{
	"baseline":      levy.Baseline,
	"tailcorrected": levy.TailCorrected,
}

// Config holds simulation configuration
type Config struct {
	Increment []float64
	StepSize  float64
	Tolerance float64
	Algorithm string
	Seed      uint64
	Samples   int
}

// ParseIncrement parses a comma-separated increment string into floats
func ParseIncrement(incStr string) ([]float64, error) {
	parts := strings.Split(incStr, ",")
	inc := make([]float64, len(parts))
	for i, s := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, err
		}
		inc[i] = v
	}
	return inc, nil
}

// ValidateConfig validates simulation configuration
func ValidateConfig(config *Config) error {
	if len(config.Increment) < 1 {
		return fmt.Errorf("increment must have at least 1 component")
	}

	if config.StepSize <= 0 {
		return fmt.Errorf("step size must be positive")
	}

	if config.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive")
	}

	if _, ok := AlgorithmLookup[config.Algorithm]; !ok {
		return fmt.Errorf("algorithm must be 'baseline' or 'tailcorrected'")
	}

	if config.Samples <= 0 {
		return fmt.Errorf("samples must be positive")
	}

	return nil
}
