package statistics

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// RunStats summarizes the best tour lengths of repeated runs with the
// same parameters.
type RunStats struct {
	Min, Max, Mean, StdDev, Skewness, Kurtosis float64
}

func CalculateRunStats(lengths []float64) (stats RunStats) {
	if len(lengths) == 0 {
		return RunStats{}
	}

	minLength := math.MaxFloat64
	maxLength := -math.MaxFloat64

	for _, length := range lengths {
		if length < minLength {
			minLength = length
		}

		if length > maxLength {
			maxLength = length
		}
	}

	return RunStats{
		Min:      minLength,
		Max:      maxLength,
		Mean:     stat.Mean(lengths, nil),
		StdDev:   stat.StdDev(lengths, nil),
		Skewness: stat.Skew(lengths, nil),
		Kurtosis: stat.ExKurtosis(lengths, nil),
	}
}

// Deviation is the relative distance from the known optimum in percent.
// Returns 0 when the optimum is unknown.
func Deviation(length, knownOptimal float64) float64 {
	if knownOptimal <= 0 {
		return 0
	}

	return 100 * (length - knownOptimal) / knownOptimal
}

// SuccessRate is the percentage of runs that reached the known optimum.
func SuccessRate(lengths []float64, knownOptimal float64) float64 {
	if knownOptimal <= 0 || len(lengths) == 0 {
		return 0
	}

	successCounter := 0.0
	for _, length := range lengths {
		if length <= knownOptimal {
			successCounter++
		}
	}

	return 100 * successCounter / float64(len(lengths))
}
