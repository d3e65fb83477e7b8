package utilities

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFastPowMatchesMathPow(t *testing.T) {
	bases := []float64{0, 0.0625, 0.5, 1, 2.7, 31}
	exponents := []float64{0.25, 0.5, 1, 1.5, 2, 3, 5, 0.33}

	for _, base := range bases {
		for _, exp := range exponents {
			require.InEpsilon(t, math.Pow(base, exp)+1, FastPow(base, exp)+1, 1e-12,
				"base %g exp %g", base, exp)
		}
	}
}

func TestGenerateRange(t *testing.T) {
	require.Equal(t, []float64{0.5, 1.0, 1.5, 2.0}, GenerateRange(0.5, 2.0, 0.5))
	require.Equal(t, []float64{1.0}, GenerateRange(1.0, 1.0, 0.25))
	require.Nil(t, GenerateRange(2.0, 1.0, 0.5))
}

func TestTourLength(t *testing.T) {
	distances := [][]int{
		{0, 32, 45, 32},
		{32, 0, 32, 45},
		{45, 32, 0, 32},
		{32, 45, 32, 0},
	}

	require.Equal(t, 128, TourLength([]int{0, 1, 2, 3}, distances))
	require.Equal(t, 154, TourLength([]int{0, 2, 1, 3}, distances))
	require.Zero(t, TourLength(nil, distances))
}

func TestExtractNumber(t *testing.T) {
	number, err := ExtractNumber("att48.tsp")
	require.NoError(t, err)
	require.Equal(t, 48, number)

	_, err = ExtractNumber("no digits here")
	require.Error(t, err)
}

func TestFilterStrings(t *testing.T) {
	filtered := FilterStrings([]string{"att48.tsp", "att532.tsp"}, func(s string) bool {
		number, err := ExtractNumber(s)
		return err == nil && number < 100
	})

	require.Equal(t, []string{"att48.tsp"}, filtered)
}
