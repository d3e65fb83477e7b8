package antsystem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewColonyValidatesParameters(t *testing.T) {
	cities := squareCities()

	_, err := NewColony(cities, 0, 10, 1.0, 5.0, 0.5, 1)
	require.ErrorContains(t, err, "population size")

	_, err = NewColony(cities, 4, -1, 1.0, 5.0, 0.5, 1)
	require.ErrorContains(t, err, "iterations")

	_, err = NewColony(cities, 4, 10, 1.0, 5.0, 1.5, 1)
	require.ErrorContains(t, err, "evaporation rate")

	_, err = NewColony(cities[:1], 4, 10, 1.0, 5.0, 0.5, 1)
	require.ErrorContains(t, err, "at least 2 cities")
}

func TestRunConvergesOnSquare(t *testing.T) {
	colony, err := NewColony(squareCities(), 8, 50, 1.0, 5.0, 0.5, 42)
	require.NoError(t, err)

	bestTour, bestLength, err := colony.Run()
	require.NoError(t, err)

	// Perimeter of the square under the ATT metric.
	require.Equal(t, 128, bestLength)
	requirePermutation(t, bestTour, 4)
	require.Equal(t, bestLength, colony.BestLength)
}

func TestRunBestNeverRegresses(t *testing.T) {
	colony, err := NewColony(squareCities(), 4, 30, 1.0, 2.0, 0.5, 7)
	require.NoError(t, err)

	_, _, err = colony.Run()
	require.NoError(t, err)

	require.Len(t, colony.BestLengthAtIteration, 30)
	for i := 1; i < len(colony.BestLengthAtIteration); i++ {
		require.LessOrEqual(t, colony.BestLengthAtIteration[i], colony.BestLengthAtIteration[i-1])
	}

	require.Equal(t, colony.BestLength, colony.BestLengthAtIteration[29])
}

func TestRunIsDeterministicForASeed(t *testing.T) {
	first, err := NewColony(squareCities(), 6, 20, 1.0, 3.0, 0.3, 1234)
	require.NoError(t, err)

	second, err := NewColony(squareCities(), 6, 20, 1.0, 3.0, 0.3, 1234)
	require.NoError(t, err)

	firstTour, firstLength, err := first.Run()
	require.NoError(t, err)

	secondTour, secondLength, err := second.Run()
	require.NoError(t, err)

	require.Equal(t, firstLength, secondLength)
	require.Equal(t, firstTour, secondTour)
	require.Equal(t, first.BestLengthAtIteration, second.BestLengthAtIteration)
}

func TestOnProgressReportsEveryIteration(t *testing.T) {
	colony, err := NewColony(squareCities(), 4, 15, 1.0, 5.0, 0.5, 3)
	require.NoError(t, err)

	var iterations []int
	lastBest := 0
	colony.OnProgress = func(iteration, bestLength int) {
		iterations = append(iterations, iteration)
		lastBest = bestLength
	}

	_, bestLength, err := colony.Run()
	require.NoError(t, err)

	require.Len(t, iterations, 15)
	require.Equal(t, 0, iterations[0])
	require.Equal(t, 14, iterations[14])
	require.Equal(t, bestLength, lastBest)
}

func TestSetRhoRebuildsEnvironment(t *testing.T) {
	colony, err := NewColony(squareCities(), 4, 10, 1.0, 5.0, 0.5, 5)
	require.NoError(t, err)

	_, _, err = colony.Run()
	require.NoError(t, err)

	mutated := colony.Environment().Pheromones().Trail(0, 1)

	require.NoError(t, colony.SetRho(0.9))
	require.Equal(t, 0.9, colony.Environment().Rho())

	// Trails are back at tau0 = 1/(4 * Lnn), not the mutated values.
	tau0 := colony.Environment().Pheromones().Trail(0, 1)
	require.Equal(t, colony.Environment().Pheromones().Trail(2, 3), tau0)
	require.NotEqual(t, mutated, tau0)

	require.ErrorContains(t, colony.SetRho(-1), "evaporation rate")
}

func TestSetParametersRebuildsAnts(t *testing.T) {
	colony, err := NewColony(squareCities(), 4, 20, 0.5, 1.0, 0.5, 21)
	require.NoError(t, err)

	_, _, err = colony.Run()
	require.NoError(t, err)

	colony.SetParameters(1.0, 5.0)

	_, bestLength, err := colony.Run()
	require.NoError(t, err)
	require.Equal(t, 128, bestLength)
}
