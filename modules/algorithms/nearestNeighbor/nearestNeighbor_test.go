package nearestNeighbor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGreedyTourLength(t *testing.T) {
	distances := [][]int{
		{0, 1, 4, 9},
		{1, 0, 2, 6},
		{4, 2, 0, 3},
		{9, 6, 3, 0},
	}

	// From 0 the greedy walk is 0->1->2->3 and back: 1 + 2 + 3 + 9.
	require.Equal(t, 15, GreedyTourLength(distances, 0))

	// From 3: 3->2->1->0 and back: 3 + 2 + 1 + 9.
	require.Equal(t, 15, GreedyTourLength(distances, 3))
}

func TestGreedyTourLengthDegenerateInstances(t *testing.T) {
	require.Zero(t, GreedyTourLength(nil, 0))
	require.Zero(t, GreedyTourLength([][]int{{0}}, 0))

	// Two cities: there and back again.
	require.Equal(t, 14, GreedyTourLength([][]int{{0, 7}, {7, 0}}, 0))
}
