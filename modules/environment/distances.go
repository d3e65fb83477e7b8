package environment

import (
	"fmt"
	"math"

	"ant_system_tsp/modules/models"
)

// DistanceTable holds the pairwise ATT pseudo-Euclidean distances for
// every ordered pair of cities. Computed eagerly at construction and
// never mutated afterwards, so it can be shared without synchronization.
type DistanceTable struct {
	dimension int
	matrix    [][]int
}

func NewDistanceTable(cities []models.City) *DistanceTable {
	dimension := len(cities)
	matrix := make([][]int, dimension)

	for i := range matrix {
		matrix[i] = make([]int, dimension)

		for j := range matrix[i] {
			if i == j {
				continue
			}

			matrix[i][j] = attDistance(cities[i], cities[j])
		}
	}

	return &DistanceTable{dimension: dimension, matrix: matrix}
}

// attDistance is the TSPLIB ATT metric. Rounding is to the nearest
// integer with a +1 correction whenever the rounded value falls below
// the real one, so the integer distance never underestimates.
func attDistance(a, b models.City) int {
	dx := a.X - b.X
	dy := a.Y - b.Y

	r := math.Sqrt((dx*dx + dy*dy) / 10.0)
	t := int(math.Round(r))

	if float64(t) < r {
		t++
	}

	return t
}

func (dt *DistanceTable) Dimension() int {
	return dt.dimension
}

// Matrix exposes the backing matrix for hot loops. Callers must treat
// it as read-only.
func (dt *DistanceTable) Matrix() [][]int {
	return dt.matrix
}

// Distance is the checked lookup: it rejects unknown city indices and
// the undefined diagonal.
func (dt *DistanceTable) Distance(from, to int) (int, error) {
	if from < 0 || from >= dt.dimension {
		return 0, fmt.Errorf("unknown city %d in distance lookup (dimension %d)", from, dt.dimension)
	}

	if to < 0 || to >= dt.dimension {
		return 0, fmt.Errorf("unknown city %d in distance lookup (dimension %d)", to, dt.dimension)
	}

	if from == to {
		return 0, fmt.Errorf("distance from city %d to itself is undefined", from)
	}

	return dt.matrix[from][to], nil
}
