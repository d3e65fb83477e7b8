package environment

import (
	"fmt"

	"ant_system_tsp/modules/algorithms/nearestNeighbor"
	"ant_system_tsp/modules/models"
)

// PheromoneMap is the shared trail-strength matrix, one non-negative
// value per directed edge. It is mutated exactly once per iteration:
// a full evaporation pass over every edge, then the deposits of that
// iteration's tour batch.
type PheromoneMap struct {
	dimension int
	distances *DistanceTable
	trails    [][]float64
}

func NewPheromoneMap(distances *DistanceTable) *PheromoneMap {
	dimension := distances.Dimension()
	trails := make([][]float64, dimension)
	for i := range trails {
		trails[i] = make([]float64, dimension)
	}

	pm := &PheromoneMap{dimension: dimension, distances: distances, trails: trails}
	pm.Initialize()

	return pm
}

// Initialize sets every off-diagonal trail to tau0 = 1/(n*Lnn), where
// Lnn is a greedy nearest-neighbor tour length started from city 0.
// The fixed start makes initialization deterministic for a given
// instance, so re-initializing yields identical trails.
func (pm *PheromoneMap) Initialize() {
	nnLength := nearestNeighbor.GreedyTourLength(pm.distances.Matrix(), 0)

	tau0 := 1.0
	if nnLength > 0 {
		tau0 = 1.0 / (float64(pm.dimension) * float64(nnLength))
	}

	for i := range pm.trails {
		for j := range pm.trails[i] {
			if i == j {
				pm.trails[i][j] = 0
				continue
			}

			pm.trails[i][j] = tau0
		}
	}
}

// EvaporateAndDeposit applies one Ant System update: every edge decays
// by the factor (1-rho) first, then each tour deposits 1/length on both
// directions of each of its edges, wrap-around edge included. The
// evaporation pass completes before any deposit so pheromone laid down
// this round is never decayed by it.
func (pm *PheromoneMap) EvaporateAndDeposit(rho float64, tours [][]int, lengths []int) error {
	if len(tours) != len(lengths) {
		return fmt.Errorf("got %d tours but %d lengths", len(tours), len(lengths))
	}

	evaporationCoefficient := 1 - rho
	for i := range pm.trails {
		for j := range pm.trails[i] {
			pm.trails[i][j] *= evaporationCoefficient
		}
	}

	for k, tour := range tours {
		if lengths[k] <= 0 {
			return fmt.Errorf("tour %d has non-positive length %d", k, lengths[k])
		}

		deposit := 1.0 / float64(lengths[k])

		// Symmetric instance: reinforce both directions equally.
		for _, edge := range models.ConvertTourToEdges(tour) {
			pm.trails[edge.From][edge.To] += deposit
			pm.trails[edge.To][edge.From] += deposit
		}
	}

	return nil
}

func (pm *PheromoneMap) Trail(from, to int) float64 {
	return pm.trails[from][to]
}

// Trails exposes the backing matrix for hot loops. Callers must treat
// it as read-only between updates.
func (pm *PheromoneMap) Trails() [][]float64 {
	return pm.trails
}
