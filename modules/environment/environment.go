// Package environment holds the state shared by every ant of a colony:
// the immutable city set with its precomputed ATT distance table, and
// the pheromone map together with its evaporation rate.
package environment

import (
	"fmt"

	"ant_system_tsp/modules/models"
)

type Environment struct {
	cities     []models.City
	rho        float64
	distances  *DistanceTable
	pheromones *PheromoneMap
}

func NewEnvironment(cities []models.City, rho float64) (*Environment, error) {
	if len(cities) < 2 {
		return nil, fmt.Errorf("need at least 2 cities, got %d", len(cities))
	}

	if rho < 0 || rho > 1 {
		return nil, fmt.Errorf("evaporation rate must be in [0, 1], got %g", rho)
	}

	distances := NewDistanceTable(cities)

	return &Environment{
		cities:     cities,
		rho:        rho,
		distances:  distances,
		pheromones: NewPheromoneMap(distances),
	}, nil
}

func (e *Environment) Dimension() int {
	return len(e.cities)
}

func (e *Environment) Cities() []models.City {
	return e.cities
}

func (e *Environment) Rho() float64 {
	return e.rho
}

func (e *Environment) Distances() *DistanceTable {
	return e.distances
}

func (e *Environment) Pheromones() *PheromoneMap {
	return e.pheromones
}

// UpdatePheromones runs the per-iteration evaporate-then-deposit cycle
// with the environment's evaporation rate. It is the single point where
// shared state mutates; callers must not run it concurrently with tour
// construction.
func (e *Environment) UpdatePheromones(tours [][]int, lengths []int) error {
	return e.pheromones.EvaporateAndDeposit(e.rho, tours, lengths)
}
