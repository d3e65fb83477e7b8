// Package antsystem implements the plain Ant System metaheuristic for
// the symmetric TSP: a fixed population of ants constructs tours biased
// by a shared pheromone map, which evaporates and is reinforced by the
// whole tour batch once per iteration.
package antsystem

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"ant_system_tsp/modules/environment"
	"ant_system_tsp/modules/models"
)

type Colony struct {
	alpha, beta float64
	antCount    int
	iterations  int

	env  *environment.Environment
	ants []*Ant
	rng  *rand.Rand

	BestTour              []int
	BestLength            int
	BestAtIteration       int
	BestLengthAtIteration []int

	// OnProgress, when set, is invoked after every iteration with the
	// iteration index and the best length found so far.
	OnProgress func(iteration, bestLength int)
}

// NewColony validates the run parameters, builds the shared environment
// (distance table plus initialized pheromone map) and spawns the ants.
// The seed fixes every random draw of the run, so equal seeds give
// bit-identical results.
func NewColony(cities []models.City, antCount, iterations int, alpha, beta, rho float64, seed uint64) (*Colony, error) {
	if antCount <= 0 {
		return nil, fmt.Errorf("population size must be positive, got %d", antCount)
	}

	if iterations < 0 {
		return nil, fmt.Errorf("iterations must be non-negative, got %d", iterations)
	}

	env, err := environment.NewEnvironment(cities, rho)
	if err != nil {
		return nil, err
	}

	colony := &Colony{
		alpha:      alpha,
		beta:       beta,
		antCount:   antCount,
		iterations: iterations,
		env:        env,
		rng:        rand.New(rand.NewSource(seed)),
	}
	colony.spawnAnts()

	return colony, nil
}

// spawnAnts rebuilds the ant population with fresh per-tour state. Each
// ant gets its own RNG stream derived from the colony RNG so draws stay
// reproducible regardless of population size.
func (c *Colony) spawnAnts() {
	c.ants = make([]*Ant, c.antCount)
	for i := range c.ants {
		antRng := rand.New(rand.NewSource(c.rng.Uint64()))
		c.ants[i] = NewAnt(c.alpha, c.beta, 0, c.env, antRng)
	}
}

// SetParameters changes alpha and beta and rebuilds the ant set, since
// the selection weights every ant carries depend on both.
func (c *Colony) SetParameters(alpha, beta float64) {
	c.alpha = alpha
	c.beta = beta
	c.spawnAnts()
}

// SetRho changes the evaporation rate by rebuilding the whole
// environment, trails re-initialized to tau0 included, and resets the
// ants to match. A partial patch of rho alone would keep trails shaped
// by the old rate.
func (c *Colony) SetRho(rho float64) error {
	env, err := environment.NewEnvironment(c.env.Cities(), rho)
	if err != nil {
		return err
	}

	c.env = env
	c.spawnAnts()

	return nil
}

func (c *Colony) Environment() *environment.Environment {
	return c.env
}

// Run executes the full optimization and returns a copy of the best
// tour with its length. Starting cities are drawn uniformly with
// replacement once, before the iteration loop; from then on every ant
// restarts each tour from that same city.
func (c *Colony) Run() ([]int, int, error) {
	c.BestTour = nil
	c.BestLength = math.MaxInt
	c.BestAtIteration = 0
	c.BestLengthAtIteration = make([]int, c.iterations)

	dimension := c.env.Dimension()
	for _, ant := range c.ants {
		ant.SetStart(c.rng.Intn(dimension))
	}

	tours := make([][]int, c.antCount)
	lengths := make([]int, c.antCount)

	for iteration := 0; iteration < c.iterations; iteration++ {

		for i, ant := range c.ants {
			tours[i], lengths[i] = ant.ConstructTour()

			if lengths[i] < c.BestLength {
				c.BestLength = lengths[i]
				c.BestTour = append([]int(nil), tours[i]...)
				c.BestAtIteration = iteration
			}
		}

		// The whole batch feeds one update; construction in the next
		// iteration only starts once it is done.
		if err := c.env.UpdatePheromones(tours, lengths); err != nil {
			return nil, 0, err
		}

		c.BestLengthAtIteration[iteration] = c.BestLength

		if c.OnProgress != nil {
			c.OnProgress(iteration, c.BestLength)
		}
	}

	return append([]int(nil), c.BestTour...), c.BestLength, nil
}
