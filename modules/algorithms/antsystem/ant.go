package antsystem

import (
	"golang.org/x/exp/rand"

	"ant_system_tsp/modules/environment"
	"ant_system_tsp/modules/utilities"
)

// Ant constructs one complete tour per ConstructTour call using the
// random-proportional rule. All per-tour state is reset on every call;
// only the starting city (tour[0]) survives between constructions.
type Ant struct {
	alpha, beta float64
	env         *environment.Environment
	rng         *rand.Rand

	current  int
	traveled int
	tour     []int
	visited  []bool

	// Scratch buffers reused across steps to keep construction
	// allocation-free after the first call.
	candidates []int
	weights    []float64
}

func NewAnt(alpha, beta float64, start int, env *environment.Environment, rng *rand.Rand) *Ant {
	dimension := env.Dimension()

	ant := &Ant{
		alpha:      alpha,
		beta:       beta,
		env:        env,
		rng:        rng,
		tour:       make([]int, 0, dimension),
		visited:    make([]bool, dimension),
		candidates: make([]int, 0, dimension),
		weights:    make([]float64, 0, dimension),
	}
	ant.SetStart(start)

	return ant
}

// SetStart repositions the ant on a new starting city and clears all
// per-tour state.
func (a *Ant) SetStart(start int) {
	a.reset(start)
}

func (a *Ant) reset(start int) {
	a.current = start
	a.traveled = 0
	a.tour = a.tour[:0]
	a.tour = append(a.tour, start)

	for i := range a.visited {
		a.visited[i] = false
	}
	a.visited[start] = true
}

// ConstructTour builds a complete tour from the ant's starting city and
// returns it with its closed-cycle length. The returned slice is the
// ant's internal buffer: it stays valid until the next construction, so
// callers that keep a tour across iterations must copy it.
func (a *Ant) ConstructTour() ([]int, int) {
	a.reset(a.tour[0])

	dimension := a.env.Dimension()
	distances := a.env.Distances().Matrix()

	for len(a.tour) < dimension {
		next := a.selectNext(distances)

		a.traveled += distances[a.current][next]
		a.current = next
		a.tour = append(a.tour, next)
		a.visited[next] = true
	}

	// Close the cycle back to the start.
	a.traveled += distances[a.current][a.tour[0]]

	return a.tour, a.traveled
}

// selectNext applies the Ant System state transition rule: each
// unvisited city j gets weight tau(i,j)^alpha * eta(i,j)^beta with
// eta = 1/distance, then one is drawn proportionally to its weight.
func (a *Ant) selectNext(distances [][]int) int {
	trails := a.env.Pheromones().Trails()

	a.candidates = a.candidates[:0]
	a.weights = a.weights[:0]
	total := 0.0

	for j := range a.visited {
		if a.visited[j] {
			continue
		}

		// Defensive: a zero distance would blow up the heuristic, so
		// treat it as 1. Distinct cities never trigger this.
		heuristic := 1.0
		if d := distances[a.current][j]; d > 0 {
			heuristic = 1.0 / float64(d)
		}

		weight := utilities.FastPow(trails[a.current][j], a.alpha) * utilities.FastPow(heuristic, a.beta)

		a.candidates = append(a.candidates, j)
		a.weights = append(a.weights, weight)
		total += weight
	}

	return a.candidates[sampleWeighted(a.rng, a.weights, total)]
}

// sampleWeighted draws an index proportionally to its weight. When the
// weights sum to zero (fully evaporated trails) it falls back to a
// uniform draw instead of failing.
func sampleWeighted(rng *rand.Rand, weights []float64, total float64) int {
	if total <= 0 {
		return rng.Intn(len(weights))
	}

	u := rng.Float64() * total
	cumulative := 0.0

	for i, weight := range weights {
		cumulative += weight
		if u < cumulative {
			return i
		}
	}

	// Float rounding can leave u just above the final cumulative sum.
	return len(weights) - 1
}
