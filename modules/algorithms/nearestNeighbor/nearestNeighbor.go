package nearestNeighbor

// GreedyTourLength builds a nearest-neighbor tour over the distance
// matrix, starting from `start`, always moving to the closest unvisited
// city, and returns its closed-cycle length. Used to scale the initial
// pheromone level; the tour itself is not kept.
func GreedyTourLength(distances [][]int, start int) int {
	n := len(distances)
	if n < 2 {
		return 0
	}

	visited := make([]bool, n)
	visited[start] = true
	current := start
	length := 0

	for visitedCount := 1; visitedCount < n; visitedCount++ {
		next := -1
		for candidate := 0; candidate < n; candidate++ {
			if visited[candidate] {
				continue
			}

			if next == -1 || distances[current][candidate] < distances[current][next] {
				next = candidate
			}
		}

		length += distances[current][next]
		visited[next] = true
		current = next
	}

	// Close the cycle back to the start.
	length += distances[current][start]

	return length
}
