package models

// City is a problem node: an identifier plus a 2D coordinate.
// Cities are immutable once loaded and their set is fixed for a run.
type City struct {
	Id   int
	X, Y float64
}

type Edge struct {
	From, To int
}

// ConvertTourToEdges turns a closed tour (a permutation of city indices)
// into its directed edges, wrap-around edge included.
func ConvertTourToEdges(tour []int) []Edge {
	n := len(tour)
	tourEdges := make([]Edge, n)

	for i := 0; i < n-1; i++ {
		tourEdges[i] = Edge{From: tour[i], To: tour[i+1]}
	}
	last, first := tour[n-1], tour[0]
	tourEdges[n-1] = Edge{From: last, To: first}

	return tourEdges
}
