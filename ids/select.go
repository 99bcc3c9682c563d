package ids

import "github.com/katalvlaran/idsearch/tree"

// MinCost returns the solution with the smallest cost, keeping the earliest
// one on ties. It returns nil for an empty slice.
//
// Within a single bound every solution has the same cost, so the choice is
// effectively the first node found; the selector still compares costs so it
// stays correct for solution sets assembled from several bounds.
func MinCost(solutions []*tree.Node) *tree.Node {
	var best *tree.Node
	for _, n := range solutions {
		if n == nil {
			continue
		}
		if best == nil || n.Cost() < best.Cost() {
			best = n
		}
	}

	return best
}
