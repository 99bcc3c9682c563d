package tree

// Highlight is the set of nodes lying on at least one solution's
// root-to-node path. Membership is by node identity, not by state, so two
// nodes holding the same state on different branches are told apart.
type Highlight struct {
	set map[*Node]struct{}
}

// NewHighlight builds a Highlight by walking the parent chain of every
// solution up to the root. Nil solutions are ignored.
func NewHighlight(solutions ...*Node) Highlight {
	h := Highlight{set: make(map[*Node]struct{})}
	for _, sol := range solutions {
		for cur := sol; cur != nil; cur = cur.parent {
			if _, seen := h.set[cur]; seen {
				break // the rest of the chain is already marked
			}
			h.set[cur] = struct{}{}
		}
	}

	return h
}

// Contains reports whether n lies on some solution path.
func (h Highlight) Contains(n *Node) bool {
	_, ok := h.set[n]
	return ok
}

// Len returns the number of highlighted nodes.
func (h Highlight) Len() int { return len(h.set) }
