package tree

// NewRoot creates the root of a fresh search tree holding state.
// The root has cost 0, depth 0, no parent and no action.
func NewRoot(state int) *Node {
	return &Node{state: state, action: ActionNone}
}

// State returns the integer value held by n.
func (n *Node) State() int { return n.state }

// Parent returns the node n was generated from, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Action returns the operator that produced n from its parent.
func (n *Node) Action() Action { return n.action }

// Cost returns the number of actions applied from the root to n.
func (n *Node) Cost() int { return n.cost }

// Depth returns the distance between n and the root.
func (n *Node) Depth() int { return n.depth }

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// IsExpanded reports whether Expand has been called on n.
func (n *Node) IsExpanded() bool { return n.expanded }

// Children returns a copy of n's children in insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)

	return out
}

// Expand generates the successors of n, one per entry of Actions, appends
// them to n's children and returns them in generation order ("+1", "*2").
// An action whose result would overflow int yields no child, so states near
// math.MaxInt have fewer than two successors.
//
// Children are append-only: calling Expand on an already expanded node
// returns the existing children instead of generating new ones.
func (n *Node) Expand() []*Node {
	if n.expanded {
		return n.Children()
	}

	succ := make([]*Node, 0, len(Actions))
	for _, a := range Actions {
		next, ok := a.Next(n.state)
		if !ok {
			continue
		}
		child := &Node{
			state:  next,
			parent: n,
			action: a,
			cost:   n.cost + 1,
			depth:  n.depth + 1,
		}
		n.children = append(n.children, child)
		succ = append(succ, child)
	}
	n.expanded = true

	return succ
}

// Path reconstructs the sequence of (state, action) steps from the root to n.
// The first step is the root with ActionNone; len(Path()) == n.Cost()+1.
func (n *Node) Path() []Step {
	steps := make([]Step, 0, n.depth+1)
	for cur := n; cur != nil; cur = cur.parent {
		steps = append(steps, Step{State: cur.state, Action: cur.action})
	}
	// reverse to get root → n
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return steps
}

// Walk visits n and its descendants in pre-order, children in insertion
// order. If fn returns false the descendants of that node are skipped.
func (n *Node) Walk(fn func(*Node) bool) {
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur) {
			continue
		}
		// push in reverse so the first child is visited first
		for i := len(cur.children) - 1; i >= 0; i-- {
			stack = append(stack, cur.children[i])
		}
	}
}

// Size returns the number of nodes in the subtree rooted at n, n included.
func (n *Node) Size() int {
	count := 0
	n.Walk(func(*Node) bool {
		count++
		return true
	})

	return count
}
