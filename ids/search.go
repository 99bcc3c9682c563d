package ids

import (
	"fmt"

	"github.com/katalvlaran/idsearch/tree"
)

// onBranch reports whether state is held by n or any of its ancestors, that
// is, whether it already lies on the root-to-n path. The walk is bounded by
// the search limit and allocates nothing.
func onBranch(n *tree.Node, state int) bool {
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur.State() == state {
			return true
		}
	}

	return false
}

// Search runs one depth-limited search from root towards goal, expanding
// nodes up to depth limit. root must be fresh: its subtree is grown in place.
//
// Returns ErrNilRoot for a nil root and ErrOptionViolation for a negative
// limit or an invalid option.
func Search(root *tree.Node, goal, limit int, opts ...Option) (*SearchResult, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit cannot be negative (%d)", ErrOptionViolation, limit)
	}

	return search(root, goal, limit, o), nil
}

// search is the validated core of Search, shared with Solve.
func search(root *tree.Node, goal, limit int, o Options) *SearchResult {
	res := &SearchResult{Root: root}
	stack := []*tree.Node{root}

	for len(stack) > 0 {
		// 1. Pop (LIFO)
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		res.Visited++

		// 2. Goal nodes are terminal
		if n.State() == goal {
			res.Solutions = append(res.Solutions, n)
			continue
		}

		// 3. Bound reached, or nothing above the goal can come back down
		if n.Depth() >= limit {
			continue
		}
		if o.PruneOvershoot && n.State() > goal {
			continue
		}

		// 4. Expand and push in reverse so "+1" pops before "*2"
		succ := n.Expand()
		for i := len(succ) - 1; i >= 0; i-- {
			if onBranch(n, succ[i].State()) {
				continue // would revisit a state of this branch
			}
			stack = append(stack, succ[i])
		}
	}
	nodesVisited.Add(float64(res.Visited))

	return res
}
