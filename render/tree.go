package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/idsearch/tree"
)

// Node markers.
const (
	markGoal   = "[*]"
	markOnPath = "[+]"
	markPlain  = "[ ]"

	labelGoal   = " <<< GOAL!"
	labelOnPath = " (solution path)"
)

// Tree connectors.
const (
	branchMid  = "├── "
	branchLast = "└── "
	indentMid  = "│   "
	indentLast = "    "
)

// Tree draws the subtree rooted at root, one node per line, children in
// insertion order. Goal nodes are marked [*], nodes on the path of any
// solution [+], all others [ ]. The result has no trailing newline.
func Tree(root *tree.Node, goal int, solutions []*tree.Node, st Styles) string {
	if root == nil {
		return ""
	}
	d := drawer{goal: goal, onPath: tree.NewHighlight(solutions...), st: st}
	mark, _ := d.marker(root)
	d.lines = append(d.lines, fmt.Sprintf("%s ROOT: %d (initial state)", mark, root.State()))
	d.children(root, "")

	return strings.Join(d.lines, "\n")
}

type drawer struct {
	goal   int
	onPath tree.Highlight
	st     Styles
	lines  []string
}

// marker returns the styled marker and trailing label for n.
func (d *drawer) marker(n *tree.Node) (string, string) {
	switch {
	case n.State() == d.goal:
		return d.st.Goal.Render(markGoal), d.st.Goal.Render(labelGoal)
	case d.onPath.Contains(n):
		return d.st.OnPath.Render(markOnPath), d.st.OnPath.Render(labelOnPath)
	default:
		return markPlain, ""
	}
}

// children appends the lines of n's descendants; depth is bounded by the
// search limit so recursion is safe.
func (d *drawer) children(n *tree.Node, prefix string) {
	kids := n.Children()
	for i, c := range kids {
		last := i == len(kids)-1
		branch, indent := branchMid, indentMid
		if last {
			branch, indent = branchLast, indentLast
		}
		mark, label := d.marker(c)
		d.lines = append(d.lines, fmt.Sprintf("%s%s [%s] -> %d%s",
			d.st.Branch.Render(prefix+branch), mark, c.Action(), c.State(), label))
		d.children(c, prefix+indent)
	}
}
