package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/idsearch/tree"
)

// PathString formats the path from the root to n on one line:
//
//	[1] --*2--> [2] --*2--> [4]
func PathString(n *tree.Node) string {
	if n == nil {
		return ""
	}
	steps := n.Path()
	parts := make([]string, 0, len(steps))
	for i, s := range steps {
		if i == 0 {
			parts = append(parts, fmt.Sprintf("[%d]", s.State))
			continue
		}
		parts = append(parts, fmt.Sprintf("--%s--> [%d]", s.Action, s.State))
	}

	return strings.Join(parts, " ")
}

// Paths formats every solution with PathString, preserving order.
func Paths(solutions []*tree.Node) []string {
	out := make([]string, 0, len(solutions))
	for _, s := range solutions {
		out = append(out, PathString(s))
	}

	return out
}
