// Command idsearch finds the cheapest sequence of "+1" and "*2" actions that
// turns one positive integer into another, using iterative-deepening search,
// and prints the explored search tree.
//
// Usage:
//
//	idsearch [initial goal] [flags]
//
// Without arguments on a terminal, the two states are asked for interactively.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(defaultApp()).Execute(); err != nil {
		os.Exit(1)
	}
}
