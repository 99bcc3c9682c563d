// Package idsearch is an iterative-deepening search toolkit for the integer
// state space generated by two actions: add one ("+1") and double ("*2").
//
// What is idsearch?
//
//	Given an initial state and a goal state, idsearch finds every
//	minimum-depth action sequence between them, picks the cheapest one and
//	renders the search tree explored at the successful depth bound.
//
// Under the hood, everything is organized under these packages:
//
//	tree/          — Node, Action, Expand, Path and solution highlighting
//	ids/           — depth-limited search, iterative-deepening driver, metrics, spans
//	render/        — tree diagram, path strings and run report (lipgloss)
//	input/         — parsing, validation and interactive entry of the two states
//	config/        — YAML configuration and logger construction
//	cmd/idsearch/  — the command-line front end
//
// Quick example, 1 → 4:
//
//	[+] ROOT: 1 (initial state)
//	├── [+] [+1] -> 2 (solution path)
//	│   ├── [ ] [+1] -> 3
//	│   └── [*] [*2] -> 4 <<< GOAL!
//	└── [+] [*2] -> 2 (solution path)
//	    ├── [ ] [+1] -> 3
//	    └── [*] [*2] -> 4 <<< GOAL!
//
//	go install github.com/katalvlaran/idsearch/cmd/idsearch@latest
package idsearch
