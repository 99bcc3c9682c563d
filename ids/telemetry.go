package ids

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("idsearch/ids")

var (
	// nodesVisited counts nodes popped from the work stack across all searches.
	nodesVisited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "idsearch_nodes_visited_total",
		Help: "Total nodes visited by depth-limited searches",
	})

	// boundsExplored counts depth-limited searches run by Solve.
	boundsExplored = promauto.NewCounter(prometheus.CounterOpts{
		Name: "idsearch_bounds_explored_total",
		Help: "Total depth bounds explored by iterative deepening",
	})

	// solveTotal counts Solve calls by outcome.
	solveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "idsearch_solve_total",
		Help: "Total Solve calls by result",
	}, []string{"result"}) // "found" or "unsolved"

	// solutionDepth tracks the cost of the selected solution.
	solutionDepth = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "idsearch_solution_depth",
		Help:    "Cost of the best solution found by Solve",
		Buckets: prometheus.LinearBuckets(0, 2, 16),
	})
)

const (
	resultFound    = "found"
	resultUnsolved = "unsolved"
)
