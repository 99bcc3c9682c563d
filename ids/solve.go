package ids

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/idsearch/tree"
)

// Solve runs iterative-deepening search from initial towards goal with
// bounds 0 .. maxLimit-1, building a fresh tree for every bound.
//
// It stops at the first bound producing at least one solution and returns
// that bound's tree, its full solution set and the minimum-cost solution.
// If every bound fails it returns a Result with Best == nil together with
// ErrUnsolved; TotalVisited and Bounds are populated in both cases.
//
// initial == goal is normally short-circuited by callers; Solve still answers
// it with the root as a cost-0 solution at bound 0.
func Solve(initial, goal, maxLimit int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if maxLimit < 0 {
		return nil, fmt.Errorf("%w: maxLimit cannot be negative (%d)", ErrOptionViolation, maxLimit)
	}

	ctx, span := tracer.Start(o.Ctx, "ids.Solve", trace.WithAttributes(
		attribute.Int("ids.initial", initial),
		attribute.Int("ids.goal", goal),
		attribute.Int("ids.max_limit", maxLimit),
	))
	defer span.End()

	res := &Result{Bounds: make([]BoundReport, 0, min(maxLimit, 64))}
	for limit := 0; limit < maxLimit; limit++ {
		sr := search(tree.NewRoot(initial), goal, limit, o)
		res.TotalVisited += sr.Visited

		br := BoundReport{Limit: limit, Visited: sr.Visited, Solutions: len(sr.Solutions)}
		res.Bounds = append(res.Bounds, br)
		boundsExplored.Inc()
		span.AddEvent("bound", trace.WithAttributes(
			attribute.Int("ids.limit", limit),
			attribute.Int("ids.visited", sr.Visited),
			attribute.Int("ids.solutions", len(sr.Solutions)),
		))
		o.Logger.LogAttrs(ctx, slog.LevelDebug, "ids: bound explored",
			slog.Int("limit", limit),
			slog.Int("visited", sr.Visited),
			slog.Int("solutions", len(sr.Solutions)),
			slog.Int("total_visited", res.TotalVisited),
		)
		o.OnBound(br)

		if len(sr.Solutions) == 0 {
			continue
		}

		res.Root = sr.Root
		res.Solutions = sr.Solutions
		res.Best = MinCost(sr.Solutions)
		res.Limit = limit

		solveTotal.WithLabelValues(resultFound).Inc()
		solutionDepth.Observe(float64(res.Best.Cost()))
		span.SetAttributes(
			attribute.Bool("ids.found", true),
			attribute.Int("ids.limit", limit),
			attribute.Int("ids.cost", res.Best.Cost()),
			attribute.Int("ids.total_visited", res.TotalVisited),
		)

		return res, nil
	}

	res.Limit = maxLimit
	solveTotal.WithLabelValues(resultUnsolved).Inc()
	span.SetAttributes(
		attribute.Bool("ids.found", false),
		attribute.Int("ids.total_visited", res.TotalVisited),
	)
	o.Logger.LogAttrs(ctx, slog.LevelDebug, "ids: bounds exhausted",
		slog.Int("max_limit", maxLimit),
		slog.Int("total_visited", res.TotalVisited),
	)

	return res, fmt.Errorf("%w: %d → %d within %d bounds", ErrUnsolved, initial, goal, maxLimit)
}
