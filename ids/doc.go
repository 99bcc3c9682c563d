// Package ids implements iterative-deepening search (IDS) over the integer
// state space generated by the actions "+1" and "*2".
//
// What:
//
//   - Search: a single depth-limited tree search from a fresh root. It uses an
//     explicit LIFO work stack; successors are pushed in reverse so that "+1"
//     is processed before "*2". Goal nodes are recorded and never expanded.
//   - Solve: the iterative-deepening driver. It runs Search with bounds
//     0, 1, ..., maxLimit-1 on a new tree each time, accumulates the number of
//     visited nodes and stops at the first bound that yields a solution.
//   - MinCost: picks the minimum-cost node from a solution set.
//
// Cycle avoidance is per branch: a successor is pushed only if its state is
// absent from the parent chain of the node being expanded. A state that
// appears on two different branches is explored on both, so alternate paths
// of equal cost are all reported.
//
// Outcomes:
//
//   - Found:     *Result with Best != nil and a nil error.
//   - Exhausted: *Result with Best == nil and ErrUnsolved. This is a reportable
//     outcome rather than a failure: no solution exists within maxLimit bounds.
//
// Options:
//
//   - WithLogger(l)          per-bound debug logging (default slog.Default()).
//   - WithOnBound(fn)        hook invoked after every bound.
//   - WithContext(ctx)       parent context for tracing spans.
//   - WithPruneOvershoot()   skip expanding nodes whose state exceeds the goal.
//
// Complexity:
//
//   - Search: Time O(2^limit), Memory O(2^limit) for the retained tree.
//   - Solve:  Time O(2^maxLimit) over all bounds combined.
//
// Errors:
//
//   - ErrNilRoot            Search called with a nil root.
//   - ErrOptionViolation    negative limit or an invalid option.
//   - ErrUnsolved           no solution within maxLimit bounds.
//
// Each call is synchronous and owns its tree; nothing is shared between calls
// except the package-level Prometheus collectors.
package ids
