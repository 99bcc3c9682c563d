package ids

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/idsearch/tree"
)

// DefaultMaxLimit is the number of bounds Solve explores when the caller has
// no better estimate.
const DefaultMaxLimit = 50

// Sentinel errors for IDS execution.
var (
	// ErrUnsolved is returned by Solve when no goal node was reached within
	// the configured number of bounds.
	ErrUnsolved = errors.New("ids: no solution within depth limit")

	// ErrNilRoot is returned when Search receives a nil root.
	ErrNilRoot = errors.New("ids: root node is nil")

	// ErrOptionViolation is returned for a negative limit or an invalid Option.
	ErrOptionViolation = errors.New("ids: invalid option supplied")
)

// Option configures Search and Solve via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for a search run.
type Options struct {
	// Ctx is the parent context of the tracing span opened by Solve.
	// It is not polled for cancellation: every bound terminates on its own.
	Ctx context.Context

	// Logger receives one debug record per explored bound.
	Logger *slog.Logger

	// OnBound is called after each bound completes, before the driver decides
	// whether to continue.
	OnBound func(BoundReport)

	// PruneOvershoot stops expansion of nodes whose state is already greater
	// than the goal. Both actions are non-decreasing for positive states, so
	// such nodes can never lead to the goal.
	PruneOvershoot bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - slog.Default() logger
//   - no-op OnBound hook
//   - pruning disabled
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Logger:         slog.Default(),
		OnBound:        func(BoundReport) {},
		PruneOvershoot: false,
	}
}

// WithContext sets the parent context for tracing.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger used for per-bound diagnostics.
// A nil logger is rejected with ErrOptionViolation.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: logger is nil", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}

// WithOnBound registers a hook invoked after every bound.
func WithOnBound(fn func(BoundReport)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBound = fn
		}
	}
}

// WithPruneOvershoot enables pruning of nodes whose state exceeds the goal.
func WithPruneOvershoot() Option {
	return func(o *Options) {
		o.PruneOvershoot = true
	}
}

// BoundReport summarizes one depth-limited search inside Solve.
type BoundReport struct {
	Limit     int // depth bound of this iteration
	Visited   int // nodes popped during this iteration
	Solutions int // goal nodes found during this iteration
}

// SearchResult is the outcome of a single depth-limited search.
type SearchResult struct {
	// Root is the tree built by the search, with every expanded node's
	// children attached.
	Root *tree.Node

	// Solutions lists goal nodes in the order they were popped.
	Solutions []*tree.Node

	// Visited counts the nodes popped from the work stack.
	Visited int
}

// Result is the outcome of Solve.
//
// On success Best, Solutions and Root describe the successful bound Limit.
// When the bounds are exhausted Best and Root are nil, Solutions is empty and
// Limit equals the configured maximum. Trees of unsuccessful bounds are never
// retained.
type Result struct {
	Best         *tree.Node
	Solutions    []*tree.Node
	Root         *tree.Node
	Limit        int
	TotalVisited int

	// Bounds records every iteration in order, the successful one included.
	Bounds []BoundReport
}

// Found reports whether a solution was found.
func (r *Result) Found() bool {
	return r != nil && r.Best != nil
}
