package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/idsearch/ids"
	"github.com/katalvlaran/idsearch/tree"
)

const ruleWidth = 80

// DefaultMaxTreeNodes caps the size of a tree printed by Reporter.Result.
const DefaultMaxTreeNodes = 5000

// ReportOptions selects the sections printed by Reporter.Result.
type ReportOptions struct {
	ShowTree  bool
	ShowPaths bool

	// MaxTreeNodes skips the tree section for larger trees; 0 means no cap.
	MaxTreeNodes int
}

// DefaultReportOptions prints every section with DefaultMaxTreeNodes.
func DefaultReportOptions() ReportOptions {
	return ReportOptions{ShowTree: true, ShowPaths: true, MaxTreeNodes: DefaultMaxTreeNodes}
}

// Reporter narrates a run: banner, per-bound progress, tree, paths, best
// path and statistics. The first write error is kept and returned by Err;
// later writes are skipped.
type Reporter struct {
	w    io.Writer
	st   Styles
	opts ReportOptions
	err  error
}

// NewReporter returns a Reporter writing to w.
func NewReporter(w io.Writer, st Styles, opts ReportOptions) *Reporter {
	return &Reporter{w: w, st: st, opts: opts}
}

// Err returns the first write error, if any.
func (r *Reporter) Err() error { return r.err }

func (r *Reporter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *Reporter) rule(ch string) {
	r.printf("%s\n", r.st.Rule.Render(strings.Repeat(ch, ruleWidth)))
}

func (r *Reporter) heading(title string) {
	r.rule("=")
	r.printf("%s\n", r.st.Title.Render(title))
	r.rule("=")
}

// Banner prints the run header.
func (r *Reporter) Banner(initial, goal int) {
	r.printf("\n")
	r.heading("ITERATIVE DEEPENING SEARCH")
	r.printf("Initial state: %d\n", initial)
	r.printf("Goal state:    %d\n", goal)
	r.printf("Actions:       %s (add 1) and %s (multiply by 2)\n", tree.ActionIncrement, tree.ActionDouble)
	r.rule("=")
	r.printf("\n")
}

// Bound prints the outcome of one depth bound; it is meant to be installed
// with ids.WithOnBound.
func (r *Reporter) Bound(br ids.BoundReport) {
	if br.Solutions > 0 {
		r.printf("Exploring depth %d... %s\n", br.Limit, r.st.Goal.Render("solution found!"))
		return
	}
	r.printf("Exploring depth %d... no solution at this level\n", br.Limit)
}

// Trivial reports that initial and goal coincide.
func (r *Reporter) Trivial(state int) {
	r.printf("\nInitial and goal states are both %d: no action needed.\n", state)
	r.printf("Cost: 0\n")
}

// Result prints the sections of a successful run selected by ReportOptions,
// followed by the best path and final statistics.
func (r *Reporter) Result(res *ids.Result, goal int) {
	if !res.Found() {
		r.Unsolved(res)
		return
	}
	if r.opts.ShowTree {
		r.tree(res, goal)
	}
	if r.opts.ShowPaths {
		r.paths(res.Solutions)
	}
	r.best(res.Best)
	r.stats(res)
}

// Unsolved reports that every bound was exhausted.
func (r *Reporter) Unsolved(res *ids.Result) {
	r.printf("\n%s\n", r.st.Failure.Render(fmt.Sprintf("No solution found up to depth %d", res.Limit)))
	r.printf("Nodes explored: %d\n", res.TotalVisited)
}

func (r *Reporter) tree(res *ids.Result, goal int) {
	r.printf("\n")
	r.heading("SEARCH TREE")
	r.printf("\n")
	if size := res.Root.Size(); r.opts.MaxTreeNodes > 0 && size > r.opts.MaxTreeNodes {
		r.printf("Tree has %d nodes; rendering skipped (limit %d)\n\n", size, r.opts.MaxTreeNodes)
		return
	}
	r.printf("%s\n\n", Tree(res.Root, goal, res.Solutions, r.st))
}

func (r *Reporter) paths(solutions []*tree.Node) {
	r.heading(fmt.Sprintf("ALL PATHS FOUND (%d path(s))", len(solutions)))
	r.printf("\n")
	for i, s := range solutions {
		r.printf("Path #%d:\n", i+1)
		r.rule("-")
		r.printf("  %s\n", PathString(s))
		r.printf("  Total cost: %d | Steps: %d\n\n", s.Cost(), len(s.Path())-1)
	}
}

func (r *Reporter) best(best *tree.Node) {
	r.heading("BEST PATH (lowest cost)")
	r.printf("\nStep by step:\n")
	r.rule("-")
	for i, s := range best.Path() {
		if s.Action == tree.ActionNone {
			r.printf("  Start: state = %d\n", s.State)
			continue
		}
		r.printf("  Step %d: apply '%s' -> resulting state: %d\n", i, s.Action, s.State)
	}
	r.printf("\n")
}

func (r *Reporter) stats(res *ids.Result) {
	r.heading("FINAL STATISTICS")
	r.printf("  Valid paths:     %d\n", len(res.Solutions))
	r.printf("  Nodes explored:  %d\n", res.TotalVisited)
	r.printf("  Best path cost:  %d\n", res.Best.Cost())
	r.printf("  Solution depth:  %d\n", res.Limit)
	r.rule("=")
}
