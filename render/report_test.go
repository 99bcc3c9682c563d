package render_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/idsearch/ids"
	"github.com/katalvlaran/idsearch/render"
)

func TestReporter_Result(t *testing.T) {
	var buf bytes.Buffer
	r := render.NewReporter(&buf, render.PlainStyles(), render.DefaultReportOptions())

	r.Banner(1, 4)
	res, err := ids.Solve(1, 4, ids.DefaultMaxLimit, ids.WithOnBound(r.Bound))
	require.NoError(t, err)
	r.Result(res, 4)
	require.NoError(t, r.Err())

	out := buf.String()
	assert.Contains(t, out, "ITERATIVE DEEPENING SEARCH")
	assert.Contains(t, out, "Exploring depth 0... no solution at this level")
	assert.Contains(t, out, "Exploring depth 2... solution found!")
	assert.Contains(t, out, "└── [+] [*2] -> 2 (solution path)")
	assert.Contains(t, out, "ALL PATHS FOUND (2 path(s))")
	assert.Contains(t, out, "  [1] --*2--> [2] --*2--> [4]")
	assert.Contains(t, out, "  Total cost: 2 | Steps: 2")
	assert.Contains(t, out, "  Start: state = 1")
	assert.Contains(t, out, "  Step 2: apply '*2' -> resulting state: 4")
	assert.Contains(t, out, "  Nodes explored:  11")
	assert.Contains(t, out, "  Solution depth:  2")
}

func TestReporter_SectionsDisabled(t *testing.T) {
	var buf bytes.Buffer
	r := render.NewReporter(&buf, render.PlainStyles(), render.ReportOptions{})
	res, err := ids.Solve(2, 3, ids.DefaultMaxLimit)
	require.NoError(t, err)
	r.Result(res, 3)

	out := buf.String()
	assert.NotContains(t, out, "SEARCH TREE")
	assert.NotContains(t, out, "ALL PATHS FOUND")
	assert.Contains(t, out, "BEST PATH (lowest cost)")
	assert.Contains(t, out, "FINAL STATISTICS")
}

func TestReporter_TreeTooLarge(t *testing.T) {
	var buf bytes.Buffer
	r := render.NewReporter(&buf, render.PlainStyles(), render.ReportOptions{ShowTree: true, MaxTreeNodes: 3})
	res, err := ids.Solve(1, 4, ids.DefaultMaxLimit)
	require.NoError(t, err)
	r.Result(res, 4)
	assert.Contains(t, buf.String(), "Tree has 7 nodes; rendering skipped (limit 3)")
}

func TestReporter_Unsolved(t *testing.T) {
	var buf bytes.Buffer
	r := render.NewReporter(&buf, render.PlainStyles(), render.DefaultReportOptions())
	res, err := ids.Solve(1, 100, 3)
	require.ErrorIs(t, err, ids.ErrUnsolved)
	r.Result(res, 100)

	assert.Contains(t, buf.String(), "No solution found up to depth 3")
	assert.Contains(t, buf.String(), "Nodes explored: 11")
}

func TestReporter_Trivial(t *testing.T) {
	var buf bytes.Buffer
	render.NewReporter(&buf, render.PlainStyles(), render.DefaultReportOptions()).Trivial(7)
	assert.Contains(t, buf.String(), "no action needed")
	assert.Contains(t, buf.String(), "Cost: 0")
}

type failingWriter struct{ calls int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, errors.New("disk full")
}

func TestReporter_KeepsFirstError(t *testing.T) {
	w := &failingWriter{}
	r := render.NewReporter(w, render.PlainStyles(), render.DefaultReportOptions())
	r.Banner(1, 2)
	r.Trivial(1)
	assert.EqualError(t, r.Err(), "disk full")
	assert.Equal(t, 1, w.calls, "writes stop after the first failure")
}
