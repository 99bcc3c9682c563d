package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/idsearch/input"
)

type stubPrompter struct {
	initial, goal string
	err           error
}

func (s stubPrompter) Prompt() (string, string, error) { return s.initial, s.goal, s.err }

// execute runs the root command and returns stdout, stderr and the error.
func execute(t *testing.T, a *app, args ...string) (string, string, error) {
	t.Helper()
	if a == nil {
		a = &app{prompter: stubPrompter{}, interactive: func() bool { return false }}
	}
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(a)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRoot_Solve(t *testing.T) {
	out, _, err := execute(t, nil, "--plain", "2", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Exploring depth 0... no solution at this level")
	assert.Contains(t, out, "├── [*] [+1] -> 3 <<< GOAL!")
	assert.Contains(t, out, "  [2] --+1--> [3]")
	assert.Contains(t, out, "  Solution depth:  1")
}

func TestRoot_Trivial(t *testing.T) {
	out, _, err := execute(t, nil, "--plain", "3", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "no action needed")
	assert.NotContains(t, out, "ITERATIVE DEEPENING SEARCH", "search is not invoked")
}

func TestRoot_InvalidInput(t *testing.T) {
	_, _, err := execute(t, nil, "5", "4")
	assert.ErrorIs(t, err, input.ErrInitialAboveGoal)

	_, _, err = execute(t, nil, "0", "4")
	assert.ErrorIs(t, err, input.ErrNonPositive)

	_, _, err = execute(t, nil, "one", "4")
	assert.ErrorIs(t, err, input.ErrNotInteger)

	_, _, err = execute(t, nil, "4")
	assert.Error(t, err)
}

func TestRoot_NonInteractiveWithoutArgs(t *testing.T) {
	_, _, err := execute(t, nil)
	assert.ErrorIs(t, err, errMissingStates)
}

func TestRoot_Interactive(t *testing.T) {
	a := &app{prompter: stubPrompter{initial: "1", goal: "4"}, interactive: func() bool { return true }}
	out, _, err := execute(t, a, "--plain", "--no-tree")
	require.NoError(t, err)
	assert.NotContains(t, out, "SEARCH TREE")
	assert.Contains(t, out, "ALL PATHS FOUND (2 path(s))")
}

func TestRoot_InteractiveAborted(t *testing.T) {
	a := &app{prompter: stubPrompter{err: input.ErrAborted}, interactive: func() bool { return true }}
	out, errOut, err := execute(t, a)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Interrupted by user.")
}

func TestRoot_Unsolved(t *testing.T) {
	out, _, err := execute(t, nil, "--plain", "--max-limit", "2", "1", "100")
	require.NoError(t, err, "running out of bounds is a reportable outcome")
	assert.Contains(t, out, "No solution found up to depth 2")
}

func TestRoot_InvalidMaxLimit(t *testing.T) {
	_, _, err := execute(t, nil, "--max-limit", "0", "1", "4")
	assert.Error(t, err)
}

func TestRoot_Metrics(t *testing.T) {
	out, _, err := execute(t, nil, "--plain", "--metrics", "--no-tree", "--no-paths", "1", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "idsearch_solve_total")
	assert.Contains(t, out, "idsearch_nodes_visited_total")
	assert.NotContains(t, out, "go_goroutines")
}

func TestRoot_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idsearch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  plain: true\n  show_paths: false\nlog:\n  level: info\n"), 0o600))

	out, errOut, err := execute(t, nil, "--config", path, "1", "4")
	require.NoError(t, err)
	assert.NotContains(t, out, "ALL PATHS FOUND")
	assert.Contains(t, out, "BEST PATH (lowest cost)")
	assert.Contains(t, errOut, "request accepted")
	assert.Contains(t, errOut, "run_id=")
}

func TestRoot_Trace(t *testing.T) {
	_, errOut, err := execute(t, nil, "--plain", "--trace", "2", "3")
	require.NoError(t, err)
	assert.Contains(t, errOut, "ids.Solve")
	assert.Contains(t, errOut, "idsearch.run")
}
