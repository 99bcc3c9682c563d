package ids_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/idsearch/ids"
)

// ExampleSolve finds the cheapest way to turn 1 into 10 using "+1" and "*2".
// Bounds 0..3 fail; bound 4 reaches 10 along two branches and the first one
// discovered is reported.
func ExampleSolve() {
	res, err := ids.Solve(1, 10, ids.DefaultMaxLimit)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("bound:", res.Limit, "cost:", res.Best.Cost())
	for _, step := range res.Best.Path() {
		fmt.Printf("%s %d\n", step.Action, step.State)
	}

	// Output:
	// bound: 4 cost: 4
	// none 1
	// +1 2
	// *2 4
	// +1 5
	// *2 10
}

// ExampleSolve_unsolved shows the reportable outcome when the bound budget is
// too small to reach the goal.
func ExampleSolve_unsolved() {
	res, err := ids.Solve(1, 100, 3)
	fmt.Println(errors.Is(err, ids.ErrUnsolved), res.Found(), res.TotalVisited)

	// Output:
	// true false 11
}
