package tree

import "math"

// Action names the operator that produced a node from its parent.
type Action string

const (
	// ActionNone marks the root, which was not produced by any operator.
	ActionNone Action = ""

	// ActionIncrement adds one to the parent state.
	ActionIncrement Action = "+1"

	// ActionDouble multiplies the parent state by two.
	ActionDouble Action = "*2"
)

// Actions lists the operators in generation order. Expand creates children
// in exactly this order.
var Actions = [...]Action{ActionIncrement, ActionDouble}

// Apply returns the state obtained by applying a to state.
// ActionNone (and any unknown action) leaves the state unchanged.
func (a Action) Apply(state int) int {
	switch a {
	case ActionIncrement:
		return state + 1
	case ActionDouble:
		return state * 2
	default:
		return state
	}
}

// Next applies a to state and reports whether the result is representable
// as an int. Overflowing results are never produced: ok is false and the
// returned state is the input unchanged.
func (a Action) Next(state int) (next int, ok bool) {
	switch a {
	case ActionIncrement:
		if state == math.MaxInt {
			return state, false
		}
	case ActionDouble:
		if state > math.MaxInt/2 || state < math.MinInt/2 {
			return state, false
		}
	}

	return a.Apply(state), true
}

// String implements fmt.Stringer.
func (a Action) String() string {
	if a == ActionNone {
		return "none"
	}

	return string(a)
}

// Step is one entry of a reconstructed path: the state reached and the
// action that reached it (ActionNone for the root entry).
type Step struct {
	State  int
	Action Action
}

// Node is one state reached along one specific action sequence from the root.
//
// All fields are private; renderers and reports read them through accessors so
// that a tree handed out by a search cannot be reshaped by its consumers.
type Node struct {
	state    int
	parent   *Node  // nil only for the root
	action   Action // ActionNone only for the root
	cost     int    // number of actions applied so far
	depth    int    // distance from the root, always equal to cost
	children []*Node
	expanded bool
}
