// Package input collects and validates the two integers a search run needs:
// the initial state and the goal state. Both must be positive and the initial
// state may not exceed the goal, since neither action can decrease a value.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors for rejected input.
var (
	// ErrNotInteger is returned when a value does not parse as an integer.
	ErrNotInteger = errors.New("input: not a valid integer")

	// ErrNonPositive is returned when a state is zero or negative.
	ErrNonPositive = errors.New("input: states must be positive")

	// ErrInitialAboveGoal is returned when the initial state exceeds the goal;
	// "+1" and "*2" can never decrease a positive value.
	ErrInitialAboveGoal = errors.New("input: initial state cannot be greater than goal state")

	// ErrAborted is returned when the user interrupts an interactive prompt.
	ErrAborted = errors.New("input: interrupted by user")
)

// Request is a validated pair of states.
type Request struct {
	Initial int `validate:"gt=0,ltefield=Goal"`
	Goal    int `validate:"gt=0"`
}

// Trivial reports whether no action is needed.
func (r Request) Trivial() bool { return r.Initial == r.Goal }

var validate = validator.New()

// Validate checks r and maps the first violated rule to a sentinel error.
// Positivity is reported before ordering.
func Validate(r Request) error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	ordering := false
	for _, fe := range verrs {
		switch fe.Tag() {
		case "gt":
			return fmt.Errorf("%w: %s = %v", ErrNonPositive, strings.ToLower(fe.Field()), fe.Value())
		case "ltefield":
			ordering = true
		}
	}
	if ordering {
		return fmt.Errorf("%w: %d > %d", ErrInitialAboveGoal, r.Initial, r.Goal)
	}

	return err
}

// Parse converts the textual initial and goal states into a validated Request.
func Parse(initial, goal string) (Request, error) {
	i, err := parseInt(initial)
	if err != nil {
		return Request{}, err
	}
	g, err := parseInt(goal)
	if err != nil {
		return Request{}, err
	}
	r := Request{Initial: i, Goal: g}
	if err = Validate(r); err != nil {
		return Request{}, err
	}

	return r, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, s)
	}

	return n, nil
}

// positiveInt is the per-field check used by interactive prompts.
func positiveInt(s string) error {
	n, err := parseInt(s)
	if err != nil {
		return err
	}
	if n <= 0 {
		return ErrNonPositive
	}

	return nil
}
