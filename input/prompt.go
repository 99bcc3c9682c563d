package input

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// Prompter asks the user for the raw initial and goal values.
type Prompter interface {
	Prompt() (initial, goal string, err error)
}

// FormPrompter prompts with a two-field huh form.
type FormPrompter struct {
	// Accessible switches huh to its line-based mode for screen readers
	// and dumb terminals.
	Accessible bool
}

// Prompt runs the form. Each field is checked as it is entered; the
// cross-field rule is applied afterwards by Collect.
func (p FormPrompter) Prompt() (string, string, error) {
	var initial, goal string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Initial state").
				Description("positive integer").
				Value(&initial).
				Validate(positiveInt),
			huh.NewInput().
				Title("Goal state").
				Description("positive integer, not smaller than the initial state").
				Value(&goal).
				Validate(positiveInt),
		),
	).WithAccessible(p.Accessible)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", "", ErrAborted
		}
		return "", "", err
	}

	return initial, goal, nil
}

// Collect prompts with p and validates the answers.
func Collect(p Prompter) (Request, error) {
	initial, goal, err := p.Prompt()
	if err != nil {
		return Request{}, err
	}

	return Parse(initial, goal)
}
