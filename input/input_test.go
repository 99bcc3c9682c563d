package input_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/idsearch/input"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		goal    string
		want    input.Request
		wantErr error
	}{
		{name: "valid", initial: "2", goal: "3", want: input.Request{Initial: 2, Goal: 3}},
		{name: "equal", initial: "3", goal: "3", want: input.Request{Initial: 3, Goal: 3}},
		{name: "whitespace", initial: " 1 ", goal: "4\n", want: input.Request{Initial: 1, Goal: 4}},
		{name: "not integer", initial: "two", goal: "3", wantErr: input.ErrNotInteger},
		{name: "float goal", initial: "1", goal: "4.5", wantErr: input.ErrNotInteger},
		{name: "zero initial", initial: "0", goal: "3", wantErr: input.ErrNonPositive},
		{name: "negative goal", initial: "1", goal: "-3", wantErr: input.ErrNonPositive},
		{name: "initial above goal", initial: "5", goal: "4", wantErr: input.ErrInitialAboveGoal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := input.Parse(tc.initial, tc.goal)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidate_PositivityFirst(t *testing.T) {
	// both rules fail; positivity is reported
	err := input.Validate(input.Request{Initial: 5, Goal: -1})
	assert.ErrorIs(t, err, input.ErrNonPositive)
}

func TestRequest_Trivial(t *testing.T) {
	assert.True(t, input.Request{Initial: 1, Goal: 1}.Trivial())
	assert.False(t, input.Request{Initial: 1, Goal: 2}.Trivial())
}

type stubPrompter struct {
	initial, goal string
	err           error
}

func (s stubPrompter) Prompt() (string, string, error) { return s.initial, s.goal, s.err }

func TestCollect(t *testing.T) {
	got, err := input.Collect(stubPrompter{initial: "1", goal: "4"})
	require.NoError(t, err)
	assert.Equal(t, input.Request{Initial: 1, Goal: 4}, got)

	_, err = input.Collect(stubPrompter{initial: "5", goal: "4"})
	assert.ErrorIs(t, err, input.ErrInitialAboveGoal)

	_, err = input.Collect(stubPrompter{err: input.ErrAborted})
	assert.ErrorIs(t, err, input.ErrAborted)

	boom := errors.New("tty gone")
	_, err = input.Collect(stubPrompter{err: boom})
	assert.ErrorIs(t, err, boom)
}
