package command_test

import (
	"testing"

	"school/internal/pkg/command"
	"school/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_TransitionTo(t *testing.T) {
	allowed := map[command.State][]command.State{
		command.Init:  {command.Ready, command.Fail, command.Cancel},
		command.Ready: {command.Work, command.Fail, command.Cancel},
		command.Work:  {command.Done, command.Fail},
		command.Done:  {command.Undone, command.Fail},
	}
	all := []command.State{
		command.Init, command.Ready, command.Work, command.Done,
		command.Fail, command.Undone, command.Cancel,
	}

	for _, from := range all {
		for _, to := range all {
			next, err := from.TransitionTo(to)
			if contains(allowed[from], to) {
				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, next)
				continue
			}
			require.ErrorIs(t, err, command.ErrIllegalTransition, "%s -> %s", from, to)
			assert.Equal(t, from, next)
		}
	}
}

func TestState_TerminalStatesHaveNoExit(t *testing.T) {
	for _, s := range []command.State{command.Fail, command.Undone, command.Cancel} {
		assert.True(t, s.IsTerminal(), s.String())
		for _, to := range []command.State{command.Init, command.Ready, command.Work, command.Done, command.Fail} {
			assert.False(t, s.CanTransitionTo(to), "%s -> %s", s, to)
		}
	}
	assert.False(t, command.Done.IsTerminal())
}

func TestState_Validate(t *testing.T) {
	require.NoError(t, command.Ready.Validate())
	require.ErrorIs(t, command.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, command.State(42).Validate(), errs.ErrValueIsInvalid)
	assert.Equal(t, "Unknown", command.State(42).String())
	assert.Equal(t, "Cancel", command.Cancel.String())
}

func contains(states []command.State, s command.State) bool {
	for _, candidate := range states {
		if candidate == s {
			return true
		}
	}
	return false
}
