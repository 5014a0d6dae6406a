package command_test

import (
	"context"
	"errors"
	"testing"

	"school/internal/pkg/command"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockActionExecutor struct{ mock.Mock }

func (m *MockActionExecutor) CommitAction(ctx context.Context, action *command.ActionContext, c *command.Context) {
	m.Called(ctx, action, c)
}

func (m *MockActionExecutor) RollbackAction(ctx context.Context, action *command.ActionContext, c *command.Context) {
	m.Called(ctx, action, c)
}

// actionRecorder records the action seen by ExecuteDo.
type actionRecorder struct {
	stepOperation
	seen *command.ActionContext
}

func (o *actionRecorder) ExecuteDo(ctx context.Context, redo command.Input) (any, command.Input, error) {
	o.seen, _ = command.ActionFrom(ctx)
	return o.stepOperation.ExecuteDo(ctx, redo)
}

func newFacade(t *testing.T, executor command.ActionExecutor, ops ...command.Operation) *command.Facade {
	t.Helper()
	commands := make([]command.RootCommand, 0, len(ops))
	for _, op := range ops {
		commands = append(commands, command.NewLeaf(op, nil, nil))
	}
	factory, err := command.NewFactory("courses", commands...)
	require.NoError(t, err)
	return command.NewFacade(factory, executor, nil)
}

func TestFacade_Execute_CommitsDoneAction(t *testing.T) {
	ctx := t.Context()
	recorder := &actionRecorder{stepOperation: stepOperation{id: "course.createOrUpdate", nextID: 11, journal: &journal{}}}
	executor := new(MockActionExecutor)
	executor.On("CommitAction", mock.Anything, mock.AnythingOfType("*command.ActionContext"), mock.AnythingOfType("*command.Context")).
		Run(func(args mock.Arguments) {
			action := args.Get(1).(*command.ActionContext)
			assert.Equal(t, "courses", action.Facade)
			assert.Equal(t, "createOrUpdate", action.Action)
			assert.False(t, action.FinishedAt.IsZero())
			assert.True(t, args.Get(2).(*command.Context).IsDone())
		}).Once()
	facade := newFacade(t, executor, recorder)

	result, err := facade.Execute(ctx, "createOrUpdate", "course.createOrUpdate", command.InputOf(0))

	require.NoError(t, err)
	assert.Equal(t, 11, result)
	require.NotNil(t, recorder.seen)
	assert.Equal(t, "createOrUpdate", recorder.seen.Action)
	executor.AssertExpectations(t)
}

func TestFacade_Execute_RollsBackFailedAction(t *testing.T) {
	ctx := t.Context()
	saveErr := errors.New("duplicate course name")
	op := &stepOperation{id: "course.createOrUpdate", journal: &journal{}, doErr: saveErr}
	executor := new(MockActionExecutor)
	executor.On("RollbackAction", mock.Anything, mock.Anything, mock.Anything).Once()
	facade := newFacade(t, executor, op)

	_, err := facade.Execute(ctx, "createOrUpdate", "course.createOrUpdate", command.InputOf(0))

	var execErr *command.ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "course.createOrUpdate", execErr.CommandID)
	require.ErrorIs(t, err, saveErr)
	require.ErrorIs(t, err, command.ErrCommandFailed)
	executor.AssertExpectations(t)
	executor.AssertNotCalled(t, "CommitAction", mock.Anything, mock.Anything, mock.Anything)
}

func TestFacade_Execute_UnknownCommand(t *testing.T) {
	facade := newFacade(t, nil, &stepOperation{id: "course.findById", journal: &journal{}})

	_, err := facade.Execute(t.Context(), "delete", "course.delete", command.InputOf(1))

	require.ErrorIs(t, err, command.ErrCommandIsNotRegistered)
}

func TestFacade_RunAndUndo(t *testing.T) {
	ctx := t.Context()
	j := &journal{}
	executor := new(MockActionExecutor)
	executor.On("CommitAction", mock.Anything, mock.Anything, mock.Anything).Twice()
	facade := newFacade(t, executor, &stepOperation{id: "course.createOrUpdate", nextID: 4, journal: j})

	c, err := facade.Run(ctx, "createOrUpdate", "course.createOrUpdate", command.InputOf(0))
	require.NoError(t, err)
	require.True(t, c.IsDone())

	require.NoError(t, facade.Undo(ctx, "undo", c))

	assert.True(t, c.IsUndone())
	assert.Equal(t, []string{"do course.createOrUpdate(0)", "undo course.createOrUpdate(4)"}, j.list())
	executor.AssertExpectations(t)
}

func TestDo_TypedResult(t *testing.T) {
	ctx := t.Context()
	facade := newFacade(t, nil, &stepOperation{id: "course.findById", nextID: 9, journal: &journal{}})

	id, err := command.Do[int](ctx, facade, "findById", "course.findById", command.InputOf(9))
	require.NoError(t, err)
	assert.Equal(t, 9, id)

	_, err = command.Do[string](ctx, facade, "findById", "course.findById", command.InputOf(9))
	require.ErrorIs(t, err, command.ErrInputTypeMismatch)
}

func TestActionFrom(t *testing.T) {
	_, ok := command.ActionFrom(t.Context())
	assert.False(t, ok)

	action := command.NewActionContext("students", "delete")
	got, ok := command.ActionFrom(command.WithAction(t.Context(), action))
	require.True(t, ok)
	assert.Same(t, action, got)
	assert.Zero(t, action.Duration())
	action.Finish()
	assert.GreaterOrEqual(t, action.Duration().Nanoseconds(), int64(0))
}
