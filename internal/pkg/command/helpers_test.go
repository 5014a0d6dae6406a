package command_test

import (
	"context"
	"fmt"
	"sync"

	"school/internal/pkg/command"
)

// journal records side effects in call order.
type journal struct {
	mu      sync.Mutex
	entries []string
}

func (j *journal) add(format string, args ...any) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, fmt.Sprintf(format, args...))
}

// mark returns the current length, to be passed to rollbackTo.
func (j *journal) mark() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}

func (j *journal) rollbackTo(n int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = j.entries[:n]
}

func (j *journal) list() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.entries...)
}

// stepOperation saves an int "entity" and returns a generated identity.
// Its redo parameter is an int; the generated identity is nextID.
type stepOperation struct {
	id      string
	nextID  int
	journal *journal
	doErr   error
	undoErr error
}

func (o *stepOperation) ID() string { return o.id }

func (o *stepOperation) Prepare(in command.Input) (command.Input, error) {
	v, err := command.InputValue[int](in, o.id)
	if err != nil {
		return command.EmptyInput(), err
	}
	return command.InputOf(v), nil
}

func (o *stepOperation) ExecuteDo(_ context.Context, redo command.Input) (any, command.Input, error) {
	v := redo.Value().(int)
	o.journal.add("do %s(%d)", o.id, v)
	if o.doErr != nil {
		return nil, command.EmptyInput(), o.doErr
	}
	return o.nextID, command.InputOf(o.nextID), nil
}

func (o *stepOperation) ExecuteUndo(_ context.Context, undo command.Input) error {
	id, err := command.InputValue[int](undo, "undo "+o.id)
	if err != nil {
		return err
	}
	o.journal.add("undo %s(%d)", o.id, id)
	return o.undoErr
}

// chainOperation derives nested inputs from an int root input and passes
// each step result to the next step.
type chainOperation struct {
	id          string
	inputErr    error
	transferErr error
	finalErr    error
}

func (o *chainOperation) ID() string { return o.id }

func (o *chainOperation) NestedInput(_ context.Context, _ command.RootCommand, root command.Input) (command.Input, error) {
	if o.inputErr != nil {
		return command.EmptyInput(), o.inputErr
	}
	return root, nil
}

func (o *chainOperation) TransferResult(done, next *command.Context) error {
	if o.transferErr != nil {
		return o.transferErr
	}
	result, _ := done.Result()
	return next.SetRedoParameter(command.InputOf(result))
}

func (o *chainOperation) FinalResult(p *command.MacroParameter) (any, error) {
	if o.finalErr != nil {
		return nil, o.finalErr
	}
	last := p.Nested[len(p.Nested)-1]
	result, _ := last.Result()
	return result, nil
}

// countingTx counts boundaries and records their outcome.
type countingTx struct {
	mu         sync.Mutex
	started    int
	rolledBack int
}

func (tx *countingTx) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.mu.Lock()
	tx.started++
	tx.mu.Unlock()

	err := fn(ctx)
	if err != nil {
		tx.mu.Lock()
		tx.rolledBack++
		tx.mu.Unlock()
	}
	return err
}

// journalTx discards the journal entries written by a failed block, the
// way a database transaction discards its writes.
type journalTx struct {
	journal *journal
}

func (tx journalTx) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	mark := tx.journal.mark()
	err := fn(ctx)
	if err != nil {
		tx.journal.rollbackTo(mark)
	}
	return err
}
