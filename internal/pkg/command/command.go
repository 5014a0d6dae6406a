package command

import "context"

// RootCommand is the capability every command exposes, leaf and macro alike.
//
// CreateContext never fails synchronously: invalid input yields a context in
// Fail state. DoCommand and UndoCommand report through the context they are
// given; read State, Result and Err afterwards.
type RootCommand interface {
	ID() string
	CreateContext(ctx context.Context, in Input) *Context
	DoCommand(ctx context.Context, c *Context)
	UndoCommand(ctx context.Context, c *Context)
}

// TxScope runs fn inside a transaction boundary. fn receives the context
// carrying the transaction; returning an error rolls the boundary back.
type TxScope interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}

// TxScopeFunc adapts a function to TxScope.
type TxScopeFunc func(ctx context.Context, fn func(ctx context.Context) error) error

func (f TxScopeFunc) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	return f(ctx, fn)
}

// NoTx runs fn directly.
var NoTx TxScope = TxScopeFunc(func(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
})
