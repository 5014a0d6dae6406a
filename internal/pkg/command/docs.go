// Package command implements reversible business operations as commands
// driven through a per-call Context state machine.
//
// The package includes:
//   - Context: the execution record (input, redo/undo parameters, result, error, State)
//   - Leaf: a command wrapping one side-effecting Operation
//   - Macro: a command composed of nested commands with LIFO compensation
//   - Factory and Facade: lookup by command ID and result unwrapping
//   - ActionContext and ActionExecutor: per-action audit hooks
//
// Lifecycle of a single call:
//
//	c := cmd.CreateContext(ctx, command.InputOf(payload)) // Ready, or Fail on bad input
//	cmd.DoCommand(ctx, c)                                 // Done, or Fail
//	cmd.UndoCommand(ctx, c)                               // Undone, or Fail
//
// Errors never escape DoCommand or UndoCommand; they are recorded on the
// context. Commands hold no per-call state, so one command value serves
// concurrent contexts.
//
// Transactions are supplied by the caller as a TxScope. Leaf commands run
// ExecuteDo and ExecuteUndo inside it; macros run their whole nested walk
// inside it, nested scopes becoming savepoints when the TxScope supports it.
package command
