package ports

import (
	"school/internal/pkg/command"
)

// TxScope represents a business transaction boundary.
//
// Execute runs fn inside a transaction carried by the context passed to fn.
// The transaction commits when fn returns nil and rolls back otherwise.
// Nested Execute calls on a context that already carries a transaction open
// a savepoint, so a failed leaf command inside a macro rolls back only its
// own writes.
//
// Example:
//
//	err := txScope.Execute(ctx, func(ctx context.Context) error {
//	    _, err := profiles.Save(ctx, p)
//	    return err
//	})
type TxScope = command.TxScope
