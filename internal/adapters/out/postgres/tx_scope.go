// Package postgres provides the GORM transaction scope and schema
// migrations. Repositories live in the sub-packages.
//
// Transactions travel in the context.Context (see txctx): a repository
// called with a context produced by GormTxScope joins that transaction,
// otherwise it runs on the plain connection.
package postgres

import (
	"context"

	"school/internal/adapters/out/postgres/txctx"

	"gorm.io/gorm"
)

// GormTxScope implements ports.TxScope using GORM transactions.
//
// The outermost Execute opens a transaction; Execute on a context that
// already carries one creates a savepoint. A failing nested scope rolls back
// to its savepoint and leaves the enclosing transaction usable.
//
// Example:
//
//	scope := postgres.NewGormTxScope(db)
//	err := scope.Execute(ctx, func(ctx context.Context) error {
//	    _, err := profiles.Save(ctx, p) // joins the transaction
//	    return err
//	})
type GormTxScope struct {
	db *gorm.DB
}

// NewGormTxScope returns a scope opening transactions on db.
func NewGormTxScope(db *gorm.DB) *GormTxScope {
	return &GormTxScope{db: db}
}

// Execute runs fn inside a transaction or savepoint. The transaction commits
// when fn returns nil and rolls back on error or panic.
func (s *GormTxScope) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	return txctx.DB(ctx, s.db).Transaction(func(tx *gorm.DB) error {
		return fn(txctx.With(ctx, tx))
	})
}
