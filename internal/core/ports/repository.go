// Package ports defines the persistence contracts of the school domain.
// These interfaces establish contracts between the application layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"school/internal/core/domain/model/kernel"
)

// Repository is the persistence contract shared by every entity kind.
//
// Repositories never open transactions themselves; when the context carries
// a transaction started by a TxScope they run inside it.
type Repository[E any] interface {
	// FindByID retrieves an entity by its identifier.
	// Returns *errs.ObjectNotFoundError when no entity has that identifier.
	FindByID(ctx context.Context, id kernel.ID) (E, error)

	// Save inserts a transient entity or updates a persistent one and
	// returns the stored state with its assigned identifier.
	Save(ctx context.Context, entity E) (E, error)

	// Restore writes a snapshot back under its original identifier,
	// inserting it when it was deleted in the meantime.
	Restore(ctx context.Context, entity E) error

	// Delete removes the entity. Deleting a missing entity is not an error.
	Delete(ctx context.Context, id kernel.ID) error
}
